// Command seed loads reference data and generates demo content.
package main

import (
	"context"
	"flag"
	"log"

	"tickertalk/internal/config"
	"tickertalk/internal/database"
	"tickertalk/internal/repository"
	"tickertalk/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	numComments := flag.Int("comments", 300, "Number of comments to create")
	numLikes := flag.Int("likes", 500, "Number of likes to record")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible content (0 = random)")
	shouldClean := flag.Bool("clean", false, "Delete users, posts and comments before seeding")
	referenceOnly := flag.Bool("reference-only", false, "Only upsert symbols and sentiments")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() && !*referenceOnly {
		log.Fatal("Refusing to generate demo content in production; use -reference-only")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if err := seed.Reference(ctx, db); err != nil {
		log.Fatalf("Reference seeding failed: %v", err)
	}
	log.Println("Reference data applied")
	if *referenceOnly {
		return
	}

	if *shouldClean {
		if err := seed.Clear(ctx, db); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	f := seed.NewFactory(repository.NewStore(db), *randSeed)
	summary, err := f.Demo(ctx, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		NumComments: *numComments,
		NumLikes:    *numLikes,
	})
	if err != nil {
		log.Fatalf("Demo seeding failed: %v", err)
	}

	log.Printf("Created %d users, %d posts, %d comments and %d likes",
		summary.Users, summary.Posts, summary.Comments, summary.Likes)
	log.Printf("All demo users have the password: %s", seed.DemoPassword)
}
