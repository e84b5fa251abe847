package server

import (
	"tickertalk/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Content         string  `json:"content"`
	Symbol          string  `json:"symbol"`
	Sentiment       string  `json:"sentiment"`
	SentimentScore  int     `json:"sentimentScore"`
	UserID          uint    `json:"userId"`
	ImageAttachment *string `json:"imageAttachment"`
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:          req.UserID,
		Content:         req.Content,
		Sentiment:       req.Sentiment,
		SentimentScore:  req.SentimentScore,
		SymbolCode:      req.Symbol,
		ImageAttachment: req.ImageAttachment,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post.Detail()})
}

// ListAllPosts handles GET /api/posts
func (s *Server) ListAllPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListAllPosts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// ListPostsByUser handles GET /api/posts/:userId
func (s *Server) ListPostsByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListPostsByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// ListPostsBySymbol handles GET /api/posts/symbol/:code
func (s *Server) ListPostsBySymbol(c *fiber.Ctx) error {
	posts, err := s.postService.ListPostsBySymbol(c.UserContext(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.LikePost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}
