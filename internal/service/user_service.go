package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"tickertalk/internal/models"
	"tickertalk/internal/observability"
	"tickertalk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	maxUsernameLen = 64
	maxEmailLen    = 120
)

type UserService struct {
	store      repository.Store
	reputation ReputationAggregator
	hashCost   int
}

type CreateUserInput struct {
	Username       string
	Password       string
	FirstName      string
	LastName       string
	Email          string
	ProfilePicture *string
}

// ScoreInput holds externally computed reputation values. Both are required.
type ScoreInput struct {
	PostQualityAvg  *float64
	ReputationScore *float64
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store, hashCost: bcrypt.DefaultCost}
}

// CreateUser registers a user with a bcrypt-hashed password. A taken
// username or email fails with CONFLICT and leaves the store untouched.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (user *models.User, err error) {
	ctx, span := observability.StartSpan(ctx, "UserService.CreateUser")
	defer func() { observability.EndSpan(span, err) }()

	username := strings.TrimSpace(in.Username)
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := strings.TrimSpace(in.Email)

	switch {
	case username == "":
		return nil, models.NewValidationError("username is required")
	case in.Password == "":
		return nil, models.NewValidationError("password is required")
	case firstName == "":
		return nil, models.NewValidationError("firstName is required")
	case lastName == "":
		return nil, models.NewValidationError("lastName is required")
	case utf8.RuneCountInString(username) > maxUsernameLen:
		return nil, models.NewValidationError("username too long (max 64 characters)")
	case utf8.RuneCountInString(email) > maxEmailLen:
		return nil, models.NewValidationError("email too long (max 120 characters)")
	}

	existing, err := s.store.Users().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("username already taken", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, models.NewValidationError("password too long (max 72 bytes)")
		}
		return nil, models.NewInternalError(err)
	}

	user = &models.User{
		Username:        username,
		Password:        string(hash),
		FirstName:       firstName,
		LastName:        lastName,
		ProfilePicture:  in.ProfilePicture,
		IsActive:        true,
		ReputationScore: models.DefaultReputationScore,
	}
	if email != "" {
		user.Email = &email
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		if models.ErrorCode(err) == models.CodeConflict {
			return nil, models.NewConflictError("username or email already taken", err)
		}
		return nil, err
	}
	observability.RecordEngagement(observability.EventUserRegistered)
	return user, nil
}

// GetUserByUsername returns the public projection of the user.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.UserPublic, error) {
	username = strings.TrimSpace(username)
	user, err := s.store.Users().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundByField("User", "username", username)
	}
	return user.Public(), nil
}

// UpdateScore overwrites the user's reputation fields with the supplied values.
func (s *UserService) UpdateScore(ctx context.Context, userID uint, in ScoreInput) (user *models.User, err error) {
	ctx, span := observability.StartSpan(ctx, "UserService.UpdateScore")
	defer func() { observability.EndSpan(span, err) }()

	if in.PostQualityAvg == nil || in.ReputationScore == nil {
		return nil, models.NewValidationError("postQualityAvg and reputationScore are required")
	}
	for _, v := range []float64{*in.PostQualityAvg, *in.ReputationScore} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, models.NewValidationError("scores must be finite numbers")
		}
	}

	score := repository.ScoreUpdate{PostQualityAvg: *in.PostQualityAvg, ReputationScore: *in.ReputationScore}
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := s.reputation.ApplyScore(ctx, tx, userID, score); err != nil {
			return err
		}
		user, err = tx.Users().GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	observability.RecordEngagement(observability.EventScoreApplied)
	return user, nil
}
