package server

import (
	"tickertalk/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createUserRequest struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profilePicture"`
}

type updateScoreRequest struct {
	PostQualityAvg  *float64 `json:"postQualityAvg"`
	ReputationScore *float64 `json:"reputationScore"`
}

// CreateUser handles POST /api/users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.CreateUser(c.UserContext(), service.CreateUserInput{
		Username:       req.Username,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user.Public()})
}

// GetUserByUsername handles GET /api/users/:username
func (s *Server) GetUserByUsername(c *fiber.Ctx) error {
	user, err := s.userService.GetUserByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateScore handles POST /api/users/:id/score. The stored reputation
// fields are replaced by the supplied values.
func (s *Server) UpdateScore(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req updateScoreRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.UpdateScore(c.UserContext(), userID, service.ScoreInput{
		PostQualityAvg:  req.PostQualityAvg,
		ReputationScore: req.ReputationScore,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}
