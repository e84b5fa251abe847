package server

import (
	"tickertalk/internal/service"

	"github.com/gofiber/fiber/v2"
)

type addCommentRequest struct {
	Content  string `json:"content"`
	UserID   uint   `json:"userId"`
	ParentID *uint  `json:"parentId"`
}

// AddComment handles POST /api/posts/:id/comments. A parentId makes the
// comment a reply.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req addCommentRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	comment, err := s.commentService.AddComment(c.UserContext(), service.AddCommentInput{
		PostID:   postID,
		UserID:   req.UserID,
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment.View()})
}

// GetCommentsForPost handles GET /api/posts/:id/comments
func (s *Server) GetCommentsForPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	threads, err := s.commentService.GetCommentsForPost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"comments": threads})
}

// GetRepliesForComment handles GET /api/posts/:id/comments/:commentId/replies.
// The post segment is validated but the subtree is resolved from the comment alone.
func (s *Server) GetRepliesForComment(c *fiber.Ctx) error {
	if _, err := s.parseID(c, "id"); err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	replies, err := s.commentService.GetRepliesForComment(c.UserContext(), commentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"comments": replies})
}
