package server

import "github.com/gofiber/fiber/v2"

// ListSymbols handles GET /api/symbols
func (s *Server) ListSymbols(c *fiber.Ctx) error {
	symbols, err := s.referenceService.ListSymbols(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"symbols": symbols})
}

// ListSentiments handles GET /api/sentiments
func (s *Server) ListSentiments(c *fiber.Ctx) error {
	sentiments, err := s.referenceService.ListSentiments(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"sentiments": sentiments})
}
