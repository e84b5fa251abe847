package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		err          error
		expectedBody ErrorResponse
	}{
		{
			name:         "not found",
			status:       fiber.StatusNotFound,
			err:          NewNotFoundError("Post", 7),
			expectedBody: ErrorResponse{Error: "Post with ID 7 not found", Code: CodeNotFound},
		},
		{
			name:         "not found by field",
			status:       fiber.StatusNotFound,
			err:          NewNotFoundByField("User", "username", "nobody"),
			expectedBody: ErrorResponse{Error: "User with username nobody not found", Code: CodeNotFound},
		},
		{
			name:         "conflict hides cause",
			status:       fiber.StatusConflict,
			err:          NewConflictError("username already taken", errors.New("duplicate key value")),
			expectedBody: ErrorResponse{Error: "username already taken", Code: CodeConflict},
		},
		{
			name:         "internal error hides details",
			status:       fiber.StatusInternalServerError,
			err:          NewInternalError(errors.New("pq: connection refused on 10.0.0.3")),
			expectedBody: ErrorResponse{Error: "Internal server error", Code: CodeInternal},
		},
		{
			name:         "plain error treated as internal",
			status:       fiber.StatusInternalServerError,
			err:          errors.New("relation \"posts\" does not exist"),
			expectedBody: ErrorResponse{Error: "Internal server error", Code: CodeInternal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return RespondWithError(c, tt.status, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.status, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			var got ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeNotFound, ErrorCode(fmt.Errorf("wrapped: %w", NewNotFoundError("User", 1))))
	assert.Equal(t, CodeValidation, ErrorCode(NewValidationError("content is required")))
	assert.Equal(t, CodeInternal, ErrorCode(errors.New("boom")))
}

func TestProjectionsOmitPrivateFields(t *testing.T) {
	email := "ada@example.com"
	u := &User{ID: 3, Username: "ada", Email: &email, Password: "hash", FirstName: "Ada", LastName: "L"}

	raw, err := json.Marshal(u.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "ada@example.com")
	assert.NotContains(t, string(raw), "hash")
	assert.Contains(t, string(raw), `"firstName":"Ada"`)

	raw, err = json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")

	p := &Post{ID: 1, Content: "up only", User: u, Symbol: &Symbol{ID: 2, Code: "AAPL"}}
	d := p.Detail()
	require.NotNil(t, d.User)
	assert.Equal(t, "ada", d.User.Username)
	assert.Equal(t, "AAPL", d.Symbol.Code)
}
