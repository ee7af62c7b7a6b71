package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, body io.Reader) BaseResponse[any] {
	t.Helper()
	var out BaseResponse[any]
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestJWTManager_IssueAndParse(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	id := uuid.New()

	token, err := m.Issue(id, RoleLawyer)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.SubjectID)
	assert.Equal(t, RoleLawyer, claims.Role)

	_, err = NewJWTManager("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := NewJWTManager("secret", -time.Minute).Issue(id, RoleUser)
	require.NoError(t, err)
	_, err = m.Parse(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJwtMiddlewareAndRequireRole(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	app := fiber.New()
	app.Get("/admin", m.JwtMiddleware, RequireRole(RoleAdmin), func(ctx *fiber.Ctx) error {
		id, err := SubjectID(ctx)
		if err != nil {
			return err
		}
		return ctx.SendString(id.String())
	})

	adminID := uuid.New()
	adminToken, _ := m.Issue(adminID, RoleAdmin)
	userToken, _ := m.Issue(uuid.New(), RoleUser)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"garbage", "Bearer nope", fiber.StatusUnauthorized},
		{"wrong role", "Bearer " + userToken, fiber.StatusForbidden},
		{"admin", "Bearer " + adminToken, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.want == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, adminID.String(), string(body))
			}
		})
	}
}

type signupProbe struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(signupProbe{Email: "a@b.in", Password: "secret1"}))

	err := ValidateRequest(signupProbe{Email: "nope", Password: "x"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "must be a valid email", ve.Fields["Email"])
	assert.Equal(t, "must be at least 6 characters", ve.Fields["Password"])
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/fiber", func(ctx *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "Lawyer not found") })
	app.Get("/validation", func(ctx *fiber.Ctx) error { return ValidateRequest(signupProbe{}) })
	app.Get("/boom", func(ctx *fiber.Ctx) error { return errors.New("db exploded") })

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{"/fiber", 404, "Lawyer not found"},
		{"/validation", 400, ""},
		{"/boom", 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)

			env := decodeEnvelope(t, resp.Body)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, env.Message)
			}
		})
	}
}
