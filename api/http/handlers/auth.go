package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourfit/backend/api/http/presenter"
	"github.com/yourfit/backend/pkg/auth"
	jwtmw "github.com/yourfit/backend/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse deliberately has no hash field, so the digest cannot be
// serialized outward by accident.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
	Token   string       `json:"token"`
}

func newAuthResponse(result auth.AuthResult) authResponse {
	return authResponse{
		Success: true,
		User: userResponse{
			ID:        result.User.ID.String(),
			Email:     result.User.Email,
			Username:  result.User.Username,
			CreatedAt: result.User.CreatedAt,
		},
		Token: result.Token,
	}
}

// SignUp handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signupRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.SignUp(c.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return presenter.Error(c, http.StatusBadRequest, "email and password are required")
		case errors.Is(err, auth.ErrEmailTaken):
			return presenter.Error(c, http.StatusConflict, "email already in use")
		default:
			log.Printf("signup failed: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "failed to sign up")
		}
	}

	return presenter.JSON(c, http.StatusCreated, newAuthResponse(result))
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return presenter.Error(c, http.StatusBadRequest, "email and password are required")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		default:
			log.Printf("login failed: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "failed to login")
		}
	}

	return presenter.JSON(c, http.StatusOK, newAuthResponse(result))
}

// CheckEmail reports whether an email is already registered.
// @Summary Check email availability
// @Tags    auth
// @Produce json
// @Param   email query string true "email to check"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/check-email [get]
func (h *AuthHandler) CheckEmail(c *fiber.Ctx) error {
	email := c.Query("email")

	exists, err := h.useCase.CheckEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, auth.ErrMissingFields) {
			return presenter.Error(c, http.StatusBadRequest, "email query parameter is required")
		}
		log.Printf("check email failed: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to check email")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{"exists": exists})
}

// Me returns the identity decoded from the bearer token.
// @Summary Current identity
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := jwtmw.IdentityFromContext(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Unauthorized")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"id":      claims.UserID,
		"email":   claims.Email,
	})
}
