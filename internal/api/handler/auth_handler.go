package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/identityservice/identity-service/internal/api/metrics"
	"github.com/identityservice/identity-service/internal/core/domain"
	"github.com/identityservice/identity-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=25"`
	Password string `json:"password" validate:"required,max=25"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequest
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return ok(c, loginResponse{Token: token})
}

func loginResult(err error) string {
	switch err {
	case domain.ErrUserNotFound:
		return "user_not_found"
	case domain.ErrInvalidCredentials:
		return "invalid_credentials"
	default:
		return "error"
	}
}

// Welcome is the designated public path; it requires nothing.
//
// @Summary      Welcome
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/welcome [get]
func (h *AuthHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, apiResponse{Result: "welcome to the identity service"})
}
