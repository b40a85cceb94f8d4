package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devportfolio/portfolio-api/internal/api/metrics"
	"github.com/devportfolio/portfolio-api/internal/core/domain"
	"github.com/devportfolio/portfolio-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for account operations.
type AuthHandler struct {
	accounts ports.AccountService
}

func NewAuthHandler(accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// editAccountRequest lists the only editable fields. The decoder rejects
// unknown JSON keys, so attempts to change anything else — the email in
// particular — fail at the boundary.
type editAccountRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

type authResponse struct {
	Token string             `json:"token,omitempty"`
	User  *ports.AccountView `json:"user,omitempty"`
}

// Signup creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.Signup(c.Request().Context(), ports.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates an account and returns an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Edit updates the allow-listed account fields of the authenticated user.
//
// @Summary      Edit the authenticated account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      editAccountRequest  true  "Fields to change"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/edit [put]
func (h *AuthHandler) Edit(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	var req editAccountRequest
	if err := dec.Decode(&req); err != nil {
		if field, ok := unknownField(err); ok {
			return echo.NewHTTPError(http.StatusBadRequest, "cannot edit field "+field)
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.accounts.Edit(c.Request().Context(), userID, ports.EditAccountInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: user})
}

// Logout revokes the presented token. Repeating the call with the same token
// keeps returning 200.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	_, jti, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.accounts.Logout(c.Request().Context(), jti); err != nil {
		return err
	}

	metrics.TokensRevokedTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"msg": "session ended"})
}

// ListUsers returns the public projection of every account.
//
// @Summary      List accounts
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.AccountView
// @Failure      401  {object}  map[string]string
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	users, err := h.accounts.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// unknownField extracts the field name from a json "unknown field" decode error.
func unknownField(err error) (string, bool) {
	const marker = `unknown field `
	msg := err.Error()
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return "", false
	}
	return strings.Trim(msg[idx+len(marker):], `"`), true
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "bad_credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	default:
		return "error"
	}
}
