package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

// AuthHandler exposes the session store over HTTP. The store absorbs
// failures, so each handler checks the returned sentinel and reads Err for
// the message to surface.
type AuthHandler struct {
	sessions ports.SessionStore
}

func NewAuthHandler(sessions ports.SessionStore) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Register creates a new account and signs it in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := h.sessions.SignUp(c.Request().Context(), req.Email, req.Password, req.Metadata)
	if sess == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errMessage(h.sessions.Err(), "sign-up failed"))
	}

	return c.JSON(http.StatusCreated, toSessionResponse(sess))
}

// Login authenticates with email and password.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := h.sessions.SignIn(c.Request().Context(), req.Email, req.Password)
	if sess == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errMessage(h.sessions.Err(), "invalid credentials"))
	}

	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

// Logout revokes the active session. Local state is cleared even when the
// remote revoke fails; the response only reports which of the two happened.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	revoked := h.sessions.SignOut(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]bool{"revoked": revoked})
}

// Profile returns the signed-in user.
//
// @Summary      Get the signed-in user's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	user := h.sessions.User()
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile merges metadata fields into the signed-in user's profile.
//
// @Summary      Update the signed-in user's profile metadata
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Metadata fields to merge"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/profile [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := h.sessions.UpdateProfile(c.Request().Context(), req.Metadata)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errMessage(h.sessions.Err(), "not signed in"))
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// errMessage prefers the store's recorded failure over the fallback.
func errMessage(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
