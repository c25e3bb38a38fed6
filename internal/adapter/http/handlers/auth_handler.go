package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/giancarlo349/G-OS3/internal/adapter/http/dto/request"
	response "github.com/giancarlo349/G-OS3/internal/adapter/http/dto/response"
	"github.com/giancarlo349/G-OS3/internal/adapter/http/middleware"
	"github.com/giancarlo349/G-OS3/internal/usecase"
	"github.com/giancarlo349/G-OS3/pkg"
)

var errInvalidCredentialsPayload = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS_INPUT", "Invalid credentials payload", http.StatusBadRequest)

// AuthHandler handles HTTP requests for the identity module.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.CredentialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCredentialsPayload.HTTPStatus, errInvalidCredentialsPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Register(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.CredentialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCredentialsPayload.HTTPStatus, errInvalidCredentialsPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// Refresh re-issues the session for the operator behind the bearer token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	session, err := h.usecase.Refresh(c.Request.Context(), user.UID)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid access token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidPassword):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailAlreadyTaken):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
