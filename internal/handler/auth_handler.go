package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edugest/edugest-api/internal/middleware"
	"github.com/edugest/edugest-api/internal/models"
	appErrors "github.com/edugest/edugest-api/pkg/errors"
	"github.com/edugest/edugest-api/pkg/response"
)

type authService interface {
	Register(ctx context.Context, req models.CredentialsRequest) (*models.User, error)
	Login(ctx context.Context, req models.CredentialsRequest) (string, error)
}

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service authService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register godoc
// @Summary Register administrator
// @Description Create an admin user with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.CredentialsRequest true "Credentials"
// @Success 200 {object} response.OKBody
// @Failure 400 {object} response.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Login godoc
// @Summary Authenticate user
// @Description Exchange email and password for a bearer token valid for eight hours
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.CredentialsRequest true "Credentials"
// @Success 200 {object} response.TokenBody
// @Failure 401 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, response.TokenBody{Token: token})
}

// Me godoc
// @Summary Current identity
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserInfo
// @Failure 401 {object} response.ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrMissingToken)
		return
	}
	response.JSON(c, http.StatusOK, claims.Info())
}

// bindCredentials treats an empty body as empty credentials so the service
// reports the missing fields.
func bindCredentials(c *gin.Context) (models.CredentialsRequest, bool) {
	var req models.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Pedido inválido"))
		return req, false
	}
	return req, true
}
