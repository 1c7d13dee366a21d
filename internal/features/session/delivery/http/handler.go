package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "networth-tracker/internal/common/errors"
	"networth-tracker/internal/features/session/models"
)

// SessionManager is the session surface exposed over HTTP.
type SessionManager interface {
	State() models.State
	Teardown(ctx context.Context) error
}

// Restarter discards an onboarding attempt in progress.
type Restarter interface {
	Restart()
}

type SessionHandler struct {
	session    SessionManager
	onboarding Restarter
}

func NewSessionHandler(session SessionManager, onboarding Restarter) *SessionHandler {
	return &SessionHandler{session: session, onboarding: onboarding}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	session := router.Group("/session")
	{
		session.GET("", h.getSession)
		session.POST("/logout", h.logout)
	}
}

// @Summary Get session state
// @Description Whether a user is signed in and onboarded, the user record and the currency symbol to display amounts with
// @Tags session
// @Produce json
// @Success 200 {object} models.State
// @Router /session [get]
func (h *SessionHandler) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.State())
}

// @Summary Log out
// @Description Forgets the current user, clears the persisted session and restarts onboarding
// @Tags session
// @Produce json
// @Success 200 {object} models.State
// @Failure 503 {object} middleware.ErrorResponse "Persisted session could not be cleared"
// @Router /session/logout [post]
func (h *SessionHandler) logout(c *gin.Context) {
	if h.onboarding != nil {
		h.onboarding.Restart()
	}
	if err := h.session.Teardown(c.Request.Context()); err != nil {
		_ = c.Error(apperrors.NewCacheError("clear session", err))
		return
	}
	c.JSON(http.StatusOK, h.session.State())
}
