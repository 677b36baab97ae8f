package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendbot/internal/errors"
	"spendbot/internal/session"
)

// SessionHandler exposes the per-chat dialog state machine to the transport.
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// StartSessionRequest binds the /start payload.
type StartSessionRequest struct {
	Username string `json:"username" binding:"required,handle"`
}

// StartSession activates a chat session
// @Summary     Start session
// @Description Activate the dialog session for a chat; restarting resets it
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Session (chat) id"
// @Param       request body StartSessionRequest true "Session owner"
// @Success     200 {object} session.Session "Active session"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /sessions/{id}/start [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required"))
		return
	}
	s := h.sessions.Start(c.Param("id"), req.Username)
	c.JSON(http.StatusOK, gin.H{"session": s})
}

// AwaitRange moves an active session into the awaiting-range dialog state
// @Summary     Await a custom range
// @Description Mark the session as waiting for the user to type a date range
// @Tags        sessions
// @Produce     json
// @Param       id path string true "Session (chat) id"
// @Success     200 {object} session.Session "Updated session"
// @Failure     404 {object} ErrorResponse "Unknown or expired session"
// @Failure     409 {object} ErrorResponse "Session not active"
// @Router      /sessions/{id}/await-range [post]
func (h *SessionHandler) AwaitRange(c *gin.Context) {
	s, err := h.sessions.AwaitRange(c.Param("id"))
	if err != nil {
		handleError(c, sessionError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": s})
}

// ResolveSession returns an awaiting-range session to active
// @Summary     Resolve the range dialog
// @Tags        sessions
// @Produce     json
// @Param       id path string true "Session (chat) id"
// @Success     200 {object} session.Session "Updated session"
// @Failure     404 {object} ErrorResponse "Unknown or expired session"
// @Router      /sessions/{id}/resolve [post]
func (h *SessionHandler) ResolveSession(c *gin.Context) {
	s, err := h.sessions.Resolve(c.Param("id"))
	if err != nil {
		handleError(c, sessionError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": s})
}

// CancelSession forgets the session
// @Summary     Cancel session
// @Tags        sessions
// @Produce     json
// @Param       id path string true "Session (chat) id"
// @Success     200 {object} MessageResponse "Session cancelled"
// @Router      /sessions/{id} [delete]
func (h *SessionHandler) CancelSession(c *gin.Context) {
	h.sessions.Cancel(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}

// GetSession reports the session's current state
// @Summary     Session state
// @Description Unknown and expired sessions report state "idle"
// @Tags        sessions
// @Produce     json
// @Param       id path string true "Session (chat) id"
// @Success     200 {object} session.Session "Session state"
// @Router      /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": h.sessions.Get(c.Param("id"))})
}

// sessionError maps the state machine's sentinel errors onto AppErrors.
func sessionError(err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return apperrors.Wrap(apperrors.ErrSessionNotFound, err)
	case errors.Is(err, session.ErrNotActive):
		return apperrors.Wrap(apperrors.ErrSessionNotActive, err)
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}
