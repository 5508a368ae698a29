package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/mhoffm/limerickbox/account"
	"github.com/mhoffm/limerickbox/uploads"
)

// Handler holds the services the HTTP handlers delegate to.
type Handler struct {
	accounts *account.Service
	uploads  *uploads.Service
}

// New creates a new handler.
func New(accounts *account.Service, uploadSvc *uploads.Service) *Handler {
	return &Handler{
		accounts: accounts,
		uploads:  uploadSvc,
	}
}

// Home redirects to the registration page.
func (h *Handler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/register")
}

// flash queues a one-shot message for the next rendered page.
func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
	}
}

// takeFlashes drains and returns the queued flash messages.
func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		// Flashes() removes the messages, Save() persists the removal.
		if err := session.Save(); err != nil {
			log.Error("failed to save session", "error", err)
		}
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
