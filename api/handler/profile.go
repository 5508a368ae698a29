package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/mhoffm/limerickbox/database"
)

// Profile renders a user's profile page including upload metadata.
func (h *Handler) Profile(c *gin.Context) {
	username := c.Param("username")

	user, err := h.accounts.Profile(c.Request.Context(), username)
	if err != nil {
		if !errors.Is(err, database.ErrUserNotFound) {
			log.Error("failed to load profile", "username", username, "error", err)
		}
		flash(c, "User not found. Please login.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var fileSize int64
	if user.HasUpload() {
		fileSize = h.uploads.FileSize(*user.UploadedFilename)
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Title":    user.Username,
		"Flashes":  takeFlashes(c),
		"User":     user,
		"FileSize": fileSize,
	})
}
