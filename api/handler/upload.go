package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/mhoffm/limerickbox/database"
	"github.com/mhoffm/limerickbox/uploads"
)

// Upload stores the submitted file for the given user and records its
// word count, then redirects back to the profile.
func (h *Handler) Upload(c *gin.Context) {
	username := c.Param("username")

	var (
		data             []byte
		originalFilename string
	)
	if fileHeader, err := c.FormFile("file"); err == nil {
		originalFilename = fileHeader.Filename
		file, err := fileHeader.Open()
		if err != nil {
			log.Error("failed to open upload", "error", err)
			flash(c, "Upload failed, please try again.")
			c.Redirect(http.StatusFound, "/profile/"+username)
			return
		}
		defer file.Close() //nolint: errcheck
		if data, err = io.ReadAll(file); err != nil {
			log.Error("failed to read upload", "error", err)
			flash(c, "Upload failed, please try again.")
			c.Redirect(http.StatusFound, "/profile/"+username)
			return
		}
	}

	if _, err := h.uploads.Upload(c.Request.Context(), username, data, originalFilename); err != nil {
		switch {
		case errors.Is(err, database.ErrUserNotFound):
			flash(c, "User not found.")
			c.Redirect(http.StatusFound, "/login")
		case errors.Is(err, uploads.ErrNoFileProvided):
			flash(c, "No file selected.")
			c.Redirect(http.StatusFound, "/profile/"+username)
		default:
			log.Error("upload failed", "username", username, "error", err)
			flash(c, "Upload failed, please try again.")
			c.Redirect(http.StatusFound, "/profile/"+username)
		}
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username)
}

// Download streams the user's stored file back as an attachment.
func (h *Handler) Download(c *gin.Context) {
	username := c.Param("username")

	path, filename, err := h.uploads.Download(c.Request.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrUserNotFound):
			flash(c, "User not found. Please login.")
			c.Redirect(http.StatusFound, "/login")
		case errors.Is(err, uploads.ErrNoFileUploaded):
			flash(c, "No file uploaded yet.")
			c.Redirect(http.StatusFound, "/profile/"+username)
		default:
			log.Error("download failed", "username", username, "error", err)
			flash(c, "Download failed, please try again.")
			c.Redirect(http.StatusFound, "/profile/"+username)
		}
		return
	}

	c.FileAttachment(path, filename)
}
