package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/mhoffm/limerickbox/account"
)

// LoginPage renders the login form.
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":   "Login",
		"Flashes": takeFlashes(c),
	})
}

// Login checks the submitted credentials and redirects to the profile.
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.accounts.Login(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, account.ErrInvalidCredentials) {
			log.Error("login failed", "error", err)
		}
		flash(c, "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}
