package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/mhoffm/limerickbox/account"
	"github.com/mhoffm/limerickbox/database"
)

type registerForm struct {
	Username  string `form:"username"`
	Password  string `form:"password"`
	FirstName string `form:"firstname"`
	LastName  string `form:"lastname"`
	Email     string `form:"email"`
	Address   string `form:"address"`
}

// RegisterPage renders the registration form.
func (h *Handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Title":   "Register",
		"Flashes": takeFlashes(c),
	})
}

// Register creates a new account from the submitted form. A successful
// registration redirects straight to the new profile.
func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, "All fields are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), account.RegisterParams{
		Username:  form.Username,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Address:   form.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrValidation):
			flash(c, "All fields are required.")
		case errors.Is(err, database.ErrDuplicateUsername):
			flash(c, "Username already exists.")
		default:
			log.Error("registration failed", "error", err)
			flash(c, "Registration failed, please try again.")
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}
