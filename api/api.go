package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/mhoffm/limerickbox/account"
	"github.com/mhoffm/limerickbox/api/handler"
	"github.com/mhoffm/limerickbox/config"
	"github.com/mhoffm/limerickbox/uploads"
	"github.com/mhoffm/limerickbox/web"
)

// Server serves the HTML frontend.
type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	accounts  *account.Service
	uploads   *uploads.Service
}

// New creates a new API server.
func New(cfg *config.Config, accounts *account.Service, uploadSvc *uploads.Service) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	return &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		accounts:  accounts,
		uploads:   uploadSvc,
	}, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("limerickbox_session", store))
}

func (s *Server) setupRoutes() error {
	s.setupSession()

	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	s.ginEngine.SetHTMLTemplate(tmpl)

	h := handler.New(s.accounts, s.uploads)

	s.ginEngine.GET("/", h.Home)
	s.ginEngine.GET("/register", h.RegisterPage)
	s.ginEngine.POST("/register", h.Register)
	s.ginEngine.GET("/login", h.LoginPage)
	s.ginEngine.POST("/login", h.Login)
	s.ginEngine.GET("/profile/:username", h.Profile)
	s.ginEngine.POST("/upload/:username", h.Upload)
	s.ginEngine.GET("/download/:username", h.Download)

	return nil
}

// Run sets up the routes and blocks serving HTTP requests.
func (s *Server) Run() error {
	if err := s.setupRoutes(); err != nil {
		return err
	}

	return s.ginEngine.Run(s.cfg.Listen)
}
