package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"

	"github.com/AdriaVH/makeCalendar/calendar"
	"github.com/AdriaVH/makeCalendar/config"
	"github.com/AdriaVH/makeCalendar/schedule"
	"github.com/AdriaVH/makeCalendar/tables"
)

// maxUploadBytes bounds the accepted PDF size.
const maxUploadBytes = 10 << 20

// Server wires the upload form, the OAuth flow and the reconciliation
// actions into one HTTP handler.
type Server struct {
	cfg     *config.Config
	store   *sessions.CookieStore
	oauth   *oauth2.Config
	logger  *slog.Logger
	mux     *http.ServeMux
	regions []schedule.Region
	tuning  tables.Tuning

	// newGateway is replaceable in tests.
	newGateway func(ctx context.Context, client *http.Client) (calendar.Gateway, error)
}

// NewServer constructs a Server with the default parsing layout.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	store := sessions.NewCookieStore([]byte(cfg.Server.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	s := &Server{
		cfg:     cfg,
		store:   store,
		oauth:   calendar.OAuthConfig(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL),
		logger:  logger,
		mux:     http.NewServeMux(),
		regions: schedule.DefaultRegions(),
		tuning:  tables.DefaultTuning(),
		newGateway: func(ctx context.Context, client *http.Client) (calendar.Gateway, error) {
			return calendar.NewGoogleGateway(ctx, client)
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /auth/google", s.handleAuthStart)
	s.mux.HandleFunc("GET /oauth2callback", s.handleAuthCallback)
	s.mux.HandleFunc("GET /logout", s.handleLogout)
	s.mux.HandleFunc("POST /upload", s.handleUpload)
	s.mux.HandleFunc("POST /purge", s.handlePurge)
	s.mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// Handler returns the underlying http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}
