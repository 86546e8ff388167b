package http

import (
	"net/http"

	"github.com/go-bingo-api/internal/application/auth"
	"github.com/go-bingo-api/internal/application/board"
	"github.com/go-bingo-api/internal/application/community"
	"github.com/go-bingo-api/internal/application/identity"
	"github.com/go-bingo-api/internal/config"
	"github.com/go-bingo-api/internal/transport/http/handler"
	appmiddleware "github.com/go-bingo-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	identitySvc := identity.NewService(deps.IdentityRepo)
	authSvc := auth.NewService(deps.IdentityRepo, identitySvc, deps.Mailer, cfg.MagicLinkBaseURL)
	boardSvc := board.NewService(deps.IdentityRepo)
	communitySvc := community.NewService(deps.CommunityRepo)

	authMw := appmiddleware.Auth(identitySvc, deps.ClaimsVerifier)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	boardH := handler.NewBoardHandler(boardSvc)
	communityH := handler.NewCommunityHandler(communitySvc)

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/health-check/{action}", healthH.Ping)
	r.Post("/auth/magic-link", authH.IssueMagicLink)
	r.Get("/auth/magic-link-callback", authH.RedeemMagicLink)
	r.Get("/community/cards", communityH.ListCards)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Put("/bingo3x3", boardH.Save)
		r.Post("/toss", communityH.Toss)
		r.Get("/me", boardH.Me)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	return r
}
