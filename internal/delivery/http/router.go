package http

import (
	"io/fs"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"contributorsboard/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// metrics may be nil to leave /metrics unrouted.
func NewRouter(board *controllers.BoardController, api *controllers.APIController, static fs.FS, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", board.Awards)
	mux.HandleFunc("GET /awards", board.Awards)
	mux.HandleFunc("GET /people", board.People)

	// API Routes
	mux.HandleFunc("GET /api/roles", api.ListRoles)
	mux.HandleFunc("GET /api/contributors", api.ListContributors)
	mux.HandleFunc("GET /api/contributors/{handle}", api.GetContributor)
	mux.HandleFunc("GET /api/town-halls", api.ListTownHalls)
	mux.HandleFunc("GET /api/award-roles", api.ListAwardRoles)
	mux.HandleFunc("GET /api/awards", api.ListAwards)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}

	// Static assets
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
