package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hadithapi/internal/hadith"
	"hadithapi/internal/httpx"
)

// pinger reports whether the record store is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

// newRouter registers the read-only API surface. Literal segments take
// precedence over wildcards, so /books, /random, /health and /metrics
// never collide with the /{bookId}/... routes.
func newRouter(h *hadith.HTTPHandler, db pinger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /books", h.Books)
	mux.HandleFunc("GET /random", h.Random)
	mux.HandleFunc("GET /random/{bookId}", h.Random)
	mux.HandleFunc("GET /{bookId}/{num}", h.GetByNumber)
	mux.HandleFunc("GET /{bookId}/{start}/{size}", h.ListPage)

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			httpx.Error(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}
