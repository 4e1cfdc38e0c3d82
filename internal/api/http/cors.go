package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/rs/cors"

	"estatespace-backend/internal/config"
)

// OriginAllowed reports whether a browser origin may call the API: it is either
// listed explicitly or ends with the configured suffix (e.g. ".vercel.app").
func OriginAllowed(cfg config.CORSConfig, origin string) bool {
	if slices.Contains(cfg.AllowedOrigins, origin) {
		return true
	}
	return cfg.AllowedOriginSuffix != "" && strings.HasSuffix(origin, cfg.AllowedOriginSuffix)
}

// NewCORS builds the CORS policy. Requests without an Origin header are not CORS
// requests and pass through untouched.
func NewCORS(cfg config.CORSConfig) *cors.Cors {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return OriginAllowed(cfg, origin)
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
}
