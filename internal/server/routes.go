// Package server is the HTTP front end of the article checker.
package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cognicore/artikel/internal/logger"
)

const ReadHeaderTimeout = 5 * time.Second

var log = logger.GetLogger()

// Create creates the HTTP server listening on port.
func Create(checker TextChecker, port int) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           setupRouter(checker),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(checker TextChecker) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Get("/alive", AliveHandler)
	router.Route("/api", func(r chi.Router) {
		r.Post("/processText", ProcessTextHandler(checker))
	})

	return router
}
