// Package www serves the liveness probe and the player count graph.
package www

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"marnewatch/engine/config"
	"marnewatch/engine/liveness"
	"marnewatch/www/middleware"
)

type Router struct {
	Config  *config.ConfigSettings
	Tracker *liveness.Tracker
}

// routes assembles the mux. Split out from Start so tests can drive the
// handlers without binding a port.
func (router *Router) routes() *http.ServeMux {
	mux := http.NewServeMux()

	PUBLIC := middleware.MiddlewareChain(middleware.Logging, middleware.SecurityHeaders)

	mux.HandleFunc("GET /graph", PUBLIC(router.GraphHandler))

	// health checkers probe arbitrary paths, answer them all
	mux.HandleFunc("/", PUBLIC(router.ProbeHandler))

	return mux
}

func (router *Router) Start() {
	mux := router.routes()

	server := http.Server{
		Addr:    fmt.Sprintf("%s:%d", router.Config.ProbeSettings.BindAddress, router.Config.ProbeSettings.Port),
		Handler: mux,
	}
	slog.Info(fmt.Sprintf("Starting probe server on http://%s:%d", router.Config.ProbeSettings.BindAddress, router.Config.ProbeSettings.Port))

	log.Fatal(server.ListenAndServe())
}
