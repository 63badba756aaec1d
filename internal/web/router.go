// Package web serves the list and detail destinations over HTTP.
package web

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yildizm/swdex/internal/logger"
	"github.com/yildizm/swdex/internal/navigation"
	"github.com/yildizm/swdex/internal/session"
)

// Server answers list and detail requests from one holder
type Server struct {
	holder *session.Holder
	routes *navigation.Routes
	log    *logger.Logger
}

// New attaches handlers to the named routes of routes and returns the
// server. The router is ready to serve once New returns.
func New(holder *session.Holder, routes *navigation.Routes, log *logger.Logger) *Server {
	if routes == nil {
		routes = navigation.New()
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{holder: holder, routes: routes, log: log}

	r := routes.Router()
	r.Get(navigation.RouteList).HandlerFunc(s.handleList)
	r.Get(navigation.RouteDetail).HandlerFunc(s.handleDetail)
	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet, http.MethodHead)
	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.Use(s.requestLogger, requestID)

	return s
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.routes.Router()
}

// Router returns the underlying mux router
func (s *Server) Router() *mux.Router {
	return s.routes.Router()
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintln(w, "ok")
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.routes.ListPath(), http.StatusFound)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "no destination at " + r.URL.EscapedPath()})
}
