package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"git.sr.ht/~jakintosh/todo-server/internal/domain"
	"git.sr.ht/~jakintosh/todo-server/internal/logging"
)

type ServerOptions struct {
	// Logger receives request and failure logs. Defaults to slog.Default().
	Logger *slog.Logger
}

type Server struct {
	store  domain.Store
	router *http.ServeMux
	logger *slog.Logger
	// handler is router wrapped in middleware
	handler http.Handler
}

func NewServer(store domain.Store, opts ServerOptions) (*Server, error) {
	if store == nil {
		return nil, errors.New("web: store is nil")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		store:  store,
		router: http.NewServeMux(),
		logger: opts.Logger.With("component", logging.ComponentHTTP),
	}
	s.routes()
	s.handler = withRequestLogging(s.router, s.logger)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// HTTPServer wraps s in an http.Server listening on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}
}

func (s *Server) routes() {
	s.router.HandleFunc("GET /lists", s.handleGetLists)
	s.router.HandleFunc("GET /lists/{id}/todos", s.handleGetTodos)
}

func (s *Server) handleGetLists(w http.ResponseWriter, r *http.Request) {
	lists, err := s.store.GetLists(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

func (s *Server) handleGetTodos(w http.ResponseWriter, r *http.Request) {
	listID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid list id"})
		return
	}

	todos, err := s.store.GetTodos(r.Context(), listID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}
