// Package api exposes collections, documents, search and question
// answering over a JSON REST API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/akraszewski/webdoc"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	log    *slog.Logger

	collections webdoc.CollectionService
	documents   webdoc.DocumentService
	loader      webdoc.Loader
	searcher    webdoc.Searcher
	indexer     webdoc.ChunkIndexer
	asker       webdoc.Asker
}

// Config carries the services a Server exposes. Searcher and Asker may
// be nil; their endpoints then report unavailable. Indexer, when set,
// keeps the search index in step with deletions.
type Config struct {
	Log         *slog.Logger
	Collections webdoc.CollectionService
	Documents   webdoc.DocumentService
	Loader      webdoc.Loader
	Searcher    webdoc.Searcher
	Indexer     webdoc.ChunkIndexer
	Asker       webdoc.Asker
}

// NewServer creates and configures the HTTP server.
func NewServer(cfg Config) *Server {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		log:         log,
		collections: cfg.Collections,
		documents:   cfg.Documents,
		loader:      cfg.Loader,
		searcher:    cfg.Searcher,
		indexer:     cfg.Indexer,
		asker:       cfg.Asker,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/collections", s.handleListCollections)
		r.Post("/collections", s.handleCreateCollection)
		r.Get("/collections/{collectionID}", s.handleGetCollection)
		r.Patch("/collections/{collectionID}", s.handleUpdateCollection)
		r.Delete("/collections/{collectionID}", s.handleDeleteCollection)

		r.Get("/collections/{collectionID}/documents", s.handleListDocuments)
		r.Get("/documents/{documentID}", s.handleGetDocument)
		r.Delete("/documents/{documentID}", s.handleDeleteDocument)

		r.Post("/load", s.handleLoad)
		r.Get("/search", s.handleSearch)
		r.Post("/ask", s.handleAsk)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch webdoc.ErrorCode(err) {
	case webdoc.EINVALID:
		status = http.StatusBadRequest
	case webdoc.ENOTFOUND:
		status = http.StatusNotFound
	case webdoc.ECONFLICT:
		status = http.StatusConflict
	case webdoc.EUNAVAILABLE:
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"error": webdoc.ErrorMessage(err)})
}
