package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/akraszewski/webdoc"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	filter := webdoc.CollectionFilter{}
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}
	filter.Limit, filter.Offset = pagination(r)

	collections, err := s.collections.FindCollections(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if collections == nil {
		collections = []*webdoc.Collection{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"collections": collections})
}

func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var collection webdoc.Collection
	if err := json.NewDecoder(r.Body).Decode(&collection); err != nil {
		writeError(w, webdoc.Errorf(webdoc.EINVALID, "invalid JSON body"))
		return
	}

	if err := s.collections.CreateCollection(r.Context(), &collection); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, &collection)
}

func (s *Server) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	collection, err := s.collections.FindCollectionByID(r.Context(), chi.URLParam(r, "collectionID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collection)
}

func (s *Server) handleUpdateCollection(w http.ResponseWriter, r *http.Request) {
	var upd webdoc.CollectionUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, webdoc.Errorf(webdoc.EINVALID, "invalid JSON body"))
		return
	}

	collection, err := s.collections.UpdateCollection(r.Context(), chi.URLParam(r, "collectionID"), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collection)
}

func (s *Server) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")

	// Index entries go first so a partial failure cannot leave chunks
	// that search still serves.
	if s.indexer != nil {
		if err := s.indexer.DeleteCollection(r.Context(), collectionID); err != nil {
			writeError(w, err)
			return
		}
	}
	if err := s.collections.DeleteCollection(r.Context(), collectionID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	filter := webdoc.DocumentFilter{CollectionID: &collectionID}
	filter.Limit, filter.Offset = pagination(r)

	docs, err := s.documents.FindDocuments(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if docs == nil {
		docs = []*webdoc.Document{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documents.FindDocumentByID(r.Context(), chi.URLParam(r, "documentID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	if s.indexer != nil {
		if err := s.indexer.DeleteDocument(r.Context(), documentID); err != nil {
			writeError(w, err)
			return
		}
	}
	if err := s.documents.DeleteDocument(r.Context(), documentID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadRequest is the body for POST /api/load.
type loadRequest struct {
	URL      string `json:"url"`
	Selector string `json:"selector"`
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, webdoc.Errorf(webdoc.EINVALID, "invalid JSON body"))
		return
	}
	if req.URL == "" {
		writeError(w, webdoc.Errorf(webdoc.EINVALID, "url required"))
		return
	}

	docs, err := s.loader.Load(r.Context(), req.URL, webdoc.LoadOptions{Selector: req.Selector})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.searcher == nil {
		writeError(w, webdoc.Errorf(webdoc.EUNAVAILABLE, "search is not configured"))
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, webdoc.Errorf(webdoc.EINVALID, "q query parameter is required"))
		return
	}

	opts := webdoc.SearchOptions{}
	if ids, ok := r.URL.Query()["collection"]; ok {
		opts.CollectionIDs = ids
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			opts.Limit = n
		}
	}

	results, err := s.searcher.Search(r.Context(), query, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	if results == nil {
		results = []webdoc.SearchResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// askRequest is the body for POST /api/ask.
type askRequest struct {
	CollectionID string `json:"collectionId"`
	Question     string `json:"question"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if s.asker == nil {
		writeError(w, webdoc.Errorf(webdoc.EUNAVAILABLE, "question answering is not configured"))
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, webdoc.Errorf(webdoc.EINVALID, "invalid JSON body"))
		return
	}

	answer, err := s.asker.Ask(r.Context(), req.CollectionID, req.Question)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

// pagination reads limit/offset query parameters.
func pagination(r *http.Request) (limit, offset int) {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}
