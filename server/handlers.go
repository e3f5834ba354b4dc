package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/search"
	"github.com/poiesic/capdex/stats"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Catalog string `json:"catalog"`
	Error   string `json:"error,omitempty"`
}

type refreshResponse struct {
	Entries int `json:"entries"`
}

type statsResponse struct {
	stats.Stats
	Coverage         stats.CoverageSummary `json:"coverage"`
	PercentageRanges []stats.Bucket        `json:"percentageRanges"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("error encoding response", "err", err)
		http.Error(w, `{"error":"encoding response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "err", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func readJSON(r *http.Request, v any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Catalog: s.svc.State().String()}
	status := http.StatusOK
	if err := s.svc.LoadError(); err != nil {
		resp.Status = "degraded"
		resp.Error = err.Error()
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	entries, err := s.svc.Refresh(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, refreshResponse{Entries: len(entries)})
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	key, err := search.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	entries, err := s.svc.Search(r.URL.Query().Get("q"), key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) createEntry(w http.ResponseWriter, r *http.Request) {
	var draft core.Draft
	if err := readJSON(r, &draft); err != nil {
		s.writeError(w, err)
		return
	}
	entry, err := s.svc.Create(r.Context(), draft)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Location", "/entries/"+entry.ID)
	s.writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) updateEntry(w http.ResponseWriter, r *http.Request) {
	var a core.Annotation
	if err := readJSON(r, &a); err != nil {
		s.writeError(w, err)
		return
	}
	entry, err := s.svc.Update(r.Context(), chi.URLParam(r, "id"), a)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getThumbnail(w http.ResponseWriter, r *http.Request) {
	thumb, err := s.svc.Thumbnail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(thumb.JPEG)))
	w.Header().Set("ETag", strconv.Quote(strconv.FormatUint(uint64(thumb.Digest), 16)))
	w.WriteHeader(http.StatusOK)
	w.Write(thumb.JPEG)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.Stats()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, statsResponse{
		Stats:            st,
		Coverage:         stats.Coverage(st.ByCountry),
		PercentageRanges: st.ByPercentageRange.Ordered(stats.PercentageRanges),
	})
}

func (s *Server) getMarkers(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.Stats()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats.Markers(st.ByCountry))
}
