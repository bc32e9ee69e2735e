// Package web serves the recipe document over HTTP. Control presses arrive
// as form posts; the page is re-served from the controller's document after
// each one.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hammamikhairi/recipebox/internal/catalog"
	"github.com/hammamikhairi/recipebox/internal/controller"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/export"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/page"
	"github.com/hammamikhairi/recipebox/internal/render"
)

// Server owns one document and the controller driving it. The mutex keeps
// activations and renders strictly one at a time.
type Server struct {
	mu     sync.Mutex
	doc    *page.Document
	ctrl   *controller.Controller
	source domain.RecipeSource
	log    *logger.Logger
}

type recipesResp struct {
	Filter  string        `json:"filter"`
	Sort    string        `json:"sort"`
	Count   int           `json:"count"`
	Recipes []render.Card `json:"recipes"`
}

// New wires a controller to doc and performs the initial render.
func New(ctx context.Context, source domain.RecipeSource, doc *page.Document, log *logger.Logger) (*Server, error) {
	ctrl := controller.New(source, doc, log.Named("controller"))
	if err := ctrl.Start(ctx); err != nil {
		return nil, err
	}
	return &Server{doc: doc, ctrl: ctrl, source: source, log: log}, nil
}

// Handler returns the HTTP routes wrapped in the common-header middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /filter/{value}", s.handleActivate(domain.GroupFilter))
	mux.HandleFunc("POST /sort/{value}", s.handleActivate(domain.GroupSort))
	mux.HandleFunc("GET /api/recipes", s.handleRecipes)
	mux.HandleFunc("GET /api/recipes/{id}", s.handleRecipe)
	mux.HandleFunc("GET /export.xlsx", s.handleExport)
	return withCommonHeaders(mux)
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	html, err := s.doc.HTML()
	s.mu.Unlock()
	if err != nil {
		s.log.Error("serialising document: %v", err)
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		s.log.Debug("writing response: %v", err)
	}
}

func (s *Server) handleActivate(g domain.Group) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := r.PathValue("value")

		s.mu.Lock()
		err := s.ctrl.Activate(r.Context(), g, value)
		s.mu.Unlock()

		switch {
		case errors.Is(err, domain.ErrNoControl):
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		case err != nil:
			s.log.Error("activating %s=%s: %v", g, value, err)
			http.Error(w, "update failed", http.StatusInternalServerError)
			return
		}
		s.log.Debug("%s -> %s", g, value)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// handleRecipes is stateless: it applies the query's selection without
// touching the page's controller.
func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	f, _ := domain.ParseFilter(r.URL.Query().Get("filter"))
	srt, _ := domain.ParseSort(r.URL.Query().Get("sort"))

	all, err := s.source.All(r.Context())
	if err != nil {
		s.log.Error("loading recipes: %v", err)
		http.Error(w, "load error", http.StatusInternalServerError)
		return
	}
	cards := render.Cards(catalog.Apply(all, domain.Selection{Filter: f, Sort: srt}))
	writeJSON(w, recipesResp{
		Filter:  f.String(),
		Sort:    srt.String(),
		Count:   len(cards),
		Recipes: cards,
	})
}

// handleRecipe looks up one card by the id its markup carries in data-id.
func (s *Server) handleRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}
	rec, err := s.source.Get(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		s.log.Error("loading recipe %d: %v", id, err)
		http.Error(w, "load error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, render.Cards([]domain.Recipe{rec})[0])
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cards := render.Cards(s.ctrl.Visible())
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, cards); err != nil {
		s.log.Error("export: %v", err)
		http.Error(w, "export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="recipes.xlsx"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Debug("writing export: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

func withCommonHeaders(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}
