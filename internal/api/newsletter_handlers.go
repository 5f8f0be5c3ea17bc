package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/newsletter-viewer/internal/service/newsletter"
	"github.com/ignite/newsletter-viewer/internal/view"
)

// NewsletterHandlers contains handlers for the newsletter viewing endpoints
type NewsletterHandlers struct {
	svc      *newsletter.Service
	renderer *view.Renderer
}

// NewNewsletterHandlers creates a new NewsletterHandlers instance
func NewNewsletterHandlers(svc *newsletter.Service, renderer *view.Renderer) *NewsletterHandlers {
	return &NewsletterHandlers{svc: svc, renderer: renderer}
}

// ViewNewsletter handles GET /newsletters/{id}?email=... - renders the
// newsletter HTML page. The email query parameter doubles as the
// authorization token: a mismatch is reported as not found.
func (h *NewsletterHandlers) ViewNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	email := r.URL.Query().Get("email")
	if email == "" {
		log.Printf("Attempted to access newsletter %s without providing an email", id)
		respondWithError(w, http.StatusBadRequest, "Email parameter is required")
		return
	}

	n, imageURL, err := h.svc.View(ctx, id, email)
	switch {
	case errors.Is(err, newsletter.ErrNotFound):
		log.Printf("Newsletter not found: id=%s, email=%s", id, email)
		respondWithError(w, http.StatusNotFound, "Newsletter not found")
		return
	case errors.Is(err, newsletter.ErrImageUnavailable):
		respondWithError(w, http.StatusInternalServerError, "Failed to access image resource")
		return
	case err != nil:
		log.Printf("ERROR: failed to load newsletter %s: %v", id, err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	page, err := h.renderer.RenderNewsletter(view.Page{
		NewsletterID: n.ID,
		Content:      n.Content,
		ImageURL:     imageURL,
		Email:        email,
		CreatedAt:    n.CreatedAt.Format(view.TimeLayout),
		CurrentTime:  time.Now().Format(view.TimeLayout),
	})
	if err != nil {
		log.Printf("ERROR: failed to render newsletter %s: %v", id, err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}

// Root handles GET / - static informational page.
func (h *NewsletterHandlers) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<html>
    <head>
        <title>Newsletter Viewer Service</title>
    </head>
    <body>
        <h1>Newsletter Viewer Service</h1>
        <p>Service is up and running!</p>
        <p>Use the /newsletters/{id}?email={email} endpoint to view newsletters.</p>
    </body>
</html>`))
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": message,
	})
}
