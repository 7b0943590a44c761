package handlers

import (
	"net/http"

	"github.com/tifyai/website/internal/catalog"
)

// AboutHandler serves the testimonials and team listings.
type AboutHandler struct {
	catalog *catalog.Catalog
}

func NewAboutHandler(c *catalog.Catalog) *AboutHandler {
	return &AboutHandler{catalog: c}
}

func (h *AboutHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.catalog.ListTestimonials(r.Context())
	if err != nil {
		internalError(w, r, "Failed to fetch testimonials", err)
		return
	}
	writeJSON(w, r, http.StatusOK, testimonials)
}

func (h *AboutHandler) Team(w http.ResponseWriter, r *http.Request) {
	members, err := h.catalog.ListTeamMembers(r.Context())
	if err != nil {
		internalError(w, r, "Failed to fetch team members", err)
		return
	}
	writeJSON(w, r, http.StatusOK, members)
}
