package handlers

import (
	"net/http"

	"github.com/tifyai/website/internal/catalog"
)

type BlogHandler struct {
	catalog *catalog.Catalog
}

func NewBlogHandler(c *catalog.Catalog) *BlogHandler {
	return &BlogHandler{catalog: c}
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.catalog.ListBlogPosts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		internalError(w, r, "Failed to fetch blog posts", err)
		return
	}
	writeJSON(w, r, http.StatusOK, posts)
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.catalog.BlogPost(r.Context(), r.PathValue("slug"))
	if err != nil {
		internalError(w, r, "Failed to fetch blog post", err)
		return
	}
	if post == nil {
		writeError(w, r, http.StatusNotFound, "Blog post not found")
		return
	}
	writeJSON(w, r, http.StatusOK, post)
}
