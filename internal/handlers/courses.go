package handlers

import (
	"net/http"

	"github.com/tifyai/website/internal/catalog"
)

type CourseHandler struct {
	catalog *catalog.Catalog
}

func NewCourseHandler(c *catalog.Catalog) *CourseHandler {
	return &CourseHandler{catalog: c}
}

// List accepts the optional category, format and sortBy query parameters.
// Unknown values match nothing (filters) or fall back to the default order (sortBy).
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	courses, err := h.catalog.ListCourses(r.Context(), catalog.CourseQuery{
		Category: q.Get("category"),
		Format:   q.Get("format"),
		SortBy:   q.Get("sortBy"),
	})
	if err != nil {
		internalError(w, r, "Failed to fetch courses", err)
		return
	}
	writeJSON(w, r, http.StatusOK, courses)
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	course, err := h.catalog.Course(r.Context(), r.PathValue("slug"))
	if err != nil {
		internalError(w, r, "Failed to fetch course", err)
		return
	}
	if course == nil {
		writeError(w, r, http.StatusNotFound, "Course not found")
		return
	}
	writeJSON(w, r, http.StatusOK, course)
}
