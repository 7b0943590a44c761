package handlers

import (
	"net/http"

	"github.com/tifyai/website/internal/catalog"
)

type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(c *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		internalError(w, r, "Failed to fetch products", err)
		return
	}
	writeJSON(w, r, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Product(r.Context(), r.PathValue("slug"))
	if err != nil {
		internalError(w, r, "Failed to fetch product", err)
		return
	}
	if product == nil {
		writeError(w, r, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, r, http.StatusOK, product)
}

// Tiers returns the product's pricing tiers with their feature lists.
func (h *ProductHandler) Tiers(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Product(r.Context(), r.PathValue("slug"))
	if err != nil {
		internalError(w, r, "Failed to fetch product", err)
		return
	}
	if product == nil {
		writeError(w, r, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, r, http.StatusOK, catalog.ProductTiers(*product))
}
