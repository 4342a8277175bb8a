package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumipath/internal/catalog"
)

// CatalogHandler expone los datos de referencia que consume la pantalla
// de selección de verbos.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// Verbs maneja GET /catalog/verbs.
func (h *CatalogHandler) Verbs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"verbs":      h.catalog.Verbs(),
		"categories": catalog.CategoryInfo,
	})
}

// Industries maneja GET /catalog/industries.
func (h *CatalogHandler) Industries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"industries": h.catalog.Industries()})
}
