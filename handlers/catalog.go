package handlers

import (
	"net/http"

	"eventease/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static service catalogs. Each endpoint accepts
// an optional exact-match category query parameter; "all" or absent means
// no filtering.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Decoration handles GET /api/services/decoration.
func (h *CatalogHandler) Decoration(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.Decoration(c.Query("category"))})
}

// Photography handles GET /api/services/photography.
func (h *CatalogHandler) Photography(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.Photography(c.Query("category"))})
}

// Entertainment handles GET /api/services/entertainment.
func (h *CatalogHandler) Entertainment(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.Entertainment(c.Query("category"))})
}

// Extras handles GET /api/services/extras.
func (h *CatalogHandler) Extras(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.Extras(c.Query("category"))})
}

// Packages handles GET /api/services/packages.
func (h *CatalogHandler) Packages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": catalog.Packages(c.Query("category"))})
}
