package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apopovic77/gsg-api/services"
)

// CatalogController handles HTTP requests for brands, categories and stats.
type CatalogController struct {
	catalog services.CatalogService
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalog services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func wantsPretty(ctx *gin.Context) bool {
	return ctx.DefaultQuery("format", formatJSON) == formatPretty
}

// GetBrands handles GET /brands
func (cc *CatalogController) GetBrands(ctx *gin.Context) {
	brands, svcErr := cc.catalog.ListBrands(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "type": svcErr.Kind})
		return
	}

	if wantsPretty(ctx) {
		ctx.String(http.StatusOK, FormatBrandsPretty(brands))
		return
	}
	ctx.JSON(http.StatusOK, brands)
}

// GetCategories handles GET /categories
func (cc *CatalogController) GetCategories(ctx *gin.Context) {
	categories, svcErr := cc.catalog.ListCategories(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "type": svcErr.Kind})
		return
	}

	if wantsPretty(ctx) {
		ctx.String(http.StatusOK, FormatCategoriesPretty(categories))
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetStats handles GET /stats
func (cc *CatalogController) GetStats(ctx *gin.Context) {
	stats, svcErr := cc.catalog.GetStats(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "type": svcErr.Kind})
		return
	}

	if wantsPretty(ctx) {
		ctx.String(http.StatusOK, FormatStatsPretty(stats))
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
