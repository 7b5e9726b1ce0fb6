package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/apopovic77/gsg-api/repository"
	"github.com/apopovic77/gsg-api/services"
)

const (
	formatJSON   = "json"
	formatPretty = "pretty"
)

// ProductController handles HTTP requests for product queries.
type ProductController struct {
	catalog  services.CatalogService
	validate *validator.Validate
}

// NewProductController creates a new ProductController.
func NewProductController(catalog services.CatalogService) *ProductController {
	return &ProductController{
		catalog:  catalog,
		validate: validator.New(),
	}
}

// listProductsQuery holds the query parameters of GET /products. Out-of-range
// limits and offsets are rejected here, before the service runs.
type listProductsQuery struct {
	Brand      string `form:"brand"`
	BrandID    int    `form:"brand_id" validate:"gte=0"`
	CategoryID int    `form:"category_id" validate:"gte=0"`
	Search     string `form:"search"`
	Active     bool   `form:"active,default=true"`
	Limit      int    `form:"limit,default=50" validate:"gte=1,lte=500"`
	Offset     int    `form:"offset,default=0" validate:"gte=0"`
	Format     string `form:"format,default=json" validate:"oneof=json pretty"`
}

// GetProducts handles GET /products
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	var q listProductsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}
	if err := pc.validate.Struct(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	filter := repository.ProductFilter{
		Brand:      q.Brand,
		BrandID:    q.BrandID,
		CategoryID: q.CategoryID,
		Search:     q.Search,
		ActiveOnly: q.Active,
	}

	list, svcErr := pc.catalog.ListProducts(ctx.Request.Context(), filter, q.Limit, q.Offset)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "type": svcErr.Kind})
		return
	}

	if q.Format == formatPretty {
		ctx.String(http.StatusOK, FormatListPretty(list))
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetProductByNummer handles GET /products/:nummer
func (pc *ProductController) GetProductByNummer(ctx *gin.Context) {
	nummer := ctx.Param("nummer")

	format := ctx.DefaultQuery("format", formatJSON)
	if format != formatJSON && format != formatPretty {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid format, expected json or pretty"})
		return
	}

	product, svcErr := pc.catalog.GetProductByNummer(ctx.Request.Context(), nummer)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "type": svcErr.Kind})
		return
	}

	if format == formatPretty {
		ctx.String(http.StatusOK, FormatProductPretty(product))
		return
	}
	ctx.JSON(http.StatusOK, product)
}
