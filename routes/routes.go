package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/apopovic77/gsg-api/controllers"
)

// RegisterCatalogRoutes wires the catalog endpoints. All of them sit behind
// the API-key gate; the health probes are registered separately in main.
func RegisterCatalogRoutes(r *gin.Engine, pc *controllers.ProductController, cc *controllers.CatalogController, auth gin.HandlerFunc) {
	products := r.Group("/products", auth)
	{
		products.GET("", pc.GetProducts)
		products.GET("/:nummer", pc.GetProductByNummer)
	}

	r.GET("/brands", auth, cc.GetBrands)
	r.GET("/categories", auth, cc.GetCategories)
	r.GET("/stats", auth, cc.GetStats)
}
