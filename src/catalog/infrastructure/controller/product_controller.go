package controller

import (
	"log"
	"net/http"

	"github.com/iagobrdev/orders-bootcamp/src/catalog/application/request"
	"github.com/iagobrdev/orders-bootcamp/src/catalog/application/usecase"
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/httpx"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductController maneja las peticiones HTTP para productos
type ProductController struct {
	productUC *usecase.ProductUseCase
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(productUC *usecase.ProductUseCase) *ProductController {
	return &ProductController{productUC: productUC}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.List)
		products.GET("/count", c.Count)
		products.GET("/search", c.SearchByName)
		products.GET("/price-range", c.SearchByPriceRange)
		products.GET("/category/:category", c.ListByCategory)
		products.GET("/:product_id", c.Get)
		products.GET("/:product_id/stock", c.Stock)
		products.POST("", c.Create)
		products.PUT("/:product_id", c.Update)
		products.PUT("/:product_id/stock", c.UpdateStock)
		products.DELETE("/:product_id", c.Delete)
	}

	log.Println("Rutas Product disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/count")
	log.Println("  GET    /api/v1/products/search?name=")
	log.Println("  GET    /api/v1/products/price-range?min=&max=")
	log.Println("  GET    /api/v1/products/category/:category")
	log.Println("  GET    /api/v1/products/:product_id")
	log.Println("  GET    /api/v1/products/:product_id/stock")
	log.Println("  POST   /api/v1/products")
	log.Println("  PUT    /api/v1/products/:product_id")
	log.Println("  PUT    /api/v1/products/:product_id/stock")
	log.Println("  DELETE /api/v1/products/:product_id")
}

func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.productUC.List(ctx.Request.Context())
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) Count(ctx *gin.Context) {
	count, err := c.productUC.Count(ctx.Request.Context())
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func (c *ProductController) SearchByName(ctx *gin.Context) {
	name, ok := httpx.RequiredQuery(ctx, "name", "")
	if !ok {
		return
	}
	products, err := c.productUC.SearchByName(ctx.Request.Context(), name)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// SearchByPriceRange los límites ausentes llegan como nil y los valida el caso de uso
func (c *ProductController) SearchByPriceRange(ctx *gin.Context) {
	min, ok := queryDecimal(ctx, "min")
	if !ok {
		return
	}
	max, ok := queryDecimal(ctx, "max")
	if !ok {
		return
	}
	products, err := c.productUC.SearchByPriceRange(ctx.Request.Context(), min, max)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) ListByCategory(ctx *gin.Context) {
	products, err := c.productUC.ListByCategory(ctx.Request.Context(), ctx.Param("category"))
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) Get(ctx *gin.Context) {
	id, ok := httpx.ParamID(ctx, "product_id")
	if !ok {
		return
	}
	product, err := c.productUC.Get(ctx.Request.Context(), id)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) Stock(ctx *gin.Context) {
	id, ok := httpx.ParamID(ctx, "product_id")
	if !ok {
		return
	}
	stock, err := c.productUC.Stock(ctx.Request.Context(), id)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"product_id": id, "stock_quantity": stock})
}

func (c *ProductController) Create(ctx *gin.Context) {
	var req request.ProductRequest
	if !httpx.BindJSON(ctx, &req) {
		return
	}
	product, err := c.productUC.Create(ctx.Request.Context(), req)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

func (c *ProductController) Update(ctx *gin.Context) {
	id, ok := httpx.ParamID(ctx, "product_id")
	if !ok {
		return
	}
	var req request.ProductRequest
	if !httpx.BindJSON(ctx, &req) {
		return
	}
	product, err := c.productUC.Update(ctx.Request.Context(), id, req)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) UpdateStock(ctx *gin.Context) {
	id, ok := httpx.ParamID(ctx, "product_id")
	if !ok {
		return
	}
	var req request.UpdateStockRequest
	if !httpx.BindJSON(ctx, &req) {
		return
	}
	product, err := c.productUC.UpdateStock(ctx.Request.Context(), id, *req.Quantity)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) Delete(ctx *gin.Context) {
	id, ok := httpx.ParamID(ctx, "product_id")
	if !ok {
		return
	}
	if err := c.productUC.Delete(ctx.Request.Context(), id); err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func queryDecimal(ctx *gin.Context, name string) (*decimal.Decimal, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		httpx.WriteError(ctx, http.StatusBadRequest, "invalid "+name+" price")
		return nil, false
	}
	return &value, true
}
