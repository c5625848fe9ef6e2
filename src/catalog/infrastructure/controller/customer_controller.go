package controller

import (
	"log"
	"net/http"

	"github.com/iagobrdev/orders-bootcamp/src/catalog/application/request"
	"github.com/iagobrdev/orders-bootcamp/src/catalog/application/usecase"
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/httpx"

	"github.com/gin-gonic/gin"
)

// CustomerController maneja las peticiones HTTP para clientes
type CustomerController struct {
	customerUC *usecase.CustomerUseCase
}

// NewCustomerController crea una nueva instancia del controlador
func NewCustomerController(customerUC *usecase.CustomerUseCase) *CustomerController {
	return &CustomerController{customerUC: customerUC}
}

// RegisterRoutes registra las rutas del controlador
func (c *CustomerController) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.GET("", c.List)
		customers.GET("/count", c.Count)
		customers.GET("/search", c.SearchByName)
		customers.GET("/email", c.GetByEmail)
		customers.GET("/:customer_id", c.Get)
		customers.POST("", c.Create)
		customers.PUT("/:customer_id", c.Update)
		customers.DELETE("/:customer_id", c.Delete)
	}

	log.Println("Rutas Customer disponibles:")
	log.Println("  GET    /api/v1/customers")
	log.Println("  GET    /api/v1/customers/count")
	log.Println("  GET    /api/v1/customers/search?name=")
	log.Println("  GET    /api/v1/customers/email?email=")
	log.Println("  GET    /api/v1/customers/:customer_id")
	log.Println("  POST   /api/v1/customers")
	log.Println("  PUT    /api/v1/customers/:customer_id")
	log.Println("  DELETE /api/v1/customers/:customer_id")
}

func (c *CustomerController) List(ctx *gin.Context) {
	customers, err := c.customerUC.List(ctx.Request.Context())
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

func (c *CustomerController) Count(ctx *gin.Context) {
	count, err := c.customerUC.Count(ctx.Request.Context())
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func (c *CustomerController) SearchByName(ctx *gin.Context) {
	name, ok := httpx.RequiredQuery(ctx, "name", "")
	if !ok {
		return
	}
	customers, err := c.customerUC.SearchByName(ctx.Request.Context(), name)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

func (c *CustomerController) GetByEmail(ctx *gin.Context) {
	email, ok := httpx.RequiredQuery(ctx, "email", "")
	if !ok {
		return
	}
	customer, err := c.customerUC.GetByEmail(ctx.Request.Context(), email)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

func (c *CustomerController) Get(ctx *gin.Context) {
	id, ok := httpx.ParamID(ctx, "customer_id")
	if !ok {
		return
	}
	customer, err := c.customerUC.Get(ctx.Request.Context(), id)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

func (c *CustomerController) Create(ctx *gin.Context) {
	var req request.CustomerRequest
	if !httpx.BindJSON(ctx, &req) {
		return
	}
	customer, err := c.customerUC.Create(ctx.Request.Context(), req)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, customer)
}

func (c *CustomerController) Update(ctx *gin.Context) {
	id, ok := httpx.ParamID(ctx, "customer_id")
	if !ok {
		return
	}
	var req request.CustomerRequest
	if !httpx.BindJSON(ctx, &req) {
		return
	}
	customer, err := c.customerUC.Update(ctx.Request.Context(), id, req)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

func (c *CustomerController) Delete(ctx *gin.Context) {
	id, ok := httpx.ParamID(ctx, "customer_id")
	if !ok {
		return
	}
	if err := c.customerUC.Delete(ctx.Request.Context(), id); err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
