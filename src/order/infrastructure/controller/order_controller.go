package controller

import (
	"log"
	"net/http"

	"github.com/iagobrdev/orders-bootcamp/src/order/application/request"
	"github.com/iagobrdev/orders-bootcamp/src/order/application/response"
	"github.com/iagobrdev/orders-bootcamp/src/order/application/usecase"
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/httpx"

	"github.com/gin-gonic/gin"
)

// OrderUseCases agrupa los casos de uso que expone el controlador
type OrderUseCases struct {
	Create       *usecase.CreateOrderUseCase
	Update       *usecase.UpdateOrderUseCase
	UpdateStatus *usecase.UpdateOrderStatusUseCase
	Delete       *usecase.DeleteOrderUseCase
	Get          *usecase.GetOrderUseCase
	Total        *usecase.OrderTotalUseCase
	List         *usecase.ListOrdersUseCase
}

// OrderController maneja las peticiones HTTP para pedidos
type OrderController struct {
	uc OrderUseCases
}

// NewOrderController crea una nueva instancia del controlador
func NewOrderController(uc OrderUseCases) *OrderController {
	return &OrderController{uc: uc}
}

// RegisterRoutes registra las rutas del controlador
func (c *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("", c.List)
		orders.GET("/count", c.Count)
		orders.GET("/customer/:customer_id", c.ListByCustomer)
		orders.GET("/status", c.ListByStatus)
		orders.GET("/date", c.ListByDate)
		orders.GET("/period", c.ListByPeriod)
		orders.GET("/:order_id", c.Get)
		orders.GET("/:order_id/total", c.Total)
		orders.POST("", c.Create)
		orders.PUT("/:order_id", c.Update)
		orders.PUT("/:order_id/status", c.UpdateStatus)
		orders.DELETE("/:order_id", c.Delete)
	}

	log.Println("Rutas Order disponibles:")
	log.Println("  GET    /api/v1/orders")
	log.Println("  GET    /api/v1/orders/count")
	log.Println("  GET    /api/v1/orders/customer/:customer_id")
	log.Println("  GET    /api/v1/orders/status?status=")
	log.Println("  GET    /api/v1/orders/date?date=YYYY-MM-DD")
	log.Println("  GET    /api/v1/orders/period?start=YYYY-MM-DD&end=YYYY-MM-DD")
	log.Println("  GET    /api/v1/orders/:order_id")
	log.Println("  GET    /api/v1/orders/:order_id/total")
	log.Println("  POST   /api/v1/orders")
	log.Println("  PUT    /api/v1/orders/:order_id")
	log.Println("  PUT    /api/v1/orders/:order_id/status")
	log.Println("  DELETE /api/v1/orders/:order_id")
}

func (c *OrderController) List(ctx *gin.Context) {
	orders, err := c.uc.List.All(ctx.Request.Context())
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderListResponse(orders))
}

func (c *OrderController) Count(ctx *gin.Context) {
	count, err := c.uc.List.Count(ctx.Request.Context())
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.CountResponse{Count: count})
}

func (c *OrderController) ListByCustomer(ctx *gin.Context) {
	customerID, ok := httpx.ParamID(ctx, "customer_id")
	if !ok {
		return
	}
	orders, err := c.uc.List.ByCustomer(ctx.Request.Context(), customerID)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderListResponse(orders))
}

func (c *OrderController) ListByStatus(ctx *gin.Context) {
	status, ok := httpx.RequiredQuery(ctx, "status", "")
	if !ok {
		return
	}
	orders, err := c.uc.List.ByStatus(ctx.Request.Context(), status)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderListResponse(orders))
}

func (c *OrderController) ListByDate(ctx *gin.Context) {
	date, ok := httpx.RequiredQuery(ctx, "date", " (YYYY-MM-DD)")
	if !ok {
		return
	}
	orders, err := c.uc.List.ByDate(ctx.Request.Context(), date)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderListResponse(orders))
}

func (c *OrderController) ListByPeriod(ctx *gin.Context) {
	start, ok := httpx.RequiredQuery(ctx, "start", " (YYYY-MM-DD)")
	if !ok {
		return
	}
	end, ok := httpx.RequiredQuery(ctx, "end", " (YYYY-MM-DD)")
	if !ok {
		return
	}
	orders, err := c.uc.List.ByPeriod(ctx.Request.Context(), start, end)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderListResponse(orders))
}

func (c *OrderController) Get(ctx *gin.Context) {
	orderID, ok := httpx.ParamID(ctx, "order_id")
	if !ok {
		return
	}
	order, err := c.uc.Get.Execute(ctx.Request.Context(), orderID)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderResponse(order))
}

func (c *OrderController) Total(ctx *gin.Context) {
	orderID, ok := httpx.ParamID(ctx, "order_id")
	if !ok {
		return
	}
	total, err := c.uc.Total.Execute(ctx.Request.Context(), orderID)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.OrderTotalResponse{OrderID: orderID, Total: total})
}

// Create crea un pedido. Los errores de validación responden un mensaje genérico.
func (c *OrderController) Create(ctx *gin.Context) {
	var req request.CreateOrderRequest
	if !httpx.BindJSON(ctx, &req) {
		return
	}
	order, err := c.uc.Create.Execute(ctx.Request.Context(), &req)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewOrderResponse(order))
}

func (c *OrderController) Update(ctx *gin.Context) {
	orderID, ok := httpx.ParamID(ctx, "order_id")
	if !ok {
		return
	}
	var req request.UpdateOrderRequest
	if !httpx.BindJSON(ctx, &req) {
		return
	}
	order, err := c.uc.Update.Execute(ctx.Request.Context(), orderID, &req)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderResponse(order))
}

func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	orderID, ok := httpx.ParamID(ctx, "order_id")
	if !ok {
		return
	}
	var req request.UpdateOrderStatusRequest
	if !httpx.BindJSON(ctx, &req) {
		return
	}
	order, err := c.uc.UpdateStatus.Execute(ctx.Request.Context(), orderID, req.Status)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderResponse(order))
}

func (c *OrderController) Delete(ctx *gin.Context) {
	orderID, ok := httpx.ParamID(ctx, "order_id")
	if !ok {
		return
	}
	if err := c.uc.Delete.Execute(ctx.Request.Context(), orderID); err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
