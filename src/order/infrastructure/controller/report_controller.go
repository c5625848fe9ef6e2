package controller

import (
	"log"
	"net/http"

	"github.com/iagobrdev/orders-bootcamp/src/order/application/usecase"
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/httpx"

	"github.com/gin-gonic/gin"
)

// ReportController expone reportes de pedidos
type ReportController struct {
	dailyReportUC *usecase.DailyReportUseCase
}

func NewReportController(dailyReportUC *usecase.DailyReportUseCase) *ReportController {
	return &ReportController{dailyReportUC: dailyReportUC}
}

func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/daily", c.Daily)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/daily?date=YYYY-MM-DD")
}

// Daily resumen de pedidos de un día
func (c *ReportController) Daily(ctx *gin.Context) {
	date, ok := httpx.RequiredQuery(ctx, "date", " (YYYY-MM-DD)")
	if !ok {
		return
	}
	report, err := c.dailyReportUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		httpx.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}
