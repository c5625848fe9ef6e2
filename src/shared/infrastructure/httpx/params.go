package httpx

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID lee un parámetro de ruta numérico positivo.
// Si no es válido escribe un 400 y devuelve false.
func ParamID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		WriteError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return id, true
}

// BindJSON decodifica el body; ante error escribe un 400 y devuelve false
func BindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		WriteError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// RequiredQuery lee un query param obligatorio; si falta escribe un 400
func RequiredQuery(ctx *gin.Context, name, hint string) (string, bool) {
	value := ctx.Query(name)
	if value == "" {
		WriteError(ctx, http.StatusBadRequest, fmt.Sprintf("%s query parameter is required%s", name, hint))
		return "", false
	}
	return value, true
}
