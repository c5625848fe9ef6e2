package httpx

import (
	"log"
	"net/http"
	"time"

	"github.com/iagobrdev/orders-bootcamp/src/shared/domain/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorResponse cuerpo estándar de error de la API
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	RequestID string    `json:"request_id,omitempty"`
}

// StatusFor traduce el tipo de error de aplicación a un status HTTP
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindInvalidRequest, apperror.KindBusiness:
		return http.StatusBadRequest
	case apperror.KindInsufficientStock, apperror.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError escribe el error con el status correspondiente a su tipo.
// Los errores internos no exponen el mensaje original.
func RespondError(ctx *gin.Context, err error) {
	status := StatusFor(apperror.KindOf(err))
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("❌ Internal error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		message = "an unexpected error occurred on the server"
	}
	WriteError(ctx, status, message)
}

// WriteError escribe un ErrorResponse con status y mensaje explícitos
func WriteError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      ctx.Request.URL.Path,
		RequestID: GetRequestID(ctx),
	})
}
