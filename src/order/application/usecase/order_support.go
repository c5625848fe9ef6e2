package usecase

import (
	"context"
	"log"
	"time"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
	"github.com/iagobrdev/orders-bootcamp/src/shared/domain/apperror"
)

// publishTimeout límite para publicar un evento tras la escritura
const publishTimeout = 5 * time.Second

// Nombres de operación usados en métricas
const (
	opCreate       = "create"
	opUpdate       = "update"
	opUpdateStatus = "update_status"
	opDelete       = "delete"
)

// OrderOptions comportamiento opcional de las escrituras de pedidos
type OrderOptions struct {
	// EnforceStatusTransitions impide salir de un estado final
	EnforceStatusTransitions bool
	// DetailedCreateErrors expone la causa en vez del mensaje fijo de creación
	DetailedCreateErrors bool
}

// OperationObserver registra el resultado de cada escritura
type OperationObserver interface {
	ObserveOrderOperation(operation string, err error)
}

// orderNotifier publica eventos y métricas después de cada escritura.
// Ambas dependencias son opcionales.
type orderNotifier struct {
	publisher port.EventPublisher
	observer  OperationObserver
}

func (n orderNotifier) publish(ctx context.Context, event entity.OrderEvent) {
	if n.publisher == nil {
		return
	}
	// El pedido ya está guardado: un fallo de publicación no revierte la operación.
	// La publicación no depende de la cancelación del request.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := n.publisher.Publish(publishCtx, event); err != nil {
		log.Printf("WARNING: Failed to publish %s for order %d: %v", event.EventType, event.AggregateID, err)
	}
}

func (n orderNotifier) observe(operation string, err error) {
	if n.observer != nil {
		n.observer.ObserveOrderOperation(operation, err)
	}
}

// businessFailure convierte una falla de reglas en BusinessError con el mensaje de la causa.
// Los errores de infraestructura se devuelven tal cual.
func businessFailure(err error) error {
	if apperror.KindOf(err) == apperror.KindInternal {
		return err
	}
	return apperror.Business(err.Error(), err)
}
