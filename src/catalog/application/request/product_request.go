package request

import "github.com/shopspring/decimal"

// ProductRequest cuerpo de alta y modificación de producto.
// Price acepta número o string JSON.
type ProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      string          `json:"category,omitempty"`
}

// UpdateStockRequest nueva cantidad en stock
type UpdateStockRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
