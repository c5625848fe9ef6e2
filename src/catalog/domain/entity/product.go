package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo
type Product struct {
	ID            int64           `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Description   string          `json:"description,omitempty" db:"description"`
	Price         decimal.Decimal `json:"price" db:"price"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity"`
	Category      ProductCategory `json:"category,omitempty" db:"category"`
}

// NewProduct crea un producto validado
func NewProduct(name, description string, price decimal.Decimal, stock int, category ProductCategory) (*Product, error) {
	p := &Product{
		Name:          strings.TrimSpace(name),
		Description:   description,
		Price:         price,
		StockQuantity: stock,
		Category:      category,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate aplica las reglas de un producto vendible
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrProductNameRequired
	}
	if !p.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if p.StockQuantity < 0 {
		return ErrNegativeStock
	}
	if p.Category != "" && !p.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// HasStock indica si hay stock suficiente para la cantidad pedida
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.StockQuantity
}
