package entity

import "strings"

// Customer representa un cliente del back-office.
// El email es único entre todos los clientes.
type Customer struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Phone   string `json:"phone,omitempty" db:"phone"`
	Address string `json:"address,omitempty" db:"address"`
}

// NewCustomer crea un cliente validado
func NewCustomer(name, email, phone, address string) (*Customer, error) {
	c := &Customer{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Phone:   phone,
		Address: address,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate verifica los campos obligatorios
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCustomerNameRequired
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrCustomerEmailRequired
	}
	return nil
}
