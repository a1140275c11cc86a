package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

var (
	ErrEmptyName     = errors.New("nome do produto não pode ser vazio")
	ErrNotFound      = errors.New("produto não encontrado")
	ErrInactive      = errors.New("produto está inativo")
	ErrDuplicateName = errors.New("já existe um produto com este nome")
)

// Product representa um produto do estoque
type Product struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Color       string               `json:"color"`
	Size        string               `json:"size"`
	Price       valueobject.Price    `json:"price"`
	Quantity    valueobject.Quantity `json:"quantity"`
	MinQuantity valueobject.Quantity `json:"min_quantity"`
	Description string               `json:"description,omitempty"`
	Category    string               `json:"category,omitempty"`
	Active      bool                 `json:"active"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewProduct cria um novo produto ativo
func NewProduct(name, color, size string, price valueobject.Price, quantity, minQuantity valueobject.Quantity, description, category string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Color:       color,
		Size:        size,
		Price:       price,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Description: description,
		Category:    category,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateQuantity substitui a quantidade atual
func (p *Product) UpdateQuantity(quantity valueobject.Quantity) {
	p.Quantity = quantity
	p.UpdatedAt = time.Now()
}

// AddQuantity soma a quantidade informada ao estoque atual
func (p *Product) AddQuantity(quantity valueobject.Quantity) {
	p.Quantity = p.Quantity.Add(quantity)
	p.UpdatedAt = time.Now()
}

// RemoveQuantity subtrai a quantidade informada do estoque atual
func (p *Product) RemoveQuantity(quantity valueobject.Quantity) error {
	result, err := p.Quantity.Subtract(quantity)
	if err != nil {
		return err
	}

	p.Quantity = result
	p.UpdatedAt = time.Now()
	return nil
}

// UpdatePrice substitui o preço do produto
func (p *Product) UpdatePrice(price valueobject.Price) {
	p.Price = price
	p.UpdatedAt = time.Now()
}

// UpdateMinQuantity substitui a quantidade mínima do produto
func (p *Product) UpdateMinQuantity(minQuantity valueobject.Quantity) {
	p.MinQuantity = minQuantity
	p.UpdatedAt = time.Now()
}

// Activate ativa o produto
func (p *Product) Activate() {
	p.Active = true
	p.UpdatedAt = time.Now()
}

// Deactivate desativa o produto
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// IsLowStock indica se a quantidade atual está abaixo da mínima
func (p *Product) IsLowStock() bool {
	return p.Quantity.LessThan(p.MinQuantity)
}

// IsOutOfStock indica se o produto está sem estoque
func (p *Product) IsOutOfStock() bool {
	return p.Quantity.IsZero()
}

// TotalValue calcula o valor total do produto em estoque (preço x quantidade)
func (p *Product) TotalValue() (valueobject.Price, error) {
	return p.Price.Multiply(float64(p.Quantity.Value()))
}

// Equals compara produtos pela identidade
func (p *Product) Equals(other *Product) bool {
	return other != nil && p.ID == other.ID
}
