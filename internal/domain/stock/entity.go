package stock

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

var (
	ErrEmptyName = errors.New("nome do estoque não pode ser vazio")
	ErrNotFound  = errors.New("estoque não encontrado")
)

// Stock representa um estoque que agrega produtos. Os IDs de produto dentro
// de um estoque são únicos: adicionar um produto já presente soma as
// quantidades em vez de duplicar a entrada.
type Stock struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Products    []*product.Product `json:"products"`
	Active      bool               `json:"active"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// Report resume a situação do estoque
type Report struct {
	TotalProducts    int     `json:"total_products"`
	LowStockProducts int     `json:"low_stock_products"`
	OutOfStock       int     `json:"out_of_stock_products"`
	TotalValue       float64 `json:"total_value"`
}

// NewStock cria um novo estoque ativo
func NewStock(name, description string) (*Stock, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Stock{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Products:    []*product.Product{},
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AddProduct adiciona um produto ao estoque. Se já existir um produto com o
// mesmo ID, a quantidade recebida é somada ao produto existente.
func (s *Stock) AddProduct(p *product.Product) {
	if existing := s.FindProductByID(p.ID); existing != nil {
		existing.AddQuantity(p.Quantity)
	} else {
		s.Products = append(s.Products, p)
	}
	s.UpdatedAt = time.Now()
}

// RemoveProduct remove um produto do estoque pelo ID
func (s *Stock) RemoveProduct(productID string) {
	filtered := s.Products[:0]
	for _, p := range s.Products {
		if p.ID != productID {
			filtered = append(filtered, p)
		}
	}
	s.Products = filtered
	s.UpdatedAt = time.Now()
}

// FindProductByID busca um produto do estoque pelo ID
func (s *Stock) FindProductByID(productID string) *product.Product {
	for _, p := range s.Products {
		if p.ID == productID {
			return p
		}
	}
	return nil
}

// LowStockProducts lista os produtos com quantidade abaixo da mínima
func (s *Stock) LowStockProducts() []*product.Product {
	return s.filter(func(p *product.Product) bool { return p.IsLowStock() })
}

// OutOfStockProducts lista os produtos sem estoque
func (s *Stock) OutOfStockProducts() []*product.Product {
	return s.filter(func(p *product.Product) bool { return p.IsOutOfStock() })
}

// ActiveProducts lista os produtos ativos
func (s *Stock) ActiveProducts() []*product.Product {
	return s.filter(func(p *product.Product) bool { return p.Active })
}

// ProductsByCategory lista os produtos de uma categoria
func (s *Stock) ProductsByCategory(category string) []*product.Product {
	return s.filter(func(p *product.Product) bool { return p.Category == category })
}

// UpdateProductQuantity substitui a quantidade de um produto do estoque
func (s *Stock) UpdateProductQuantity(productID string, quantity valueobject.Quantity) {
	if p := s.FindProductByID(productID); p != nil {
		p.UpdateQuantity(quantity)
		s.UpdatedAt = time.Now()
	}
}

// AddProductQuantity soma uma quantidade a um produto do estoque
func (s *Stock) AddProductQuantity(productID string, quantity valueobject.Quantity) {
	if p := s.FindProductByID(productID); p != nil {
		p.AddQuantity(quantity)
		s.UpdatedAt = time.Now()
	}
}

// RemoveProductQuantity subtrai uma quantidade de um produto do estoque
func (s *Stock) RemoveProductQuantity(productID string, quantity valueobject.Quantity) error {
	p := s.FindProductByID(productID)
	if p == nil {
		return product.ErrNotFound
	}

	if err := p.RemoveQuantity(quantity); err != nil {
		return err
	}

	s.UpdatedAt = time.Now()
	return nil
}

// TotalValue soma o valor (preço x quantidade) de todos os produtos do
// estoque, inclusive os inativos.
func (s *Stock) TotalValue() float64 {
	total := 0.0
	for _, p := range s.Products {
		value, err := p.TotalValue()
		if err != nil {
			continue
		}
		total += value.Amount()
	}
	return total
}

// BuildReport monta o resumo do estoque
func (s *Stock) BuildReport() Report {
	return Report{
		TotalProducts:    len(s.Products),
		LowStockProducts: len(s.LowStockProducts()),
		OutOfStock:       len(s.OutOfStockProducts()),
		TotalValue:       s.TotalValue(),
	}
}

// Activate ativa o estoque
func (s *Stock) Activate() {
	s.Active = true
	s.UpdatedAt = time.Now()
}

// Deactivate desativa o estoque
func (s *Stock) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
}

// Equals compara estoques pela identidade
func (s *Stock) Equals(other *Stock) bool {
	return other != nil && s.ID == other.ID
}

func (s *Stock) filter(keep func(*product.Product) bool) []*product.Product {
	result := []*product.Product{}
	for _, p := range s.Products {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}
