package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

var (
	ErrNotFound          = errors.New("venda não encontrada")
	ErrInsufficientStock = errors.New("estoque insuficiente para esta venda")
)

// Sale representa um registro de venda de um produto
type Sale struct {
	ID           string               `json:"id"`
	ProductID    string               `json:"product_id"`
	QuantitySold valueobject.Quantity `json:"quantity_sold"`
	UnitPrice    valueobject.Price    `json:"unit_price"`
	TotalPrice   valueobject.Price    `json:"total_price"`
	SoldAt       time.Time            `json:"sold_at"`
	CustomerID   string               `json:"customer_id,omitempty"`
	SellerID     string               `json:"seller_id,omitempty"`
	Discount     *valueobject.Price   `json:"discount,omitempty"`
	Notes        string               `json:"notes,omitempty"`
}

// NewSale cria um registro de venda com o total derivado de preço x quantidade
func NewSale(productID string, quantitySold valueobject.Quantity, unitPrice valueobject.Price, customerID, sellerID, notes string) (*Sale, error) {
	totalPrice, err := unitPrice.Multiply(float64(quantitySold.Value()))
	if err != nil {
		return nil, err
	}

	return &Sale{
		ID:           uuid.New().String(),
		ProductID:    productID,
		QuantitySold: quantitySold,
		UnitPrice:    unitPrice,
		TotalPrice:   totalPrice,
		SoldAt:       time.Now(),
		CustomerID:   customerID,
		SellerID:     sellerID,
		Notes:        notes,
	}, nil
}

// Profit calcula o lucro da venda: (preço unitário - custo unitário) x
// quantidade. Custo acima do preço resulta em erro, pois um preço não pode
// ser negativo.
func (s *Sale) Profit(unitCost valueobject.Price) (valueobject.Price, error) {
	unitProfit := s.UnitPrice.Amount() - unitCost.Amount()
	return valueobject.NewPriceWithCurrency(unitProfit*float64(s.QuantitySold.Value()), s.UnitPrice.Currency())
}

// ProfitMargin calcula a margem de lucro percentual sobre o preço unitário
func (s *Sale) ProfitMargin(unitCost valueobject.Price) float64 {
	unitProfit := s.UnitPrice.Amount() - unitCost.Amount()
	return (unitProfit / s.UnitPrice.Amount()) * 100
}

// ApplyDiscount registra o desconto e o subtrai do total atual. Chamadas
// repetidas acumulam sobre o total já descontado.
func (s *Sale) ApplyDiscount(discount valueobject.Price) error {
	newTotal, err := valueobject.NewPriceWithCurrency(s.TotalPrice.Amount()-discount.Amount(), s.TotalPrice.Currency())
	if err != nil {
		return err
	}

	s.Discount = &discount
	s.TotalPrice = newTotal
	return nil
}

// AddNote substitui as observações da venda
func (s *Sale) AddNote(note string) {
	s.Notes = note
}

// Equals compara vendas pela identidade
func (s *Sale) Equals(other *Sale) bool {
	return other != nil && s.ID == other.ID
}
