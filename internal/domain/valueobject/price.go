package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativePrice    = errors.New("preço não pode ser negativo")
	ErrCurrencyMismatch = errors.New("não é possível somar preços de moedas diferentes")
)

// DefaultCurrency é a moeda usada quando nenhuma é informada
const DefaultCurrency = "BRL"

// Price representa um valor monetário com moeda. É imutável: toda operação
// retorna um novo Price já arredondado para duas casas decimais.
type Price struct {
	amount   float64
	currency string
}

// NewPrice cria um preço na moeda padrão (BRL)
func NewPrice(amount float64) (Price, error) {
	return NewPriceWithCurrency(amount, DefaultCurrency)
}

// NewPriceWithCurrency cria um preço na moeda informada
func NewPriceWithCurrency(amount float64, currency string) (Price, error) {
	if amount < 0 {
		return Price{}, ErrNegativePrice
	}

	return Price{
		amount:   math.Round(amount*100) / 100,
		currency: currency,
	}, nil
}

// Amount retorna o valor do preço
func (p Price) Amount() float64 {
	return p.amount
}

// Currency retorna a moeda do preço
func (p Price) Currency() string {
	return p.currency
}

// Add soma dois preços da mesma moeda
func (p Price) Add(other Price) (Price, error) {
	if p.currency != other.currency {
		return Price{}, ErrCurrencyMismatch
	}
	return NewPriceWithCurrency(p.amount+other.amount, p.currency)
}

// Multiply multiplica o preço por um fator, arredondando o resultado
func (p Price) Multiply(factor float64) (Price, error) {
	return NewPriceWithCurrency(p.amount*factor, p.currency)
}

// Equals compara valor e moeda
func (p Price) Equals(other Price) bool {
	return p.amount == other.amount && p.currency == other.currency
}

func (p Price) String() string {
	return fmt.Sprintf("%s %.2f", p.currency, p.amount)
}

type priceJSON struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// MarshalJSON implementa json.Marshaler
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(priceJSON{Amount: p.amount, Currency: p.currency})
}

// UnmarshalJSON implementa json.Unmarshaler
func (p *Price) UnmarshalJSON(data []byte) error {
	var raw priceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Currency == "" {
		raw.Currency = DefaultCurrency
	}

	price, err := NewPriceWithCurrency(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}

	*p = price
	return nil
}
