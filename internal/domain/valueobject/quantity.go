package valueobject

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

var (
	ErrNegativeQuantity       = errors.New("quantidade não pode ser negativa")
	ErrNegativeQuantityResult = errors.New("quantidade resultante não pode ser negativa")
)

// Quantity representa uma quantidade inteira não negativa. Valores
// fracionários são truncados na construção. Imutável.
type Quantity struct {
	value int
}

// NewQuantity cria uma quantidade a partir de um valor possivelmente fracionário
func NewQuantity(value float64) (Quantity, error) {
	if value < 0 {
		return Quantity{}, ErrNegativeQuantity
	}
	return Quantity{value: int(math.Floor(value))}, nil
}

// Value retorna o valor inteiro da quantidade
func (q Quantity) Value() int {
	return q.value
}

// Add soma duas quantidades
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

// Subtract subtrai outra quantidade; o resultado não pode ser negativo
func (q Quantity) Subtract(other Quantity) (Quantity, error) {
	result := q.value - other.value
	if result < 0 {
		return Quantity{}, ErrNegativeQuantityResult
	}
	return Quantity{value: result}, nil
}

// Multiply multiplica a quantidade por um fator, truncando o resultado
func (q Quantity) Multiply(factor float64) (Quantity, error) {
	return NewQuantity(float64(q.value) * factor)
}

// IsZero indica se a quantidade é zero
func (q Quantity) IsZero() bool {
	return q.value == 0
}

// GreaterThan indica se a quantidade é maior que outra
func (q Quantity) GreaterThan(other Quantity) bool {
	return q.value > other.value
}

// LessThan indica se a quantidade é menor que outra
func (q Quantity) LessThan(other Quantity) bool {
	return q.value < other.value
}

// Equals compara duas quantidades
func (q Quantity) Equals(other Quantity) bool {
	return q.value == other.value
}

func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}

// MarshalJSON implementa json.Marshaler
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.value)
}

// UnmarshalJSON implementa json.Unmarshaler
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var raw float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	quantity, err := NewQuantity(raw)
	if err != nil {
		return err
	}

	*q = quantity
	return nil
}
