package valueobject

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidEmail = errors.New("email inválido")

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email representa um endereço de email normalizado (sem espaços nas bordas
// e em minúsculas). Imutável.
type Email struct {
	value string
}

// NewEmail valida e normaliza um endereço de email
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if !emailRegexp.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

// Value retorna o endereço normalizado
func (e Email) Value() string {
	return e.value
}

// Equals compara dois emails
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) String() string {
	return e.value
}

// MarshalJSON implementa json.Marshaler
func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value)
}

// UnmarshalJSON implementa json.Unmarshaler
func (e *Email) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	email, err := NewEmail(raw)
	if err != nil {
		return err
	}

	*e = email
	return nil
}
