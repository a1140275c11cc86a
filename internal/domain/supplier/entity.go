package supplier

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

var (
	ErrEmptyName        = errors.New("nome do fornecedor não pode ser vazio")
	ErrInvalidCNPJ      = errors.New("cnpj inválido")
	ErrNegativeLeadTime = errors.New("prazo de entrega não pode ser negativo")
	ErrNotFound         = errors.New("fornecedor não encontrado")
	ErrInactive         = errors.New("fornecedor está inativo")
)

var nonDigits = regexp.MustCompile(`\D`)

// Supplier representa um fornecedor de produtos
type Supplier struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        valueobject.Email `json:"email"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	CNPJ         string            `json:"cnpj"`
	LeadTimeDays int               `json:"lead_time_days"`
	Active       bool              `json:"active"`
	Notes        string            `json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewSupplier cria um novo fornecedor ativo. O CNPJ é validado aqui: deve
// ter exatamente 14 dígitos após remover a formatação e não pode ser uma
// sequência de dígitos idênticos.
func NewSupplier(name string, email valueobject.Email, phone, address, cnpj string, leadTimeDays int, notes string) (*Supplier, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if !validCNPJ(cnpj) {
		return nil, ErrInvalidCNPJ
	}

	if leadTimeDays < 0 {
		return nil, ErrNegativeLeadTime
	}

	now := time.Now()
	return &Supplier{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Address:      address,
		CNPJ:         cnpj,
		LeadTimeDays: leadTimeDays,
		Active:       true,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UpdateContact atualiza os dados de contato do fornecedor
func (s *Supplier) UpdateContact(email valueobject.Email, phone, address string) {
	s.Email = email
	s.Phone = phone
	s.Address = address
	s.UpdatedAt = time.Now()
}

// UpdateLeadTime atualiza o prazo de entrega, que não pode ser negativo
func (s *Supplier) UpdateLeadTime(days int) error {
	if days < 0 {
		return ErrNegativeLeadTime
	}

	s.LeadTimeDays = days
	s.UpdatedAt = time.Now()
	return nil
}

// AddNote substitui as observações do fornecedor
func (s *Supplier) AddNote(note string) {
	s.Notes = note
	s.UpdatedAt = time.Now()
}

// Activate ativa o fornecedor
func (s *Supplier) Activate() {
	s.Active = true
	s.UpdatedAt = time.Now()
}

// Deactivate desativa o fornecedor
func (s *Supplier) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
}

// EstimatedDelivery calcula a data estimada de entrega a partir da data do
// pedido e do prazo em dias
func (s *Supplier) EstimatedDelivery(orderDate time.Time) time.Time {
	return orderDate.AddDate(0, 0, s.LeadTimeDays)
}

// Equals compara fornecedores pela identidade
func (s *Supplier) Equals(other *Supplier) bool {
	return other != nil && s.ID == other.ID
}

func validCNPJ(cnpj string) bool {
	digits := nonDigits.ReplaceAllString(cnpj, "")
	if len(digits) != 14 {
		return false
	}

	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return true
		}
	}
	return false
}
