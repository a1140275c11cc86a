package supplier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

func newTestSupplier(t *testing.T) *Supplier {
	t.Helper()

	email, err := valueobject.NewEmail("contato@fornecedor.com.br")
	require.NoError(t, err)

	s, err := NewSupplier("Malhas Sul Ltda", email, "(51) 3333-4444", "Rua das Fábricas, 100", "12.345.678/0001-95", 7, "")
	require.NoError(t, err)
	return s
}

func TestNewSupplier(t *testing.T) {
	s := newTestSupplier(t)

	assert.NotEmpty(t, s.ID)
	assert.True(t, s.Active)
	assert.Equal(t, 7, s.LeadTimeDays)
}

func TestNewSupplierCNPJValidation(t *testing.T) {
	email, _ := valueobject.NewEmail("contato@fornecedor.com.br")

	tests := []struct {
		name    string
		cnpj    string
		wantErr error
	}{
		{name: "formatado válido", cnpj: "12.345.678/0001-95"},
		{name: "apenas dígitos", cnpj: "12345678000195"},
		{name: "menos de 14 dígitos", cnpj: "1234567890123", wantErr: ErrInvalidCNPJ},
		{name: "mais de 14 dígitos", cnpj: "123456780001951", wantErr: ErrInvalidCNPJ},
		{name: "dígitos todos iguais", cnpj: "11111111111111", wantErr: ErrInvalidCNPJ},
		{name: "vazio", cnpj: "", wantErr: ErrInvalidCNPJ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSupplier("Fornecedor", email, "", "", tt.cnpj, 5, "")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSupplierUpdateLeadTime(t *testing.T) {
	s := newTestSupplier(t)

	require.NoError(t, s.UpdateLeadTime(10))
	assert.Equal(t, 10, s.LeadTimeDays)

	err := s.UpdateLeadTime(-1)
	require.ErrorIs(t, err, ErrNegativeLeadTime)
	assert.Equal(t, 10, s.LeadTimeDays)
}

func TestSupplierEstimatedDelivery(t *testing.T) {
	s := newTestSupplier(t)

	orderDate := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	delivery := s.EstimatedDelivery(orderDate)

	assert.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC), delivery)
}

func TestSupplierContactAndNotes(t *testing.T) {
	s := newTestSupplier(t)

	email, _ := valueobject.NewEmail("novo@fornecedor.com.br")
	s.UpdateContact(email, "(51) 9999-0000", "Av. Industrial, 200")
	assert.Equal(t, "novo@fornecedor.com.br", s.Email.Value())
	assert.Equal(t, "Av. Industrial, 200", s.Address)

	s.AddNote("entrega apenas às sextas")
	assert.Equal(t, "entrega apenas às sextas", s.Notes)

	s.Deactivate()
	assert.False(t, s.Active)
}
