package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "email simples", raw: "teste@exemplo.com", want: "teste@exemplo.com"},
		{name: "normaliza maiúsculas e espaços", raw: "  TEST@EXAMPLE.COM  ", want: "test@example.com"},
		{name: "subdomínio", raw: "compras@estoque.empresa.com.br", want: "compras@estoque.empresa.com.br"},
		{name: "sem arroba", raw: "invalid-email", wantErr: true},
		{name: "sem domínio", raw: "teste@", wantErr: true},
		{name: "sem tld", raw: "teste@exemplo", wantErr: true},
		{name: "com espaço interno", raw: "te ste@exemplo.com", wantErr: true},
		{name: "vazio", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestEmailEquals(t *testing.T) {
	a, _ := NewEmail("gerente@loja.com")
	b, _ := NewEmail("GERENTE@loja.com ")
	c, _ := NewEmail("outro@loja.com")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
