package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName      = errors.New("nome do usuário não pode ser vazio")
	ErrEmptyPassword  = errors.New("senha não pode ser vazia")
	ErrNotFound       = errors.New("usuário não encontrado")
	ErrInvalidLogin   = errors.New("email ou senha inválidos")
	ErrDuplicateEmail = errors.New("já existe um usuário com este email")
)

// Role representa o papel do usuário
type Role string

const (
	RoleAdmin   Role = "admin"   // Administrador do sistema
	RoleManager Role = "manager" // Gerente de estoque
	RoleStaff   Role = "staff"   // Funcionário regular
)

// User representa um usuário do sistema
type User struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        valueobject.Email `json:"email"`
	PasswordHash string            `json:"-"`
	Role         Role              `json:"role"`
	Active       bool              `json:"active"`
	LastLoginAt  *time.Time        `json:"last_login_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewUser cria um novo usuário ativo com a senha já armazenada como hash
func NewUser(name string, email valueobject.Email, password string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword armazena o hash bcrypt da senha
func (u *User) SetPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hashed)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifica se a senha fornecida confere com o hash armazenado
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RegisterLogin carimba a data do último login
func (u *User) RegisterLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// IsAdmin verifica se o usuário é administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Activate ativa o usuário
func (u *User) Activate() {
	u.Active = true
	u.UpdatedAt = time.Now()
}

// Deactivate desativa o usuário
func (u *User) Deactivate() {
	u.Active = false
	u.UpdatedAt = time.Now()
}
