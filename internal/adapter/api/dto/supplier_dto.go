package dto

import (
	"time"

	"github.com/hugohenrick/gestao-estoque/internal/domain/supplier"
)

// SupplierRequest representa os dados para criação ou atualização de um fornecedor
type SupplierRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CNPJ         string `json:"cnpj" binding:"required"`
	LeadTimeDays int    `json:"lead_time_days"`
	Notes        string `json:"notes"`
}

// SupplierResponse representa a resposta com dados de um fornecedor
type SupplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CNPJ         string    `json:"cnpj"`
	LeadTimeDays int       `json:"lead_time_days"`
	Active       bool      `json:"active"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SupplierListResponse representa a resposta com uma lista de fornecedores
type SupplierListResponse struct {
	Suppliers  []SupplierResponse `json:"suppliers"`
	TotalCount int                `json:"total_count"`
}

// ToSupplierResponse converte um fornecedor do domínio para o DTO de resposta
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email.Value(),
		Phone:        s.Phone,
		Address:      s.Address,
		CNPJ:         s.CNPJ,
		LeadTimeDays: s.LeadTimeDays,
		Active:       s.Active,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToSupplierListResponse converte uma lista de fornecedores do domínio
func ToSupplierListResponse(suppliers []*supplier.Supplier) SupplierListResponse {
	responses := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		responses = append(responses, ToSupplierResponse(s))
	}

	return SupplierListResponse{
		Suppliers:  responses,
		TotalCount: len(responses),
	}
}
