package dto

import (
	"time"

	"github.com/hugohenrick/gestao-estoque/internal/domain/alert"
	"github.com/hugohenrick/gestao-estoque/internal/usecase"
)

// CheckLowStockRequest representa os dados para verificação de estoque baixo
type CheckLowStockRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required"`
}

// AlertResponse representa a resposta com dados de um alerta
type AlertResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Recipient   string     `json:"recipient"`
	ProductID   string     `json:"product_id,omitempty"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	Attempts    int        `json:"attempts"`
	MaxAttempts int        `json:"max_attempts"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AlertListResponse representa a resposta com uma lista de alertas
type AlertListResponse struct {
	Alerts     []AlertResponse `json:"alerts"`
	TotalCount int             `json:"total_count"`
}

// CheckLowStockResponse representa o resultado da verificação de estoque baixo
type CheckLowStockResponse struct {
	Products      []LowStockProductResponse `json:"products"`
	AlertsCreated int                       `json:"alerts_created"`
}

// LowStockProductResponse descreve um produto abaixo do estoque mínimo
type LowStockProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
}

// ToAlertResponse converte um alerta do domínio para o DTO de resposta
func ToAlertResponse(a *alert.Alert) AlertResponse {
	return AlertResponse{
		ID:          a.ID,
		Type:        string(a.Type),
		Status:      string(a.Status),
		Title:       a.Title,
		Message:     a.Message,
		Recipient:   a.Recipient.Value(),
		ProductID:   a.ProductID,
		SentAt:      a.SentAt,
		Attempts:    a.Attempts,
		MaxAttempts: a.MaxAttempts,
		Active:      a.Active,
		CreatedAt:   a.CreatedAt,
	}
}

// ToAlertListResponse converte uma lista de alertas do domínio
func ToAlertListResponse(alerts []*alert.Alert) AlertListResponse {
	responses := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		responses = append(responses, ToAlertResponse(a))
	}

	return AlertListResponse{
		Alerts:     responses,
		TotalCount: len(responses),
	}
}

// ToCheckLowStockResponse converte o resultado do caso de uso de verificação
func ToCheckLowStockResponse(r *usecase.CheckLowStockResponse) CheckLowStockResponse {
	products := make([]LowStockProductResponse, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, LowStockProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			MinQuantity: p.MinQuantity,
		})
	}

	return CheckLowStockResponse{
		Products:      products,
		AlertsCreated: r.AlertsCreated,
	}
}
