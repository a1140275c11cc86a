package dto

import (
	"time"

	"github.com/hugohenrick/gestao-estoque/internal/domain/purchase"
)

// PurchaseOrderItemRequest representa uma linha da ordem de compra
type PurchaseOrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"required"`
}

// PurchaseOrderRequest representa os dados para criação de uma ordem de compra
type PurchaseOrderRequest struct {
	SupplierID string                     `json:"supplier_id" binding:"required"`
	Items      []PurchaseOrderItemRequest `json:"items" binding:"required"`
	Notes      string                     `json:"notes"`
}

// ReceivePurchaseOrderRequest representa os dados para recebimento de uma ordem
type ReceivePurchaseOrderRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required"`
}

// PurchaseOrderItemResponse representa uma linha da ordem na resposta
type PurchaseOrderItemResponse struct {
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// PurchaseOrderResponse representa a resposta com dados de uma ordem de compra
type PurchaseOrderResponse struct {
	ID         string                      `json:"id"`
	SupplierID string                      `json:"supplier_id"`
	Items      []PurchaseOrderItemResponse `json:"items"`
	Status     string                      `json:"status"`
	TotalPrice float64                     `json:"total_price"`
	Notes      string                      `json:"notes,omitempty"`
	CreatedAt  time.Time                   `json:"created_at"`
	ApprovedAt *time.Time                  `json:"approved_at,omitempty"`
	ShippedAt  *time.Time                  `json:"shipped_at,omitempty"`
	ReceivedAt *time.Time                  `json:"received_at,omitempty"`
	Active     bool                        `json:"active"`
}

// PurchaseOrderListResponse representa a resposta com uma lista de ordens
type PurchaseOrderListResponse struct {
	Orders     []PurchaseOrderResponse `json:"orders"`
	TotalCount int                     `json:"total_count"`
}

// ToPurchaseOrderResponse converte uma ordem do domínio para o DTO de resposta
func ToPurchaseOrderResponse(o *purchase.Order) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, PurchaseOrderItemResponse{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity.Value(),
			UnitPrice:  item.UnitPrice.Amount(),
			TotalPrice: item.TotalPrice.Amount(),
		})
	}

	return PurchaseOrderResponse{
		ID:         o.ID,
		SupplierID: o.SupplierID,
		Items:      items,
		Status:     string(o.Status),
		TotalPrice: o.TotalPrice.Amount(),
		Notes:      o.Notes,
		CreatedAt:  o.CreatedAt,
		ApprovedAt: o.ApprovedAt,
		ShippedAt:  o.ShippedAt,
		ReceivedAt: o.ReceivedAt,
		Active:     o.Active,
	}
}

// ToPurchaseOrderListResponse converte uma lista de ordens do domínio
func ToPurchaseOrderListResponse(orders []*purchase.Order) PurchaseOrderListResponse {
	responses := make([]PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToPurchaseOrderResponse(o))
	}

	return PurchaseOrderListResponse{
		Orders:     responses,
		TotalCount: len(responses),
	}
}
