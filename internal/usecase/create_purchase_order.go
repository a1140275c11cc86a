package usecase

import (
	"context"
	"fmt"

	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/purchase"
	"github.com/hugohenrick/gestao-estoque/internal/domain/supplier"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

// PurchaseOrderItemRequest representa uma linha da ordem a ser criada
type PurchaseOrderItemRequest struct {
	ProductID string
	Quantity  float64
	UnitPrice float64
}

// CreatePurchaseOrderRequest contém os dados para criação de uma ordem de compra
type CreatePurchaseOrderRequest struct {
	SupplierID string
	Items      []PurchaseOrderItemRequest
	Notes      string
}

// CreatePurchaseOrderResponse retorna a ordem criada
type CreatePurchaseOrderResponse struct {
	Order *purchase.Order
}

// CreatePurchaseOrder cria uma ordem de compra pendente junto a um
// fornecedor ativo, validando cada produto referenciado
type CreatePurchaseOrder struct {
	orders    purchase.Repository
	suppliers supplier.Repository
	products  product.Repository
}

// NewCreatePurchaseOrder cria o caso de uso de criação de ordem de compra
func NewCreatePurchaseOrder(orders purchase.Repository, suppliers supplier.Repository, products product.Repository) *CreatePurchaseOrder {
	return &CreatePurchaseOrder{orders: orders, suppliers: suppliers, products: products}
}

// Execute valida fornecedor e produtos, monta a ordem e a persiste
func (uc *CreatePurchaseOrder) Execute(ctx context.Context, req CreatePurchaseOrderRequest) (*CreatePurchaseOrderResponse, error) {
	sup, err := uc.suppliers.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	if !sup.Active {
		return nil, supplier.ErrInactive
	}

	order := purchase.NewOrder(sup.ID, req.Notes)

	for _, item := range req.Items {
		if _, err := uc.products.FindByID(ctx, item.ProductID); err != nil {
			return nil, fmt.Errorf("produto com ID %s: %w", item.ProductID, err)
		}

		quantity, err := valueobject.NewQuantity(item.Quantity)
		if err != nil {
			return nil, err
		}

		unitPrice, err := valueobject.NewPrice(item.UnitPrice)
		if err != nil {
			return nil, err
		}

		if err := order.AddItem(item.ProductID, quantity, unitPrice); err != nil {
			return nil, err
		}
	}

	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	return &CreatePurchaseOrderResponse{Order: order}, nil
}
