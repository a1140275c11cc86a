package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

var (
	ErrNotFound            = errors.New("ordem de compra não encontrada")
	ErrNotPendingApprove   = errors.New("apenas ordens pendentes podem ser aprovadas")
	ErrNotApprovedShip     = errors.New("apenas ordens aprovadas podem ser enviadas")
	ErrNotShippedReceive   = errors.New("apenas ordens enviadas podem ser recebidas")
	ErrReceivedCancel      = errors.New("ordens já recebidas não podem ser canceladas")
	ErrItemsRequirePending = errors.New("apenas ordens pendentes podem ter itens alterados")
	ErrItemNotFound        = errors.New("item não encontrado na ordem de compra")
)

// Status representa o estado de uma ordem de compra
type Status string

const (
	StatusPending   Status = "PENDENTE"
	StatusApproved  Status = "APROVADA"
	StatusShipped   Status = "ENVIADA"
	StatusReceived  Status = "RECEBIDA"
	StatusCancelled Status = "CANCELADA"
)

// Item representa uma linha da ordem de compra
type Item struct {
	ProductID  string               `json:"product_id"`
	Quantity   valueobject.Quantity `json:"quantity"`
	UnitPrice  valueobject.Price    `json:"unit_price"`
	TotalPrice valueobject.Price    `json:"total_price"`
}

// Order representa uma ordem de compra junto a um fornecedor. As transições
// de estado são unidirecionais: PENDENTE -> APROVADA -> ENVIADA -> RECEBIDA,
// com cancelamento possível apenas antes do recebimento.
type Order struct {
	ID         string            `json:"id"`
	SupplierID string            `json:"supplier_id"`
	Items      []Item            `json:"items"`
	Status     Status            `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	ApprovedAt *time.Time        `json:"approved_at,omitempty"`
	ShippedAt  *time.Time        `json:"shipped_at,omitempty"`
	ReceivedAt *time.Time        `json:"received_at,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	TotalPrice valueobject.Price `json:"total_price"`
	Active     bool              `json:"active"`
}

// NewOrder cria uma ordem de compra pendente e sem itens
func NewOrder(supplierID, notes string) *Order {
	zero, _ := valueobject.NewPrice(0)

	return &Order{
		ID:         uuid.New().String(),
		SupplierID: supplierID,
		Items:      []Item{},
		Status:     StatusPending,
		CreatedAt:  time.Now(),
		Notes:      notes,
		TotalPrice: zero,
		Active:     true,
	}
}

// Approve aprova uma ordem pendente
func (o *Order) Approve() error {
	if o.Status != StatusPending {
		return ErrNotPendingApprove
	}

	now := time.Now()
	o.Status = StatusApproved
	o.ApprovedAt = &now
	return nil
}

// Ship marca uma ordem aprovada como enviada pelo fornecedor
func (o *Order) Ship() error {
	if o.Status != StatusApproved {
		return ErrNotApprovedShip
	}

	now := time.Now()
	o.Status = StatusShipped
	o.ShippedAt = &now
	return nil
}

// Receive marca uma ordem enviada como recebida
func (o *Order) Receive() error {
	if o.Status != StatusShipped {
		return ErrNotShippedReceive
	}

	now := time.Now()
	o.Status = StatusReceived
	o.ReceivedAt = &now
	return nil
}

// Cancel cancela uma ordem que ainda não foi recebida
func (o *Order) Cancel() error {
	if o.Status == StatusReceived {
		return ErrReceivedCancel
	}

	o.Status = StatusCancelled
	return nil
}

// AddItem adiciona uma linha à ordem; permitido apenas enquanto pendente
func (o *Order) AddItem(productID string, quantity valueobject.Quantity, unitPrice valueobject.Price) error {
	if o.Status != StatusPending {
		return ErrItemsRequirePending
	}

	totalPrice, err := unitPrice.Multiply(float64(quantity.Value()))
	if err != nil {
		return err
	}

	o.Items = append(o.Items, Item{
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,
	})
	return o.recalculateTotal()
}

// RemoveItem remove as linhas do produto informado; permitido apenas
// enquanto pendente
func (o *Order) RemoveItem(productID string) error {
	if o.Status != StatusPending {
		return ErrItemsRequirePending
	}

	filtered := o.Items[:0]
	for _, item := range o.Items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	o.Items = filtered
	return o.recalculateTotal()
}

// UpdateItemQuantity altera a quantidade de uma linha; permitido apenas
// enquanto pendente
func (o *Order) UpdateItemQuantity(productID string, quantity valueobject.Quantity) error {
	if o.Status != StatusPending {
		return ErrItemsRequirePending
	}

	for i := range o.Items {
		if o.Items[i].ProductID != productID {
			continue
		}

		totalPrice, err := o.Items[i].UnitPrice.Multiply(float64(quantity.Value()))
		if err != nil {
			return err
		}

		o.Items[i].Quantity = quantity
		o.Items[i].TotalPrice = totalPrice
		return o.recalculateTotal()
	}

	return ErrItemNotFound
}

// ItemByProduct busca a linha do produto informado
func (o *Order) ItemByProduct(productID string) (Item, bool) {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return Item{}, false
}

// DaysSinceCreation calcula há quantos dias a ordem foi criada
func (o *Order) DaysSinceCreation() int {
	return int(time.Since(o.CreatedAt).Hours() / 24)
}

// AddNote substitui as observações da ordem
func (o *Order) AddNote(note string) {
	o.Notes = note
}

// Activate ativa a ordem
func (o *Order) Activate() {
	o.Active = true
}

// Deactivate desativa a ordem
func (o *Order) Deactivate() {
	o.Active = false
}

// Equals compara ordens pela identidade
func (o *Order) Equals(other *Order) bool {
	return other != nil && o.ID == other.ID
}

func (o *Order) recalculateTotal() error {
	total := 0.0
	for _, item := range o.Items {
		total += item.TotalPrice.Amount()
	}

	totalPrice, err := valueobject.NewPrice(total)
	if err != nil {
		return err
	}

	o.TotalPrice = totalPrice
	return nil
}
