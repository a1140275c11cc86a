package alert

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

var ErrNotFound = errors.New("alerta não encontrado")

// Type representa o tipo de alerta
type Type string

const (
	TypeLowStock     Type = "ESTOQUE_BAIXO"
	TypeOutOfStock   Type = "ESTOQUE_ZERADO"
	TypeOrderArrived Type = "PEDIDO_CHEGOU"
	TypeOrderDelayed Type = "PEDIDO_ATRASADO"
)

// Status representa o estado de envio do alerta
type Status string

const (
	StatusPending Status = "PENDENTE"
	StatusSent    Status = "ENVIADO"
	StatusFailed  Status = "FALHOU"
)

// DefaultMaxAttempts é o número padrão de tentativas de envio
const DefaultMaxAttempts = 3

// Alert representa uma notificação a ser enviada por um despachante
// externo. O alerta apenas registra o resultado de cada tentativa; quem
// efetivamente envia deve chamar MarkSent ou MarkFailed.
type Alert struct {
	ID          string            `json:"id"`
	Type        Type              `json:"type"`
	Status      Status            `json:"status"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	Recipient   valueobject.Email `json:"recipient"`
	ProductID   string            `json:"product_id,omitempty"`
	SentAt      *time.Time        `json:"sent_at,omitempty"`
	Attempts    int               `json:"attempts"`
	MaxAttempts int               `json:"max_attempts"`
	Active      bool              `json:"active"`
	CreatedAt   time.Time         `json:"created_at"`
}

// NewAlert cria um alerta pendente
func NewAlert(alertType Type, title, message string, recipient valueobject.Email, productID string) *Alert {
	return &Alert{
		ID:          uuid.New().String(),
		Type:        alertType,
		Status:      StatusPending,
		Title:       title,
		Message:     message,
		Recipient:   recipient,
		ProductID:   productID,
		Attempts:    0,
		MaxAttempts: DefaultMaxAttempts,
		Active:      true,
		CreatedAt:   time.Now(),
	}
}

// NewLowStockAlert cria um alerta de estoque baixo para um produto
func NewLowStockAlert(recipient valueobject.Email, productID, productName string, quantity, minQuantity int) *Alert {
	return NewAlert(
		TypeLowStock,
		fmt.Sprintf("Estoque Baixo - %s", productName),
		fmt.Sprintf("O produto %s está com estoque baixo. Quantidade atual: %d, Mínima: %d", productName, quantity, minQuantity),
		recipient,
		productID,
	)
}

// NewOutOfStockAlert cria um alerta de estoque zerado para um produto
func NewOutOfStockAlert(recipient valueobject.Email, productID, productName string) *Alert {
	return NewAlert(
		TypeOutOfStock,
		fmt.Sprintf("Estoque Zerado - %s", productName),
		fmt.Sprintf("O produto %s está sem estoque. É necessário fazer um novo pedido.", productName),
		recipient,
		productID,
	)
}

// NewOrderArrivedAlert cria um alerta de chegada de pedido de um produto
func NewOrderArrivedAlert(recipient valueobject.Email, productID, productName string) *Alert {
	return NewAlert(
		TypeOrderArrived,
		fmt.Sprintf("Pedido Chegou - %s", productName),
		fmt.Sprintf("O pedido do produto %s chegou e foi adicionado ao estoque.", productName),
		recipient,
		productID,
	)
}

// NewOrderDelayedAlert cria um alerta de atraso de pedido de um produto
func NewOrderDelayedAlert(recipient valueobject.Email, productID, productName string, daysLate int) *Alert {
	return NewAlert(
		TypeOrderDelayed,
		fmt.Sprintf("Pedido Atrasado - %s", productName),
		fmt.Sprintf("O pedido do produto %s está atrasado há %d dias.", productName, daysLate),
		recipient,
		productID,
	)
}

// MarkSent registra o envio bem-sucedido e carimba a data, qualquer que
// seja o status atual
func (a *Alert) MarkSent() {
	now := time.Now()
	a.Status = StatusSent
	a.SentAt = &now
}

// MarkFailed registra uma tentativa de envio malsucedida. O alerta só passa
// a FALHOU quando as tentativas atingem o máximo; antes disso continua
// pendente para nova tentativa.
func (a *Alert) MarkFailed() {
	a.Attempts++

	if a.Attempts >= a.MaxAttempts {
		a.Status = StatusFailed
	} else {
		a.Status = StatusPending
	}
}

// CanAttemptSend indica se o despachante ainda pode tentar enviar o alerta
func (a *Alert) CanAttemptSend() bool {
	return a.Status == StatusPending && a.Attempts < a.MaxAttempts
}

// UpdateTitle substitui o título do alerta
func (a *Alert) UpdateTitle(title string) {
	a.Title = title
}

// UpdateMessage substitui a mensagem do alerta
func (a *Alert) UpdateMessage(message string) {
	a.Message = message
}

// Activate ativa o alerta
func (a *Alert) Activate() {
	a.Active = true
}

// Deactivate desativa o alerta
func (a *Alert) Deactivate() {
	a.Active = false
}

// Equals compara alertas pela identidade
func (a *Alert) Equals(other *Alert) bool {
	return other != nil && a.ID == other.ID
}
