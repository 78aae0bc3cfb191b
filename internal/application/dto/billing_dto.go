package dto

import "github.com/shopspring/decimal"

// GenerateInvoiceRequest body para POST /api/orders/:id/invoice.
type GenerateInvoiceRequest struct {
	Number  string `json:"number,omitempty"`   // opcional; si va vacío se genera
	DueDate string `json:"due_date,omitempty"` // YYYY-MM-DD; por defecto 30 días
}

// InvoiceLineResponse línea de la factura generada.
type InvoiceLineResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// InvoiceResponse factura con detalle.
type InvoiceResponse struct {
	ID          string                `json:"id"`
	AccountID   string                `json:"account_id"`
	OrderID     string                `json:"order_id,omitempty"`
	Number      string                `json:"number"`
	IssueDate   string                `json:"issue_date"`
	DueDate     string                `json:"due_date"`
	Status      string                `json:"status"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	AmountPaid  decimal.Decimal       `json:"amount_paid"`
	BalanceDue  decimal.Decimal       `json:"balance_due"`
	Lines       []InvoiceLineResponse `json:"lines"`
}

// AccountResponse cuenta en resultados de búsqueda (lookup de caja).
type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
