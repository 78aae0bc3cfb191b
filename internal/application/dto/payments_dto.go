package dto

import "github.com/shopspring/decimal"

// InvoiceSummary factura abierta en el snapshot de sesión del flujo de pago.
type InvoiceSummary struct {
	ID                string          `json:"id"`
	Number            string          `json:"number"`
	DueDate           string          `json:"due_date"` // fecha corta según locale
	Status            string          `json:"status"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	AmountPaid        decimal.Decimal `json:"amount_paid"`
	BalanceDue        decimal.Decimal `json:"balance_due"`
	BalanceDueDisplay string          `json:"balance_due_display"` // ej. "$ 1,234.50"
}

// OpenInvoicesResponse respuesta de GET /api/accounts/:id/invoices.
type OpenInvoicesResponse struct {
	AccountID string           `json:"account_id"`
	Invoices  []InvoiceSummary `json:"invoices"`
}

// CreditMemoSummary nota crédito con saldo restante.
type CreditMemoSummary struct {
	ID               string          `json:"id"`
	Number           string          `json:"number"`
	IssuedAt         string          `json:"issued_at"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// CreditsResponse respuesta de GET /api/accounts/:id/credits: las notas y el
// pool (suma de saldos restantes).
type CreditsResponse struct {
	AccountID        string              `json:"account_id"`
	Credits          []CreditMemoSummary `json:"credits"`
	AvailableCredit  decimal.Decimal     `json:"available_credit"`
	AvailableDisplay string              `json:"available_credit_display"`
}

// AllocationInput selección de una factura dentro del pago: modo total o
// parcial con monto. El orden del arreglo es el orden de selección y define
// cómo se consume el crédito.
type AllocationInput struct {
	InvoiceID     string          `json:"invoice_id"`
	IsFullPayment bool            `json:"is_full_payment"`
	Amount        decimal.Decimal `json:"amount,omitempty"` // ignorado en modo total
}

// ACHDetails datos bancarios capturados en el formulario ACH. El número de
// cuenta viene dos veces (campo y confirmación) y deben coincidir.
type ACHDetails struct {
	AccountHolder        string `json:"account_holder"`
	RoutingNumber        string `json:"routing_number"`
	AccountNumber        string `json:"account_number"`
	AccountNumberConfirm string `json:"account_number_confirm"`
	AccountType          string `json:"account_type"` // checking | savings
}

// PaymentMethodInput método de pago del envío: token de pasarela (tarjeta ya
// tokenizada por el frontend), método guardado, o datos ACH a validar.
type PaymentMethodInput struct {
	Token         string      `json:"token,omitempty"`           // token de la pasarela
	SavedMethodID string      `json:"saved_method_id,omitempty"` // método previamente guardado
	ACH           *ACHDetails `json:"ach,omitempty"`
	SaveMethod    bool        `json:"save_method"`
	Brand         string      `json:"brand,omitempty"`
	Last4         string      `json:"last4,omitempty"`
	ExpMonth      int         `json:"exp_month,omitempty"`
	ExpYear       int         `json:"exp_year,omitempty"`
}

// SubmitPaymentRequest body para POST /api/payments y POST /api/pos/payments.
type SubmitPaymentRequest struct {
	AccountID     string             `json:"account_id"`
	GatewayID     string             `json:"gateway_id,omitempty"` // vacío = pasarela predeterminada
	Allocations   []AllocationInput  `json:"allocations"`
	CreditToApply decimal.Decimal    `json:"credit_to_apply,omitempty"`
	Method        PaymentMethodInput `json:"method"`
}

// PayInvoiceRequest body para POST /api/invoices/:id/pay (flujo de una factura).
type PayInvoiceRequest struct {
	IsFullPayment bool               `json:"is_full_payment"`
	Amount        decimal.Decimal    `json:"amount,omitempty"`
	GatewayID     string             `json:"gateway_id,omitempty"`
	Method        PaymentMethodInput `json:"method"`
}

// AllocationResponse asignación aplicada a una factura.
type AllocationResponse struct {
	InvoiceID     string          `json:"invoice_id"`
	Amount        decimal.Decimal `json:"amount"`
	IsFullPayment bool            `json:"is_full_payment"`
}

// PaymentResponse resultado de un cobro.
type PaymentResponse struct {
	ID                   string               `json:"id"`
	AccountID            string               `json:"account_id"`
	GatewayID            string               `json:"gateway_id"`
	Status               string               `json:"status"`
	Amount               decimal.Decimal      `json:"amount"`
	AmountDisplay        string               `json:"amount_display"`
	CreditApplied        decimal.Decimal      `json:"credit_applied"`
	GatewayTransactionID string               `json:"gateway_transaction_id,omitempty"`
	MethodSummary        string               `json:"method_summary,omitempty"`
	Allocations          []AllocationResponse `json:"allocations"`
	CreatedAt            string               `json:"created_at"`
}
