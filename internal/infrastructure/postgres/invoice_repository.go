package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, company_id, account_id, order_id, number, issue_date, due_date, total_amount, amount_paid, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.AccountID, nullIfEmpty(invoice.OrderID),
		invoice.Number, invoice.IssueDate, invoice.DueDate,
		invoice.TotalAmount, invoice.AmountPaid, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de detalle.
func (r *InvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_lines (id, invoice_id, description, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.InvoiceID, line.Description, line.Quantity, line.UnitPrice, line.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert invoice line: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, company_id, account_id, COALESCE(order_id, ''), number,
		       issue_date, due_date, total_amount, amount_paid, status,
		       created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.AccountID, &inv.OrderID, &inv.Number,
		&inv.IssueDate, &inv.DueDate, &inv.TotalAmount, &inv.AmountPaid, &inv.Status,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetLinesByInvoiceID obtiene todas las líneas de una factura.
func (r *InvoiceRepo) GetLinesByInvoiceID(invoiceID string) ([]*entity.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price, subtotal
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceLine
	for rows.Next() {
		var line entity.InvoiceLine
		if err := rows.Scan(&line.ID, &line.InvoiceID, &line.Description, &line.Quantity, &line.UnitPrice, &line.Subtotal); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		list = append(list, &line)
	}
	return list, rows.Err()
}

// ListOpenByAccount devuelve las facturas abiertas de la cuenta, de la más
// próxima a vencer a la más lejana. Es el snapshot de sesión del flujo de pago.
func (r *InvoiceRepo) ListOpenByAccount(accountID string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, company_id, account_id, COALESCE(order_id, ''), number,
		       issue_date, due_date, total_amount, amount_paid, status,
		       created_at, updated_at
		FROM invoices
		WHERE account_id = $1 AND status = ANY($2) AND total_amount > amount_paid
		ORDER BY due_date, number`
	rows, err := r.q.Query(context.Background(), query, accountID, entity.OpenInvoiceStatuses)
	if err != nil {
		return nil, fmt.Errorf("list open invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.AccountID, &inv.OrderID, &inv.Number,
			&inv.IssueDate, &inv.DueDate, &inv.TotalAmount, &inv.AmountPaid, &inv.Status,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// UpdatePayment actualiza monto pagado y estado tras aplicar un pago.
func (r *InvoiceRepo) UpdatePayment(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET amount_paid = $2,
		    status      = $3,
		    updated_at  = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.AmountPaid, invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice payment: %w", err)
	}
	return nil
}
