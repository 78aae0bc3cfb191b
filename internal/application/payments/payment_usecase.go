package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pagos-api/internal/application/dto"
	"github.com/jhoicas/Pagos-api/internal/domain"
	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/payment"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
	"github.com/jhoicas/Pagos-api/pkg/logger"
	"github.com/jhoicas/Pagos-api/pkg/moneyfmt"
)

// FormatConfig moneda y locale para los campos de presentación.
type FormatConfig struct {
	Currency string
	Locale   string
}

// PaymentUseCase orquesta los flujos de cobro: factura individual, pago
// multi-factura por cuenta con crédito, y caja (POS). El cálculo de
// asignaciones vive en internal/domain/payment; aquí solo se cargan los
// datos, se cobra a la pasarela y se persiste el resultado en una sola
// transacción.
type PaymentUseCase struct {
	txRunner    TxRunner
	accountRepo repository.AccountRepository
	invoiceRepo repository.InvoiceRepository
	creditRepo  repository.CreditMemoRepository
	gatewayRepo repository.GatewayRepository
	methodRepo  repository.PaymentMethodRepository
	paymentRepo repository.PaymentRepository
	gateway     GatewayClient
	fmtCfg      FormatConfig
	log         *logger.Logger
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	txRunner TxRunner,
	accountRepo repository.AccountRepository,
	invoiceRepo repository.InvoiceRepository,
	creditRepo repository.CreditMemoRepository,
	gatewayRepo repository.GatewayRepository,
	methodRepo repository.PaymentMethodRepository,
	paymentRepo repository.PaymentRepository,
	gateway GatewayClient,
	fmtCfg FormatConfig,
	log *logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		txRunner:    txRunner,
		accountRepo: accountRepo,
		invoiceRepo: invoiceRepo,
		creditRepo:  creditRepo,
		gatewayRepo: gatewayRepo,
		methodRepo:  methodRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		fmtCfg:      fmtCfg,
		log:         log,
	}
}

// ListOpenInvoices devuelve el snapshot de facturas abiertas de la cuenta
// para una sesión de pago. Se toma una vez por sesión (o en recarga
// explícita); no se reconsulta en cada cambio de asignación.
func (uc *PaymentUseCase) ListOpenInvoices(ctx context.Context, companyID, accountID string) (*dto.OpenInvoicesResponse, error) {
	account, err := uc.requireAccount(companyID, accountID)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListOpenByAccount(account.ID)
	if err != nil {
		return nil, fmt.Errorf("listar facturas abiertas: %w", err)
	}
	resp := &dto.OpenInvoicesResponse{AccountID: account.ID, Invoices: make([]dto.InvoiceSummary, 0, len(invoices))}
	for _, inv := range invoices {
		balance := inv.BalanceDue()
		resp.Invoices = append(resp.Invoices, dto.InvoiceSummary{
			ID:                inv.ID,
			Number:            inv.Number,
			DueDate:           moneyfmt.ShortDate(inv.DueDate, uc.fmtCfg.Locale),
			Status:            inv.Status,
			TotalAmount:       inv.TotalAmount,
			AmountPaid:        inv.AmountPaid,
			BalanceDue:        balance,
			BalanceDueDisplay: moneyfmt.Amount(balance, uc.fmtCfg.Currency, uc.fmtCfg.Locale),
		})
	}
	return resp, nil
}

// ListCredits devuelve las notas crédito abiertas de la cuenta y el pool
// (suma de saldos restantes).
func (uc *PaymentUseCase) ListCredits(ctx context.Context, companyID, accountID string) (*dto.CreditsResponse, error) {
	account, err := uc.requireAccount(companyID, accountID)
	if err != nil {
		return nil, err
	}
	memos, err := uc.creditRepo.ListOpenByAccount(account.ID)
	if err != nil {
		return nil, fmt.Errorf("listar notas crédito: %w", err)
	}
	pool := payment.CreditPool(memos)
	resp := &dto.CreditsResponse{
		AccountID:        account.ID,
		Credits:          make([]dto.CreditMemoSummary, 0, len(memos)),
		AvailableCredit:  pool,
		AvailableDisplay: moneyfmt.Amount(pool, uc.fmtCfg.Currency, uc.fmtCfg.Locale),
	}
	for _, memo := range memos {
		resp.Credits = append(resp.Credits, dto.CreditMemoSummary{
			ID:               memo.ID,
			Number:           memo.Number,
			IssuedAt:         moneyfmt.ShortDate(memo.IssuedAt, uc.fmtCfg.Locale),
			Amount:           memo.Amount,
			RemainingBalance: memo.RemainingBalance,
		})
	}
	return resp, nil
}

// SearchAccounts busca cuentas por nombre para el lookup de caja.
func (uc *PaymentUseCase) SearchAccounts(ctx context.Context, companyID, name string, limit int) ([]dto.AccountResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	accounts, err := uc.accountRepo.SearchByCompanyAndName(companyID, name, limit)
	if err != nil {
		return nil, fmt.Errorf("buscar cuentas: %w", err)
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.AccountResponse{ID: a.ID, Name: a.Name, Email: a.Email, Phone: a.Phone})
	}
	return out, nil
}

// SubmitPayment ejecuta el flujo multi-factura: arma la selección en el orden
// recibido, construye las asignaciones, aplica el crédito elegido (voraz, en
// orden de selección), cobra a la pasarela y persiste todo en una
// transacción. channel distingue autoservicio web de caja (POS).
func (uc *PaymentUseCase) SubmitPayment(ctx context.Context, companyID, userID, channel string, in dto.SubmitPaymentRequest) (*dto.PaymentResponse, error) {
	account, err := uc.requireAccount(companyID, in.AccountID)
	if err != nil {
		return nil, err
	}
	gateway, err := uc.resolveGateway(companyID, in.GatewayID)
	if err != nil {
		return nil, err
	}
	token, summary, err := uc.resolveMethod(account.ID, in.Method)
	if err != nil {
		return nil, err
	}

	// Snapshot de facturas abiertas; toda asignación debe referenciar una.
	invoices, err := uc.invoiceRepo.ListOpenByAccount(account.ID)
	if err != nil {
		return nil, fmt.Errorf("cargar facturas: %w", err)
	}
	byID := make(map[string]*entity.Invoice, len(invoices))
	for _, inv := range invoices {
		byID[inv.ID] = inv
	}

	// Sesión de pago: selección → revisión → envío. La selección respeta el
	// orden del request, que es el orden en que el usuario seleccionó.
	sess := payment.NewSession()
	sel := sess.Selection()
	for _, a := range in.Allocations {
		inv, ok := byID[a.InvoiceID]
		if !ok {
			return nil, fmt.Errorf("%w: la factura %s no está abierta para la cuenta", domain.ErrNotFound, a.InvoiceID)
		}
		sel.Select(inv.ID, inv.BalanceDue(), a.IsFullPayment)
		if !a.IsFullPayment {
			sel.SetPartialAmount(inv.ID, a.Amount)
		}
	}

	allocs, total := payment.BuildAllocations(sel)

	memos, err := uc.creditRepo.ListOpenByAccount(account.ID)
	if err != nil {
		return nil, fmt.Errorf("cargar notas crédito: %w", err)
	}
	pool := payment.CreditPool(memos)
	creditToApply := payment.ClampCreditToApply(in.CreditToApply, pool, total)
	final := payment.ApplyCredit(allocs, creditToApply)

	sub, err := payment.BuildSubmission(account.ID, gateway.ID, final)
	if err != nil {
		return nil, err
	}
	if err := sess.Review(); err != nil {
		return nil, err
	}
	if err := sess.BeginSubmit(sub); err != nil {
		return nil, err
	}

	// Crédito consumido por factura = asignación pre-crédito − post-crédito.
	// La factura se abona por el monto completo (efectivo + crédito).
	consumedByInvoice := make(map[string]decimal.Decimal, len(allocs))
	for _, a := range allocs {
		consumedByInvoice[a.InvoiceID] = a.Amount
	}
	for _, a := range final {
		consumedByInvoice[a.InvoiceID] = consumedByInvoice[a.InvoiceID].Sub(a.Amount)
	}

	now := time.Now()
	tx := &entity.PaymentTransaction{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		AccountID:         account.ID,
		GatewayID:         gateway.ID,
		CollectedByUserID: userID,
		Channel:           channel,
		Amount:            sub.Total,
		CreditApplied:     creditToApply,
		MethodSummary:     summary,
		CreatedAt:         now,
	}

	result, err := uc.gateway.Charge(ctx, gateway, GatewayCharge{
		AccountID:   account.ID,
		Amount:      sub.Total,
		Currency:    uc.fmtCfg.Currency,
		Token:       token,
		Description: fmt.Sprintf("pago de %d factura(s) — cuenta %s", len(sub.Allocations), account.Name),
	})
	if err != nil {
		_ = sess.Fail(err.Error())
		uc.recordFailure(tx, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayDeclined, err)
	}
	tx.Status = entity.PaymentStatusSucceeded
	tx.GatewayTransactionID = result.TransactionID

	err = uc.txRunner.RunPayments(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		creditRepo repository.CreditMemoRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		if err := paymentRepo.Create(tx); err != nil {
			return err
		}
		for _, a := range sub.Allocations {
			alloc := &entity.PaymentAllocation{
				ID:            uuid.New().String(),
				PaymentID:     tx.ID,
				InvoiceID:     a.InvoiceID,
				Amount:        a.Amount,
				IsFullPayment: a.IsFullPayment,
			}
			if err := paymentRepo.CreateAllocation(alloc); err != nil {
				return err
			}
		}
		// Abonar cada factura por efectivo + crédito consumido.
		for _, a := range allocs {
			inv := byID[a.InvoiceID]
			if err := applyToInvoice(invoiceRepo, inv, a.Amount, now); err != nil {
				return err
			}
		}
		// Debitar las notas crédito de la más antigua a la más reciente.
		return debitCreditMemos(creditRepo, memos, creditToApply, now)
	})
	if err != nil {
		return nil, fmt.Errorf("persistir pago: %w", err)
	}
	_ = sess.Succeed()

	// Guardar el método es cortesía post-pago: si falla, se degrada con un
	// warning en lugar de bloquear un cobro ya aplicado.
	if in.Method.SaveMethod && token != "" && in.Method.SavedMethodID == "" {
		if err := uc.saveMethod(companyID, account.ID, token, in.Method, now); err != nil {
			uc.log.Warn().Err(err).Str("account_id", account.ID).Msg("no se pudo guardar el método de pago")
		}
	}

	return uc.toResponse(tx, sub.Allocations), nil
}

// PayInvoice ejecuta el flujo degenerado de una sola factura: pago total o
// parcial, sin crédito de cuenta.
func (uc *PaymentUseCase) PayInvoice(ctx context.Context, companyID, userID, invoiceID string, in dto.PayInvoiceRequest) (*dto.PaymentResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("cargar factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	gateway, err := uc.resolveGateway(companyID, in.GatewayID)
	if err != nil {
		return nil, err
	}
	token, summary, err := uc.resolveMethod(inv.AccountID, in.Method)
	if err != nil {
		return nil, err
	}

	alloc, err := payment.AllocateSingle(inv.ID, inv.BalanceDue(), in.IsFullPayment, in.Amount)
	if err != nil {
		return nil, err
	}
	if !alloc.Amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el monto a pagar debe ser mayor a cero", domain.ErrInvalidInput)
	}
	sub, err := payment.BuildSubmission(inv.AccountID, gateway.ID, []payment.Allocation{alloc})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &entity.PaymentTransaction{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		AccountID:         inv.AccountID,
		GatewayID:         gateway.ID,
		CollectedByUserID: userID,
		Channel:           entity.PaymentChannelWeb,
		Amount:            sub.Total,
		CreditApplied:     decimal.Zero,
		MethodSummary:     summary,
		CreatedAt:         now,
	}

	result, err := uc.gateway.Charge(ctx, gateway, GatewayCharge{
		AccountID:   inv.AccountID,
		Amount:      sub.Total,
		Currency:    uc.fmtCfg.Currency,
		Token:       token,
		Description: fmt.Sprintf("pago factura %s", inv.Number),
	})
	if err != nil {
		uc.recordFailure(tx, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayDeclined, err)
	}
	tx.Status = entity.PaymentStatusSucceeded
	tx.GatewayTransactionID = result.TransactionID

	err = uc.txRunner.RunPayments(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.CreditMemoRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		if err := paymentRepo.Create(tx); err != nil {
			return err
		}
		row := &entity.PaymentAllocation{
			ID:            uuid.New().String(),
			PaymentID:     tx.ID,
			InvoiceID:     alloc.InvoiceID,
			Amount:        alloc.Amount,
			IsFullPayment: alloc.IsFullPayment,
		}
		if err := paymentRepo.CreateAllocation(row); err != nil {
			return err
		}
		return applyToInvoice(invoiceRepo, inv, alloc.Amount, now)
	})
	if err != nil {
		return nil, fmt.Errorf("persistir pago: %w", err)
	}

	return uc.toResponse(tx, sub.Allocations), nil
}

// GetPayment devuelve una transacción con sus asignaciones.
func (uc *PaymentUseCase) GetPayment(ctx context.Context, companyID, paymentID string) (*dto.PaymentResponse, error) {
	tx, err := uc.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, fmt.Errorf("cargar pago: %w", err)
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	if tx.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	rows, err := uc.paymentRepo.GetAllocationsByPaymentID(tx.ID)
	if err != nil {
		return nil, fmt.Errorf("cargar asignaciones: %w", err)
	}
	allocs := make([]payment.Allocation, 0, len(rows))
	for _, r := range rows {
		allocs = append(allocs, payment.Allocation{InvoiceID: r.InvoiceID, Amount: r.Amount, IsFullPayment: r.IsFullPayment})
	}
	return uc.toResponse(tx, allocs), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (uc *PaymentUseCase) requireAccount(companyID, accountID string) (*entity.Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account_id requerido", domain.ErrInvalidInput)
	}
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("cargar cuenta: %w", err)
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if account.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return account, nil
}

// resolveGateway devuelve la pasarela pedida o la predeterminada de la empresa.
func (uc *PaymentUseCase) resolveGateway(companyID, gatewayID string) (*entity.PaymentGateway, error) {
	var gw *entity.PaymentGateway
	var err error
	if gatewayID != "" {
		gw, err = uc.gatewayRepo.GetByID(gatewayID)
	} else {
		gw, err = uc.gatewayRepo.GetDefaultByCompany(companyID)
	}
	if err != nil {
		return nil, fmt.Errorf("cargar pasarela: %w", err)
	}
	if gw == nil || !gw.Active {
		return nil, payment.ErrNoGateway
	}
	if gw.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return gw, nil
}

// resolveMethod obtiene el token a cobrar: método guardado, o token del
// request (con validación ACH previa si aplica). Devuelve también el resumen
// de presentación ("visa ****4242").
func (uc *PaymentUseCase) resolveMethod(accountID string, in dto.PaymentMethodInput) (token, summary string, err error) {
	if in.SavedMethodID != "" {
		method, err := uc.methodRepo.GetByID(in.SavedMethodID)
		if err != nil {
			return "", "", fmt.Errorf("cargar método guardado: %w", err)
		}
		if method == nil || method.AccountID != accountID {
			return "", "", domain.ErrNotFound
		}
		return method.GatewayToken, methodSummary(method.Type, method.Brand, method.Last4), nil
	}
	if in.ACH != nil {
		if err := validateACH(in.ACH); err != nil {
			return "", "", err
		}
		if in.Token == "" {
			return "", "", fmt.Errorf("%w: token de la pasarela requerido para ACH", domain.ErrInvalidInput)
		}
		last4 := in.ACH.AccountNumber[len(in.ACH.AccountNumber)-4:]
		return in.Token, methodSummary(entity.PaymentMethodACH, in.Brand, last4), nil
	}
	if in.Token == "" {
		return "", "", fmt.Errorf("%w: método de pago requerido (token, método guardado o ACH)", domain.ErrInvalidInput)
	}
	return in.Token, methodSummary(entity.PaymentMethodCard, in.Brand, in.Last4), nil
}

func methodSummary(kind, brand, last4 string) string {
	if brand == "" {
		brand = kind
	}
	if last4 == "" {
		return brand
	}
	return fmt.Sprintf("%s ****%s", brand, last4)
}

// recordFailure deja rastro del intento rechazado. Best-effort: si el insert
// falla solo se registra el warning, el error dominante es el rechazo.
func (uc *PaymentUseCase) recordFailure(tx *entity.PaymentTransaction, cause error) {
	tx.Status = entity.PaymentStatusFailed
	tx.ErrorMessage = cause.Error()
	if err := uc.paymentRepo.Create(tx); err != nil {
		uc.log.Warn().Err(err).Str("payment_id", tx.ID).Msg("no se pudo registrar el intento fallido")
	}
}

func (uc *PaymentUseCase) saveMethod(companyID, accountID, token string, in dto.PaymentMethodInput, now time.Time) error {
	kind := entity.PaymentMethodCard
	last4 := in.Last4
	brand := in.Brand
	if in.ACH != nil {
		kind = entity.PaymentMethodACH
		last4 = in.ACH.AccountNumber[len(in.ACH.AccountNumber)-4:]
	}
	return uc.methodRepo.Create(&entity.PaymentMethod{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		AccountID:    accountID,
		Type:         kind,
		GatewayToken: token,
		Brand:        brand,
		Last4:        last4,
		ExpMonth:     in.ExpMonth,
		ExpYear:      in.ExpYear,
		CreatedAt:    now,
	})
}

// applyToInvoice abona un monto a la factura y recalcula su estado.
func applyToInvoice(invoiceRepo repository.InvoiceRepository, inv *entity.Invoice, amount decimal.Decimal, now time.Time) error {
	if !amount.GreaterThan(decimal.Zero) {
		return nil
	}
	inv.AmountPaid = inv.AmountPaid.Add(amount)
	if inv.AmountPaid.GreaterThanOrEqual(inv.TotalAmount) {
		inv.Status = entity.InvoiceStatusPaid
	} else {
		inv.Status = entity.InvoiceStatusPartiallyPaid
	}
	inv.UpdatedAt = now
	return invoiceRepo.UpdatePayment(inv)
}

// debitCreditMemos consume el crédito aplicado de las notas, de la más
// antigua a la más reciente.
func debitCreditMemos(creditRepo repository.CreditMemoRepository, memos []*entity.CreditMemo, creditToApply decimal.Decimal, now time.Time) error {
	remaining := creditToApply
	for _, memo := range memos {
		if !remaining.GreaterThan(decimal.Zero) {
			return nil
		}
		if memo == nil || !memo.RemainingBalance.GreaterThan(decimal.Zero) {
			continue
		}
		debit := remaining
		if memo.RemainingBalance.LessThan(debit) {
			debit = memo.RemainingBalance
		}
		memo.RemainingBalance = memo.RemainingBalance.Sub(debit)
		memo.UpdatedAt = now
		if err := creditRepo.UpdateRemaining(memo); err != nil {
			return err
		}
		remaining = remaining.Sub(debit)
	}
	return nil
}

func (uc *PaymentUseCase) toResponse(tx *entity.PaymentTransaction, allocs []payment.Allocation) *dto.PaymentResponse {
	resp := &dto.PaymentResponse{
		ID:                   tx.ID,
		AccountID:            tx.AccountID,
		GatewayID:            tx.GatewayID,
		Status:               tx.Status,
		Amount:               tx.Amount,
		AmountDisplay:        moneyfmt.Amount(tx.Amount, uc.fmtCfg.Currency, uc.fmtCfg.Locale),
		CreditApplied:        tx.CreditApplied,
		GatewayTransactionID: tx.GatewayTransactionID,
		MethodSummary:        tx.MethodSummary,
		Allocations:          make([]dto.AllocationResponse, 0, len(allocs)),
		CreatedAt:            tx.CreatedAt.Format(time.RFC3339),
	}
	for _, a := range allocs {
		resp.Allocations = append(resp.Allocations, dto.AllocationResponse{
			InvoiceID:     a.InvoiceID,
			Amount:        a.Amount,
			IsFullPayment: a.IsFullPayment,
		})
	}
	return resp
}
