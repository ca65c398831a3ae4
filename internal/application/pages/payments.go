package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cliento/cliento/internal/application/view"
	"github.com/cliento/cliento/internal/domain/entities"
)

// PaymentAPI is the slice of the practice API the payments page consumes
type PaymentAPI interface {
	ListPayments(ctx context.Context) ([]entities.Payment, error)
	CreatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	UpdatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
}

// PaymentsPage holds the view state of the payments screen
type PaymentsPage struct {
	api   PaymentAPI
	guard loadGuard

	Payments *view.Collection[entities.Payment]
	Form     *view.Form[entities.Payment]
	Query    string
}

// NewPaymentsPage creates the page in its unloaded state
func NewPaymentsPage(api PaymentAPI) *PaymentsPage {
	p := &PaymentsPage{
		api:      api,
		Payments: view.NewCollection(func(pm entities.Payment) int64 { return pm.ID }),
	}
	p.Form = view.NewForm(p.Payments, view.FormConfig[entities.Payment]{
		Validate: ValidatePayment,
		Create: func(ctx context.Context, draft entities.Payment) (*entities.Payment, error) {
			if strings.TrimSpace(draft.InvoiceNumber) == "" {
				draft.InvoiceNumber = p.nextInvoiceNumber()
			}
			return api.CreatePayment(ctx, draft)
		},
		Update: func(ctx context.Context, draft entities.Payment) (*entities.Payment, error) {
			return api.UpdatePayment(ctx, draft)
		},
	})
	return p
}

// NewDraft returns the empty template a create draft starts from
func (p *PaymentsPage) NewDraft() entities.Payment {
	return entities.Payment{
		Status: entities.PaymentStatusPending,
		Method: entities.PaymentMethodCash,
	}
}

// Load fetches the payment collection
func (p *PaymentsPage) Load(ctx context.Context) error {
	token := p.guard.begin()

	var payments []entities.Payment
	err := fetchAll(ctx, func(ctx context.Context) error {
		var ferr error
		payments, ferr = p.api.ListPayments(ctx)
		return ferr
	})
	if !p.guard.current(token) {
		return ErrStale
	}
	if err != nil {
		return fmt.Errorf("failed to load payments: %w", err)
	}

	p.Payments.Replace(payments)
	return nil
}

// Visible returns the payments matching the search query over patient name,
// invoice number and concept.
func (p *PaymentsPage) Visible() []entities.Payment {
	return view.Filter(p.Payments.Items(), p.Query, func(pm entities.Payment) []string {
		return []string{pm.PatientName, pm.InvoiceNumber, pm.Concept}
	})
}

// Delete removes a payment after confirmation
func (p *PaymentsPage) Delete(ctx context.Context, id int64, confirm func() bool) (bool, error) {
	return view.Delete(ctx, p.Payments, id, confirm, p.api.DeletePayment)
}

// nextInvoiceNumber numbers new invoices sequentially within the year
func (p *PaymentsPage) nextInvoiceNumber() string {
	return fmt.Sprintf("INV-%d-%03d", time.Now().Year(), p.Payments.Len()+1)
}

// ValidatePayment is the required-field check for a payment draft
func ValidatePayment(pm entities.Payment) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(pm.PatientName) == "" {
		fields["patientName"] = "is required"
	}
	if pm.Amount <= 0 {
		fields["amount"] = "must be greater than zero"
	}
	if strings.TrimSpace(pm.Date) == "" {
		fields["date"] = "is required"
	}
	return fields
}
