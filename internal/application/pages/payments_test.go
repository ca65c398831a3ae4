package pages_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cliento/cliento/internal/application/pages"
	"github.com/cliento/cliento/internal/domain/entities"
)

func TestPaymentsPage_NewDraft(t *testing.T) {
	page := pages.NewPaymentsPage(new(MockPracticeAPI))

	draft := page.NewDraft()

	assert.Equal(t, entities.PaymentStatusPending, draft.Status)
	assert.Equal(t, entities.PaymentMethodCash, draft.Method)
	assert.Empty(t, draft.InvoiceNumber)
}

func TestPaymentsPage_InvoiceNumbering(t *testing.T) {
	t.Run("a blank invoice number is generated on create", func(t *testing.T) {
		api := new(MockPracticeAPI)
		api.On("ListPayments", mock.Anything).Return([]entities.Payment{
			{ID: 1, PatientName: "Ana García", Amount: 50, Date: "2024-04-01"},
			{ID: 2, PatientName: "Juan Santana", Amount: 60, Date: "2024-04-02"},
		}, nil)
		var sent entities.Payment
		api.On("CreatePayment", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(entities.Payment) }).
			Return(&entities.Payment{ID: 3}, nil)
		page := pages.NewPaymentsPage(api)
		require.NoError(t, page.Load(context.Background()))

		draft := page.NewDraft()
		draft.PatientName = "Marta López"
		draft.Amount = 70
		draft.Date = "2024-04-03"
		require.NoError(t, page.Form.OpenNew(page.NewDraft()))
		require.NoError(t, page.Form.SetDraft(draft))
		require.NoError(t, page.Form.Submit(context.Background()))

		want := fmt.Sprintf("INV-%d-003", time.Now().Year())
		assert.Equal(t, want, sent.InvoiceNumber)
	})

	t.Run("an explicit invoice number is kept", func(t *testing.T) {
		api := new(MockPracticeAPI)
		var sent entities.Payment
		api.On("CreatePayment", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(entities.Payment) }).
			Return(&entities.Payment{ID: 1}, nil)
		page := pages.NewPaymentsPage(api)

		draft := page.NewDraft()
		draft.PatientName = "Ana García"
		draft.Amount = 50
		draft.Date = "2024-04-01"
		draft.InvoiceNumber = "INV-2024-900"
		require.NoError(t, page.Form.OpenNew(page.NewDraft()))
		require.NoError(t, page.Form.SetDraft(draft))
		require.NoError(t, page.Form.Submit(context.Background()))

		assert.Equal(t, "INV-2024-900", sent.InvoiceNumber)
	})
}

func TestPaymentsPage_Visible(t *testing.T) {
	api := new(MockPracticeAPI)
	api.On("ListPayments", mock.Anything).Return([]entities.Payment{
		{ID: 1, PatientName: "Ana García", InvoiceNumber: "INV-2024-001", Concept: "Sesión individual"},
		{ID: 2, PatientName: "Juan Santana", InvoiceNumber: "INV-2024-002", Concept: "Terapia de pareja"},
	}, nil)
	page := pages.NewPaymentsPage(api)
	require.NoError(t, page.Load(context.Background()))

	t.Run("matches the invoice number", func(t *testing.T) {
		page.Query = "2024-002"
		visible := page.Visible()
		require.Equal(t, 1, len(visible))
		assert.Equal(t, int64(2), visible[0].ID)
	})

	t.Run("matches the concept", func(t *testing.T) {
		page.Query = "pareja"
		visible := page.Visible()
		require.Equal(t, 1, len(visible))
		assert.Equal(t, int64(2), visible[0].ID)
	})
}

func TestValidatePayment(t *testing.T) {
	t.Run("flags every missing required field", func(t *testing.T) {
		fields := pages.ValidatePayment(entities.Payment{})
		assert.Contains(t, fields, "patientName")
		assert.Contains(t, fields, "amount")
		assert.Contains(t, fields, "date")
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		fields := pages.ValidatePayment(entities.Payment{
			PatientName: "Ana García", Amount: 0, Date: "2024-04-01",
		})
		assert.Contains(t, fields, "amount")
	})

	t.Run("accepts a complete draft", func(t *testing.T) {
		fields := pages.ValidatePayment(entities.Payment{
			PatientName: "Ana García", Amount: 50, Date: "2024-04-01",
		})
		assert.Empty(t, fields)
	})
}
