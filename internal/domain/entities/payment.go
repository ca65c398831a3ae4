package entities

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// Payment represents a billing record for a session
type Payment struct {
	ID            int64         `json:"id"`
	PatientName   string        `json:"patientName"`
	Amount        float64       `json:"amount"`
	Date          string        `json:"date"` // YYYY-MM-DD
	Status        PaymentStatus `json:"status"`
	Method        PaymentMethod `json:"method"`
	Concept       string        `json:"concept"`
	InvoiceNumber string        `json:"invoiceNumber"`
}
