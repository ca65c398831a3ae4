package practiceapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cliento/cliento/internal/domain/entities"
)

func (c *HTTPClient) ListPayments(ctx context.Context) ([]entities.Payment, error) {
	var out []entities.Payment
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("/pago/"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error) {
	out := &entities.Payment{}
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint("/pago/"), payment, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error) {
	out := &entities.Payment{}
	endpoint := c.endpoint(fmt.Sprintf("/pago/%d/", payment.ID))
	if err := c.doJSON(ctx, http.MethodPut, endpoint, payment, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) DeletePayment(ctx context.Context, id int64) error {
	endpoint := c.endpoint(fmt.Sprintf("/pago/%d/", id))
	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}
