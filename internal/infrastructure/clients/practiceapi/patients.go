package practiceapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cliento/cliento/internal/domain/entities"
)

// Resource paths follow the backend router, trailing slashes included.

func (c *HTTPClient) ListPatients(ctx context.Context) ([]entities.Patient, error) {
	var out []entities.Patient
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("/paciente/"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePatient(ctx context.Context, patient entities.Patient) (*entities.Patient, error) {
	out := &entities.Patient{}
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint("/paciente/"), patient, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdatePatient(ctx context.Context, patient entities.Patient) (*entities.Patient, error) {
	out := &entities.Patient{}
	endpoint := c.endpoint(fmt.Sprintf("/paciente/%d/", patient.ID))
	if err := c.doJSON(ctx, http.MethodPut, endpoint, patient, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) DeletePatient(ctx context.Context, id int64) error {
	endpoint := c.endpoint(fmt.Sprintf("/paciente/%d/", id))
	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}
