package practiceapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cliento/cliento/internal/domain/entities"
)

func (c *HTTPClient) ListConsultations(ctx context.Context) ([]entities.Consultation, error) {
	var out []entities.Consultation
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("/consulta/"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateConsultation(ctx context.Context, consultation entities.Consultation) (*entities.Consultation, error) {
	out := &entities.Consultation{}
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint("/consulta/"), consultation, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateConsultation(ctx context.Context, consultation entities.Consultation) (*entities.Consultation, error) {
	out := &entities.Consultation{}
	endpoint := c.endpoint(fmt.Sprintf("/consulta/%d/", consultation.ID))
	if err := c.doJSON(ctx, http.MethodPut, endpoint, consultation, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) DeleteConsultation(ctx context.Context, id int64) error {
	endpoint := c.endpoint(fmt.Sprintf("/consulta/%d/", id))
	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}

// ListRooms returns the consulting rooms used to resolve consultation
// room references for display.
func (c *HTTPClient) ListRooms(ctx context.Context) ([]entities.Room, error) {
	var out []entities.Room
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("/consultorio/"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListProfessionals(ctx context.Context) ([]entities.Professional, error) {
	var out []entities.Professional
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("/profesional/"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
