package practiceapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cliento/cliento/internal/domain/entities"
)

func (c *HTTPClient) ListNotes(ctx context.Context) ([]entities.Note, error) {
	var out []entities.Note
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("/nota/"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, note entities.Note) (*entities.Note, error) {
	out := &entities.Note{}
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint("/nota/"), note, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, note entities.Note) (*entities.Note, error) {
	out := &entities.Note{}
	endpoint := c.endpoint(fmt.Sprintf("/nota/%d/", note.ID))
	if err := c.doJSON(ctx, http.MethodPut, endpoint, note, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id int64) error {
	endpoint := c.endpoint(fmt.Sprintf("/nota/%d/", id))
	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}
