package view

import (
	"context"
	"fmt"

	apperrors "github.com/cliento/cliento/pkg/errors"
)

// FormState is the state of the create/edit draft controller
type FormState string

const (
	FormClosed     FormState = "closed"
	FormCreating   FormState = "creating"
	FormEditing    FormState = "editing"
	FormSubmitting FormState = "submitting"
)

// FormConfig wires a form to its entity type: a required-field validator and
// the create/update calls behind submission.
type FormConfig[T any] struct {
	// Validate returns a field-to-message map for every missing or malformed
	// required field. A non-empty result blocks submission before any
	// network call.
	Validate func(draft T) map[string]string

	// Create submits a new draft and returns the server-echoed record
	Create func(ctx context.Context, draft T) (*T, error)

	// Update submits an edited draft and returns the server-echoed record
	Update func(ctx context.Context, draft T) (*T, error)
}

// Form drives the draft lifecycle for one entity type on one page: closed,
// then creating or editing, then submitting, then closed again. Only one draft is open at a time;
// on success the backing collection is reconciled with the server's echo.
type Form[T any] struct {
	collection *Collection[T]
	cfg        FormConfig[T]
	state      FormState
	draft      T
}

// NewForm creates a closed form over the given collection
func NewForm[T any](collection *Collection[T], cfg FormConfig[T]) *Form[T] {
	return &Form[T]{
		collection: collection,
		cfg:        cfg,
		state:      FormClosed,
	}
}

// State returns the current controller state
func (f *Form[T]) State() FormState {
	return f.state
}

// Draft returns the in-progress record
func (f *Form[T]) Draft() T {
	return f.draft
}

// SetDraft replaces the in-progress record. Allowed only while a draft is
// open and not in flight.
func (f *Form[T]) SetDraft(draft T) error {
	if f.state != FormCreating && f.state != FormEditing {
		return fmt.Errorf("no editable draft open (state %s)", f.state)
	}
	f.draft = draft
	return nil
}

// OpenNew opens a create draft from an empty template
func (f *Form[T]) OpenNew(template T) error {
	if f.state != FormClosed {
		return fmt.Errorf("a draft is already open (state %s)", f.state)
	}
	f.state = FormCreating
	f.draft = template
	return nil
}

// OpenEdit opens an edit draft as a copy of the record with the given id
func (f *Form[T]) OpenEdit(id int64) error {
	if f.state != FormClosed {
		return fmt.Errorf("a draft is already open (state %s)", f.state)
	}
	record, ok := f.collection.Get(id)
	if !ok {
		return fmt.Errorf("record %d not found", id)
	}
	f.state = FormEditing
	f.draft = record
	return nil
}

// Cancel discards the draft and closes the form
func (f *Form[T]) Cancel() error {
	if f.state != FormCreating && f.state != FormEditing {
		return fmt.Errorf("no draft open (state %s)", f.state)
	}
	f.close()
	return nil
}

// Submit validates the draft and performs the create or update call. A
// validation failure returns a VALIDATION error and leaves the state
// untouched without issuing a request. On success the collection is
// reconciled (server echo appended or replaced by id) and the form closes;
// on failure the form returns to its prior state with the draft intact.
func (f *Form[T]) Submit(ctx context.Context) error {
	if f.state != FormCreating && f.state != FormEditing {
		return fmt.Errorf("no draft open (state %s)", f.state)
	}

	if f.cfg.Validate != nil {
		if fields := f.cfg.Validate(f.draft); len(fields) > 0 {
			return apperrors.NewValidationError("required fields missing", fields)
		}
	}

	prior := f.state
	f.state = FormSubmitting

	var echoed *T
	var err error
	if prior == FormCreating {
		echoed, err = f.cfg.Create(ctx, f.draft)
	} else {
		echoed, err = f.cfg.Update(ctx, f.draft)
	}
	if err != nil {
		f.state = prior
		return err
	}

	f.collection.Upsert(*echoed)
	f.close()
	return nil
}

func (f *Form[T]) close() {
	var zero T
	f.state = FormClosed
	f.draft = zero
}

// Delete runs the non-modal delete flow: confirmation, a single network
// call, then removal from local state by id. On failure local state is left
// untouched; there is no optimistic removal. The returned bool reports
// whether a record was removed.
func Delete[T any](
	ctx context.Context,
	collection *Collection[T],
	id int64,
	confirm func() bool,
	remove func(ctx context.Context, id int64) error,
) (bool, error) {
	if confirm != nil && !confirm() {
		return false, nil
	}
	if err := remove(ctx, id); err != nil {
		return false, err
	}
	return collection.Remove(id), nil
}
