package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/cliento/cliento/internal/application/view"
	"github.com/cliento/cliento/internal/domain/entities"
)

// NoteAPI is the slice of the practice API the notes page consumes
type NoteAPI interface {
	ListNotes(ctx context.Context) ([]entities.Note, error)
	CreateNote(ctx context.Context, note entities.Note) (*entities.Note, error)
	UpdateNote(ctx context.Context, note entities.Note) (*entities.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	ListPatients(ctx context.Context) ([]entities.Patient, error)
	ListConsultations(ctx context.Context) ([]entities.Consultation, error)
}

// NotesPage holds the view state of the session-notes screen. A note points
// at a consultation and, through it, at a patient; the search query matches
// either the note content or that patient's full name.
type NotesPage struct {
	api   NoteAPI
	guard loadGuard

	Notes         *view.Collection[entities.Note]
	Patients      *view.Collection[entities.Patient]
	Consultations *view.Collection[entities.Consultation]
	Form          *view.Form[entities.Note]
	Query         string

	// SelectedPatient narrows the list to one patient's notes; zero means
	// no patient filter.
	SelectedPatient int64
}

// NewNotesPage creates the page in its unloaded state
func NewNotesPage(api NoteAPI) *NotesPage {
	p := &NotesPage{
		api:           api,
		Notes:         view.NewCollection(func(n entities.Note) int64 { return n.ID }),
		Patients:      view.NewCollection(func(pt entities.Patient) int64 { return pt.ID }),
		Consultations: view.NewCollection(func(c entities.Consultation) int64 { return c.ID }),
	}
	p.Form = view.NewForm(p.Notes, view.FormConfig[entities.Note]{
		Validate: ValidateNote,
		Create: func(ctx context.Context, draft entities.Note) (*entities.Note, error) {
			return api.CreateNote(ctx, draft)
		},
		Update: func(ctx context.Context, draft entities.Note) (*entities.Note, error) {
			return api.UpdateNote(ctx, draft)
		},
	})
	return p
}

// Load fetches notes, patients and consultations in parallel
func (p *NotesPage) Load(ctx context.Context) error {
	token := p.guard.begin()

	var (
		notes         []entities.Note
		patients      []entities.Patient
		consultations []entities.Consultation
	)
	err := fetchAll(ctx,
		func(ctx context.Context) error {
			var ferr error
			notes, ferr = p.api.ListNotes(ctx)
			return ferr
		},
		func(ctx context.Context) error {
			var ferr error
			patients, ferr = p.api.ListPatients(ctx)
			return ferr
		},
		func(ctx context.Context) error {
			var ferr error
			consultations, ferr = p.api.ListConsultations(ctx)
			return ferr
		},
	)
	if !p.guard.current(token) {
		return ErrStale
	}
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	p.Notes.Replace(notes)
	p.Patients.Replace(patients)
	p.Consultations.Replace(consultations)
	return nil
}

// PatientName resolves the patient behind a note through its consultation.
// Dangling references yield an empty name, not an error.
func (p *NotesPage) PatientName(n entities.Note) string {
	consultation, ok := p.Consultations.Get(n.ConsultationID)
	if !ok {
		return ""
	}
	patient, ok := p.Patients.Get(consultation.PatientID)
	if !ok {
		return ""
	}
	return patient.FullName()
}

// Visible returns the notes matching the search query and, when set, the
// selected patient. Order is preserved from the collection.
func (p *NotesPage) Visible() []entities.Note {
	notes := p.Notes.Items()
	if p.SelectedPatient != 0 {
		narrowed := make([]entities.Note, 0, len(notes))
		for _, n := range notes {
			if consultation, ok := p.Consultations.Get(n.ConsultationID); ok &&
				consultation.PatientID == p.SelectedPatient {
				narrowed = append(narrowed, n)
			}
		}
		notes = narrowed
	}
	return view.Filter(notes, p.Query, func(n entities.Note) []string {
		return []string{n.Content, p.PatientName(n)}
	})
}

// Delete removes a note after confirmation
func (p *NotesPage) Delete(ctx context.Context, id int64, confirm func() bool) (bool, error) {
	return view.Delete(ctx, p.Notes, id, confirm, p.api.DeleteNote)
}

// ValidateNote is the required-field check for a note draft
func ValidateNote(n entities.Note) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(n.Content) == "" {
		fields["contenido"] = "is required"
	}
	if n.ConsultationID <= 0 {
		fields["consulta"] = "is required"
	}
	return fields
}
