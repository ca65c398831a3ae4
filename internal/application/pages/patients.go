package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/cliento/cliento/internal/application/view"
	"github.com/cliento/cliento/internal/domain/entities"
)

// PatientAPI is the slice of the practice API the patients page consumes
type PatientAPI interface {
	ListPatients(ctx context.Context) ([]entities.Patient, error)
	CreatePatient(ctx context.Context, patient entities.Patient) (*entities.Patient, error)
	UpdatePatient(ctx context.Context, patient entities.Patient) (*entities.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

// PatientsPage holds the view state of the patients screen: the fetched
// collection, the free-text search query and the create/edit form.
type PatientsPage struct {
	api   PatientAPI
	guard loadGuard

	Patients *view.Collection[entities.Patient]
	Form     *view.Form[entities.Patient]
	Query    string
}

// NewPatientsPage creates the page in its unloaded state
func NewPatientsPage(api PatientAPI) *PatientsPage {
	p := &PatientsPage{
		api:      api,
		Patients: view.NewCollection(func(pt entities.Patient) int64 { return pt.ID }),
	}
	p.Form = view.NewForm(p.Patients, view.FormConfig[entities.Patient]{
		Validate: ValidatePatient,
		Create: func(ctx context.Context, draft entities.Patient) (*entities.Patient, error) {
			return api.CreatePatient(ctx, draft)
		},
		Update: func(ctx context.Context, draft entities.Patient) (*entities.Patient, error) {
			return api.UpdatePatient(ctx, draft)
		},
	})
	return p
}

// Load fetches the patient collection. Stale loads are discarded.
func (p *PatientsPage) Load(ctx context.Context) error {
	token := p.guard.begin()

	var patients []entities.Patient
	err := fetchAll(ctx, func(ctx context.Context) error {
		var ferr error
		patients, ferr = p.api.ListPatients(ctx)
		return ferr
	})
	if !p.guard.current(token) {
		return ErrStale
	}
	if err != nil {
		return fmt.Errorf("failed to load patients: %w", err)
	}

	p.Patients.Replace(patients)
	return nil
}

// Visible returns the patients matching the current search query, in
// collection order.
func (p *PatientsPage) Visible() []entities.Patient {
	return view.Filter(p.Patients.Items(), p.Query, func(pt entities.Patient) []string {
		return []string{pt.FirstName, pt.LastName, pt.DNI, pt.Email}
	})
}

// Delete removes a patient after confirmation. Local state changes only
// after the server accepted the delete.
func (p *PatientsPage) Delete(ctx context.Context, id int64, confirm func() bool) (bool, error) {
	return view.Delete(ctx, p.Patients, id, confirm, p.api.DeletePatient)
}

// ValidatePatient is the required-field check run before any create or
// update request for a patient draft.
func ValidatePatient(p entities.Patient) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(p.FirstName) == "" {
		fields["nombre"] = "is required"
	}
	if strings.TrimSpace(p.LastName) == "" {
		fields["apellido"] = "is required"
	}
	if strings.TrimSpace(p.DNI) == "" {
		fields["dni"] = "is required"
	}
	email := strings.TrimSpace(p.Email)
	if email == "" {
		fields["email"] = "is required"
	} else if !strings.Contains(email, "@") {
		fields["email"] = "is not a valid email address"
	}
	return fields
}
