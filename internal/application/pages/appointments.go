package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/cliento/cliento/internal/application/view"
	"github.com/cliento/cliento/internal/domain/entities"
)

// AppointmentAPI is the slice of the practice API the appointments page
// consumes.
type AppointmentAPI interface {
	ListConsultations(ctx context.Context) ([]entities.Consultation, error)
	CreateConsultation(ctx context.Context, consultation entities.Consultation) (*entities.Consultation, error)
	UpdateConsultation(ctx context.Context, consultation entities.Consultation) (*entities.Consultation, error)
	DeleteConsultation(ctx context.Context, id int64) error
	ListPatients(ctx context.Context) ([]entities.Patient, error)
	ListRooms(ctx context.Context) ([]entities.Room, error)
}

// Placeholder labels for dangling references; a missing patient or room
// degrades the row, it never fails it.
const (
	unknownPatientLabel = "Paciente desconocido"
	unknownRoomLabel    = "Consultorio desconocido"
)

// AppointmentsPage holds the view state of the appointments screen: the
// consultation, patient and room collections, the month the calendar is
// showing, the search query and the create/edit form.
type AppointmentsPage struct {
	api   AppointmentAPI
	guard loadGuard

	Consultations *view.Collection[entities.Consultation]
	Patients      *view.Collection[entities.Patient]
	Rooms         *view.Collection[entities.Room]
	Form          *view.Form[entities.Consultation]
	Month         view.Month
	Query         string
}

// NewAppointmentsPage creates the page showing the current month
func NewAppointmentsPage(api AppointmentAPI) *AppointmentsPage {
	p := &AppointmentsPage{
		api:           api,
		Consultations: view.NewCollection(func(c entities.Consultation) int64 { return c.ID }),
		Patients:      view.NewCollection(func(pt entities.Patient) int64 { return pt.ID }),
		Rooms:         view.NewCollection(func(r entities.Room) int64 { return r.ID }),
		Month:         view.CurrentMonth(),
	}
	p.Form = view.NewForm(p.Consultations, view.FormConfig[entities.Consultation]{
		Validate: ValidateConsultation,
		Create: func(ctx context.Context, draft entities.Consultation) (*entities.Consultation, error) {
			out, err := api.CreateConsultation(ctx, draft)
			if err != nil {
				return nil, err
			}
			p.enrichOne(out)
			return out, nil
		},
		Update: func(ctx context.Context, draft entities.Consultation) (*entities.Consultation, error) {
			out, err := api.UpdateConsultation(ctx, draft)
			if err != nil {
				return nil, err
			}
			p.enrichOne(out)
			return out, nil
		},
	})
	return p
}

// Load fetches consultations, patients and rooms in parallel and applies
// them only when every fetch succeeded and the load is still current.
func (p *AppointmentsPage) Load(ctx context.Context) error {
	token := p.guard.begin()

	var (
		consultations []entities.Consultation
		patients      []entities.Patient
		rooms         []entities.Room
	)
	err := fetchAll(ctx,
		func(ctx context.Context) error {
			var ferr error
			consultations, ferr = p.api.ListConsultations(ctx)
			return ferr
		},
		func(ctx context.Context) error {
			var ferr error
			patients, ferr = p.api.ListPatients(ctx)
			return ferr
		},
		func(ctx context.Context) error {
			var ferr error
			rooms, ferr = p.api.ListRooms(ctx)
			return ferr
		},
	)
	if !p.guard.current(token) {
		return ErrStale
	}
	if err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}

	p.Patients.Replace(patients)
	p.Rooms.Replace(rooms)
	p.Consultations.Replace(consultations)
	p.enrich()
	p.Consultations.Sort(func(a, b entities.Consultation) bool {
		return a.Date.Before(b.Date)
	})
	return nil
}

// enrich attaches the denormalized patient name and room address to every
// consultation by joining the sibling collections.
func (p *AppointmentsPage) enrich() {
	items := p.Consultations.Items()
	for i := range items {
		p.enrichOne(&items[i])
	}
	p.Consultations.Replace(items)
}

func (p *AppointmentsPage) enrichOne(c *entities.Consultation) {
	c.PatientName = unknownPatientLabel
	if patient, ok := p.Patients.Get(c.PatientID); ok {
		c.PatientName = patient.FullName()
	}
	c.RoomAddress = unknownRoomLabel
	if room, ok := p.Rooms.Get(c.RoomID); ok {
		c.RoomAddress = room.Address
	}
}

// Visible returns the consultations matching the search query
func (p *AppointmentsPage) Visible() []entities.Consultation {
	return view.Filter(p.Consultations.Items(), p.Query, func(c entities.Consultation) []string {
		return []string{c.PatientName, c.RoomAddress}
	})
}

// Buckets returns the current month's day buckets over the visible
// consultations.
func (p *AppointmentsPage) Buckets() []view.DayBucket[entities.Consultation] {
	return view.BucketByDay(p.Month, p.Visible(), func(c entities.Consultation) time.Time {
		return c.Date
	})
}

// NextMonth moves the calendar one month forward
func (p *AppointmentsPage) NextMonth() { p.Month = p.Month.Next() }

// PrevMonth moves the calendar one month back
func (p *AppointmentsPage) PrevMonth() { p.Month = p.Month.Prev() }

// JumpToCurrentMonth moves the calendar to the month containing today
func (p *AppointmentsPage) JumpToCurrentMonth() { p.Month = view.CurrentMonth() }

// Delete removes a consultation after confirmation
func (p *AppointmentsPage) Delete(ctx context.Context, id int64, confirm func() bool) (bool, error) {
	return view.Delete(ctx, p.Consultations, id, confirm, p.api.DeleteConsultation)
}

// ValidateConsultation is the required-field check for a consultation draft
func ValidateConsultation(c entities.Consultation) map[string]string {
	fields := map[string]string{}
	if c.Date.IsZero() {
		fields["fecha"] = "is required"
	}
	if c.PatientID <= 0 {
		fields["paciente"] = "is required"
	}
	if c.ProfessionalID <= 0 {
		fields["profesional"] = "is required"
	}
	if c.RoomID <= 0 {
		fields["consultorio"] = "is required"
	}
	return fields
}
