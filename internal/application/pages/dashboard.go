package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/cliento/cliento/internal/application/view"
	"github.com/cliento/cliento/internal/domain/entities"
)

// DashboardAPI is the slice of the practice API the dashboard consumes
type DashboardAPI interface {
	ListConsultations(ctx context.Context) ([]entities.Consultation, error)
	ListPatients(ctx context.Context) ([]entities.Patient, error)
}

// DashboardPage is the landing screen: headline counts, today's agenda and
// a navigable month grid over all consultations.
type DashboardPage struct {
	api   DashboardAPI
	guard loadGuard

	Consultations *view.Collection[entities.Consultation]
	Patients      *view.Collection[entities.Patient]
	Month         view.Month
}

// DashboardStats are the headline counts shown at the top of the page
type DashboardStats struct {
	TotalPatients      int
	TotalConsultations int
	TodayConsultations int
}

// NewDashboardPage creates the page showing the current month
func NewDashboardPage(api DashboardAPI) *DashboardPage {
	return &DashboardPage{
		api:           api,
		Consultations: view.NewCollection(func(c entities.Consultation) int64 { return c.ID }),
		Patients:      view.NewCollection(func(pt entities.Patient) int64 { return pt.ID }),
		Month:         view.CurrentMonth(),
	}
}

// Load fetches consultations and patients in parallel
func (p *DashboardPage) Load(ctx context.Context) error {
	token := p.guard.begin()

	var (
		consultations []entities.Consultation
		patients      []entities.Patient
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
	)
	if !p.guard.current(token) {
		return ErrStale
	}
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	p.Patients.Replace(patients)
	p.Consultations.Replace(consultations)
	p.enrich()
	p.Consultations.Sort(func(a, b entities.Consultation) bool {
		return a.Date.Before(b.Date)
	})
	return nil
}

func (p *DashboardPage) enrich() {
	items := p.Consultations.Items()
	for i := range items {
		items[i].PatientName = unknownPatientLabel
		if patient, ok := p.Patients.Get(items[i].PatientID); ok {
			items[i].PatientName = patient.FullName()
		}
	}
	p.Consultations.Replace(items)
}

// Stats returns the headline counts. "Today" is the wall-clock date at call
// time.
func (p *DashboardPage) Stats() DashboardStats {
	return DashboardStats{
		TotalPatients:      p.Patients.Len(),
		TotalConsultations: p.Consultations.Len(),
		TodayConsultations: len(p.TodayAgenda()),
	}
}

// TodayAgenda returns today's consultations in time order
func (p *DashboardPage) TodayAgenda() []entities.Consultation {
	var agenda []entities.Consultation
	for _, c := range p.Consultations.Items() {
		if view.IsToday(c.Date) {
			agenda = append(agenda, c)
		}
	}
	return agenda
}

// Buckets returns the current month's day buckets over all consultations
func (p *DashboardPage) Buckets() []view.DayBucket[entities.Consultation] {
	return view.BucketByDay(p.Month, p.Consultations.Items(), func(c entities.Consultation) time.Time {
		return c.Date
	})
}

// NextMonth moves the calendar one month forward
func (p *DashboardPage) NextMonth() { p.Month = p.Month.Next() }

// PrevMonth moves the calendar one month back
func (p *DashboardPage) PrevMonth() { p.Month = p.Month.Prev() }

// JumpToCurrentMonth moves the calendar to the month containing today
func (p *DashboardPage) JumpToCurrentMonth() { p.Month = view.CurrentMonth() }
