package pages_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cliento/cliento/internal/application/pages"
	"github.com/cliento/cliento/internal/application/view"
	"github.com/cliento/cliento/internal/domain/entities"
)

func TestDashboardPage_Stats(t *testing.T) {
	now := time.Now()
	api := new(MockPracticeAPI)
	api.On("ListConsultations", mock.Anything).Return([]entities.Consultation{
		{ID: 1, PatientID: 1, Date: now.Add(2 * time.Hour)},
		{ID: 2, PatientID: 2, Date: now.Add(-1 * time.Hour)},
		{ID: 3, PatientID: 1, Date: now.AddDate(0, 0, 7)},
	}, nil)
	api.On("ListPatients", mock.Anything).Return([]entities.Patient{
		{ID: 1, FirstName: "Ana", LastName: "García"},
		{ID: 2, FirstName: "Juan", LastName: "Santana"},
	}, nil)
	page := pages.NewDashboardPage(api)
	require.NoError(t, page.Load(context.Background()))

	stats := page.Stats()

	assert.Equal(t, 2, stats.TotalPatients)
	assert.Equal(t, 3, stats.TotalConsultations)
	assert.Equal(t, 2, stats.TodayConsultations)
}

func TestDashboardPage_TodayAgenda(t *testing.T) {
	now := time.Now()
	api := new(MockPracticeAPI)
	api.On("ListConsultations", mock.Anything).Return([]entities.Consultation{
		{ID: 1, PatientID: 1, Date: now.Add(3 * time.Hour)},
		{ID: 2, PatientID: 9, Date: now.Add(1 * time.Hour)},
		{ID: 3, PatientID: 1, Date: now.AddDate(0, 0, 1)},
	}, nil)
	api.On("ListPatients", mock.Anything).Return([]entities.Patient{
		{ID: 1, FirstName: "Ana", LastName: "García"},
	}, nil)
	page := pages.NewDashboardPage(api)
	require.NoError(t, page.Load(context.Background()))

	agenda := page.TodayAgenda()

	require.Equal(t, 2, len(agenda))
	assert.Equal(t, int64(2), agenda[0].ID, "agenda is in time order")
	assert.Equal(t, int64(1), agenda[1].ID)
	assert.Equal(t, "Paciente desconocido", agenda[0].PatientName)
	assert.Equal(t, "Ana García", agenda[1].PatientName)
}

func TestDashboardPage_Buckets(t *testing.T) {
	api := new(MockPracticeAPI)
	api.On("ListConsultations", mock.Anything).Return([]entities.Consultation{
		{ID: 1, PatientID: 1, Date: time.Date(2024, 4, 26, 10, 0, 0, 0, time.Local)},
	}, nil)
	api.On("ListPatients", mock.Anything).Return([]entities.Patient{}, nil)
	page := pages.NewDashboardPage(api)
	require.NoError(t, page.Load(context.Background()))
	page.Month = view.Month{Year: 2024, Month: time.April}

	buckets := page.Buckets()

	require.Equal(t, 30, len(buckets))
	assert.Equal(t, 1, len(buckets[25].Items))
}
