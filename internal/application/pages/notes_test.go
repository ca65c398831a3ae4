package pages_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cliento/cliento/internal/application/pages"
	"github.com/cliento/cliento/internal/domain/entities"
)

func notesFixture() *MockPracticeAPI {
	api := new(MockPracticeAPI)
	api.On("ListNotes", mock.Anything).Return([]entities.Note{
		{ID: 1, Content: "Primera sesión, evaluación inicial", ConsultationID: 10},
		{ID: 2, Content: "Seguimiento de tratamiento", ConsultationID: 11},
		{ID: 3, Content: "Nota huérfana", ConsultationID: 99},
	}, nil)
	api.On("ListPatients", mock.Anything).Return([]entities.Patient{
		{ID: 1, FirstName: "Ana", LastName: "García"},
		{ID: 2, FirstName: "Juan", LastName: "Santana"},
	}, nil)
	api.On("ListConsultations", mock.Anything).Return([]entities.Consultation{
		{ID: 10, PatientID: 1, Date: time.Date(2024, 4, 26, 10, 0, 0, 0, time.Local)},
		{ID: 11, PatientID: 2, Date: time.Date(2024, 4, 25, 9, 0, 0, 0, time.Local)},
	}, nil)
	return api
}

func TestNotesPage_PatientName(t *testing.T) {
	page := pages.NewNotesPage(notesFixture())
	require.NoError(t, page.Load(context.Background()))

	t.Run("resolves through the consultation", func(t *testing.T) {
		note, _ := page.Notes.Get(1)
		assert.Equal(t, "Ana García", page.PatientName(note))
	})

	t.Run("a dangling consultation yields an empty name", func(t *testing.T) {
		note, _ := page.Notes.Get(3)
		assert.Equal(t, "", page.PatientName(note))
	})
}

func TestNotesPage_Visible(t *testing.T) {
	page := pages.NewNotesPage(notesFixture())
	require.NoError(t, page.Load(context.Background()))

	t.Run("no filters shows every note", func(t *testing.T) {
		page.Query = ""
		page.SelectedPatient = 0
		assert.Equal(t, 3, len(page.Visible()))
	})

	t.Run("query matches note content", func(t *testing.T) {
		page.Query = "seguimiento"
		page.SelectedPatient = 0
		visible := page.Visible()
		require.Equal(t, 1, len(visible))
		assert.Equal(t, int64(2), visible[0].ID)
	})

	t.Run("query matches the resolved patient name", func(t *testing.T) {
		page.Query = "garcía"
		page.SelectedPatient = 0
		visible := page.Visible()
		require.Equal(t, 1, len(visible))
		assert.Equal(t, int64(1), visible[0].ID)
	})

	t.Run("selected patient narrows before the query applies", func(t *testing.T) {
		page.Query = ""
		page.SelectedPatient = 2
		visible := page.Visible()
		require.Equal(t, 1, len(visible))
		assert.Equal(t, int64(2), visible[0].ID)
	})

	t.Run("orphan notes disappear under a patient filter", func(t *testing.T) {
		page.Query = ""
		page.SelectedPatient = 1
		for _, n := range page.Visible() {
			assert.NotEqual(t, int64(3), n.ID)
		}
	})
}

func TestNotesPage_Delete(t *testing.T) {
	api := notesFixture()
	api.On("DeleteNote", mock.Anything, int64(1)).Return(nil)
	page := pages.NewNotesPage(api)
	require.NoError(t, page.Load(context.Background()))

	removed, err := page.Delete(context.Background(), 1, func() bool { return true })

	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 2, page.Notes.Len())
}

func TestValidateNote(t *testing.T) {
	t.Run("flags missing content and consultation", func(t *testing.T) {
		fields := pages.ValidateNote(entities.Note{})
		assert.Contains(t, fields, "contenido")
		assert.Contains(t, fields, "consulta")
	})

	t.Run("whitespace-only content is missing", func(t *testing.T) {
		fields := pages.ValidateNote(entities.Note{Content: "   ", ConsultationID: 1})
		assert.Contains(t, fields, "contenido")
	})

	t.Run("accepts a complete draft", func(t *testing.T) {
		fields := pages.ValidateNote(entities.Note{Content: "Sesión", ConsultationID: 1})
		assert.Empty(t, fields)
	})
}
