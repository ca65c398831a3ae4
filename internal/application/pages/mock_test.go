package pages_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cliento/cliento/internal/domain/entities"
)

// MockPracticeAPI implements every page-facing API slice
type MockPracticeAPI struct {
	mock.Mock
}

func (m *MockPracticeAPI) ListPatients(ctx context.Context) ([]entities.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Patient), args.Error(1)
}

func (m *MockPracticeAPI) CreatePatient(ctx context.Context, patient entities.Patient) (*entities.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

func (m *MockPracticeAPI) UpdatePatient(ctx context.Context, patient entities.Patient) (*entities.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

func (m *MockPracticeAPI) DeletePatient(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPracticeAPI) ListConsultations(ctx context.Context) ([]entities.Consultation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Consultation), args.Error(1)
}

func (m *MockPracticeAPI) CreateConsultation(ctx context.Context, consultation entities.Consultation) (*entities.Consultation, error) {
	args := m.Called(ctx, consultation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Consultation), args.Error(1)
}

func (m *MockPracticeAPI) UpdateConsultation(ctx context.Context, consultation entities.Consultation) (*entities.Consultation, error) {
	args := m.Called(ctx, consultation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Consultation), args.Error(1)
}

func (m *MockPracticeAPI) DeleteConsultation(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPracticeAPI) ListRooms(ctx context.Context) ([]entities.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Room), args.Error(1)
}

func (m *MockPracticeAPI) ListNotes(ctx context.Context) ([]entities.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Note), args.Error(1)
}

func (m *MockPracticeAPI) CreateNote(ctx context.Context, note entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *MockPracticeAPI) UpdateNote(ctx context.Context, note entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *MockPracticeAPI) DeleteNote(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPracticeAPI) ListPayments(ctx context.Context) ([]entities.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Payment), args.Error(1)
}

func (m *MockPracticeAPI) CreatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPracticeAPI) UpdatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPracticeAPI) DeletePayment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
