package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// MockVacancyRepository is a mock implementation of VacancyRepository.
type MockVacancyRepository struct {
	mock.Mock
}

func (m *MockVacancyRepository) Create(ctx context.Context, vacancy *model.Vacancy) error {
	args := m.Called(ctx, vacancy)
	return args.Error(0)
}

func (m *MockVacancyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vacancy), args.Error(1)
}

func (m *MockVacancyRepository) ListAll(ctx context.Context) ([]model.Vacancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vacancy), args.Error(1)
}

func (m *MockVacancyRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Vacancy, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vacancy), args.Error(1)
}

func (m *MockVacancyRepository) Filter(ctx context.Context, title, category, location string) ([]model.Vacancy, error) {
	args := m.Called(ctx, title, category, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vacancy), args.Error(1)
}

func (m *MockVacancyRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockVacancyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockApplicationRepository is a mock implementation of ApplicationRepository.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]model.Application, error) {
	args := m.Called(ctx, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

func TestVacancyService_Create(t *testing.T) {
	requester := &model.User{ID: uuid.New(), Role: model.RoleCompany}
	other := uuid.New()

	tests := []struct {
		name          string
		companyID     string
		expectedOwner uuid.UUID
	}{
		{name: "defaults owner to requester", companyID: "", expectedOwner: requester.ID},
		{name: "explicit owner wins", companyID: other.String(), expectedOwner: other},
		{name: "malformed owner falls back to requester", companyID: "not-a-uuid", expectedOwner: requester.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockVacancyRepository)
			mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Vacancy")).Return(nil)

			service := NewVacancyService(mockRepo, new(MockApplicationRepository))
			input := VacancyInput{Title: "Dev", Description: "...", Category: "Eng", Location: "Remote", Contract: "full-time"}
			vacancy, err := service.Create(context.Background(), input, tt.companyID, requester)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOwner, vacancy.CompanyID)
			assert.Equal(t, "Dev", vacancy.Title)
			assert.Empty(t, vacancy.Applications)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestVacancyService_ListFor(t *testing.T) {
	company := &model.User{ID: uuid.New(), Role: model.RoleCompany}
	candidate := &model.User{ID: uuid.New(), Role: model.RoleCandidate}

	own := []model.Vacancy{{ID: uuid.New(), CompanyID: company.ID}}
	all := []model.Vacancy{{ID: uuid.New()}, {ID: uuid.New()}}

	t.Run("company sees only own postings", func(t *testing.T) {
		mockRepo := new(MockVacancyRepository)
		mockRepo.On("ListByCompany", mock.Anything, company.ID).Return(own, nil)

		service := NewVacancyService(mockRepo, new(MockApplicationRepository))
		vacancies, err := service.ListFor(context.Background(), company)

		assert.NoError(t, err)
		assert.Equal(t, own, vacancies)
		mockRepo.AssertNotCalled(t, "ListAll", mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("candidate sees all postings", func(t *testing.T) {
		mockRepo := new(MockVacancyRepository)
		mockRepo.On("ListAll", mock.Anything).Return(all, nil)

		service := NewVacancyService(mockRepo, new(MockApplicationRepository))
		vacancies, err := service.ListFor(context.Background(), candidate)

		assert.NoError(t, err)
		assert.Equal(t, all, vacancies)
		mockRepo.AssertNotCalled(t, "ListByCompany", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestVacancyService_Get_MissingRecord(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockVacancyRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewVacancyService(mockRepo, new(MockApplicationRepository))
	vacancy, err := service.Get(context.Background(), id)

	// A missing vacancy is not an error; the view renders it empty.
	assert.NoError(t, err)
	assert.Nil(t, vacancy)
	mockRepo.AssertExpectations(t)
}

func TestVacancyService_Apply(t *testing.T) {
	candidate := &model.User{ID: uuid.New(), Role: model.RoleCandidate}
	vacancyID := uuid.New()

	mockApps := new(MockApplicationRepository)
	mockApps.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Application) bool {
		return a.VacancyID == vacancyID && a.CandidateID == candidate.ID
	})).Return(nil)

	service := NewVacancyService(new(MockVacancyRepository), mockApps)
	err := service.Apply(context.Background(), vacancyID, candidate)

	assert.NoError(t, err)
	mockApps.AssertExpectations(t)
}
