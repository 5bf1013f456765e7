package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// VacancyInput carries the free-form vacancy fields submitted by a form.
type VacancyInput struct {
	Title       string
	Description string
	Category    string
	Tags        string
	Location    string
	Contract    string
}

// VacancyService handles vacancy operations.
type VacancyService interface {
	// Create inserts a vacancy owned by companyID, or by the requester
	// when companyID is empty.
	Create(ctx context.Context, input VacancyInput, companyID string, requester *model.User) (*model.Vacancy, error)
	// Get fetches a vacancy by id. A missing record returns (nil, nil)
	// so views render an empty detail rather than an error page.
	Get(ctx context.Context, id uuid.UUID) (*model.Vacancy, error)
	// ListFor returns the requester's own vacancies for company users
	// and every vacancy for everyone else.
	ListFor(ctx context.Context, user *model.User) ([]model.Vacancy, error)
	Filter(ctx context.Context, title, category, location string) ([]model.Vacancy, error)
	Update(ctx context.Context, id uuid.UUID, input VacancyInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	Apply(ctx context.Context, vacancyID uuid.UUID, candidate *model.User) error
}

type vacancyService struct {
	vacancyRepo     repository.VacancyRepository
	applicationRepo repository.ApplicationRepository
}

// NewVacancyService creates a new vacancy service.
func NewVacancyService(vacancyRepo repository.VacancyRepository, applicationRepo repository.ApplicationRepository) VacancyService {
	return &vacancyService{
		vacancyRepo:     vacancyRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *vacancyService) Create(ctx context.Context, input VacancyInput, companyID string, requester *model.User) (*model.Vacancy, error) {
	owner := requester.ID
	if companyID != "" {
		if parsed, err := uuid.Parse(companyID); err == nil {
			owner = parsed
		}
	}

	vacancy := &model.Vacancy{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Tags:        input.Tags,
		Location:    input.Location,
		Contract:    input.Contract,
		CompanyID:   owner,
	}
	if err := s.vacancyRepo.Create(ctx, vacancy); err != nil {
		return nil, fmt.Errorf("create vacancy: %w", err)
	}
	return vacancy, nil
}

func (s *vacancyService) Get(ctx context.Context, id uuid.UUID) (*model.Vacancy, error) {
	vacancy, err := s.vacancyRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find vacancy: %w", err)
	}
	return vacancy, nil
}

func (s *vacancyService) ListFor(ctx context.Context, user *model.User) ([]model.Vacancy, error) {
	if user.Role == model.RoleCompany {
		return s.vacancyRepo.ListByCompany(ctx, user.ID)
	}
	return s.vacancyRepo.ListAll(ctx)
}

func (s *vacancyService) Filter(ctx context.Context, title, category, location string) ([]model.Vacancy, error) {
	return s.vacancyRepo.Filter(ctx, title, category, location)
}

func (s *vacancyService) Update(ctx context.Context, id uuid.UUID, input VacancyInput) error {
	fields := map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"category":    input.Category,
		"tags":        input.Tags,
		"location":    input.Location,
		"contract":    input.Contract,
	}
	if err := s.vacancyRepo.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("update vacancy: %w", err)
	}
	return nil
}

func (s *vacancyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.vacancyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vacancy: %w", err)
	}
	return nil
}

func (s *vacancyService) Apply(ctx context.Context, vacancyID uuid.UUID, candidate *model.User) error {
	application := &model.Application{
		VacancyID:   vacancyID,
		CandidateID: candidate.ID,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}
