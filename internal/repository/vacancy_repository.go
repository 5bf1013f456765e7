package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// VacancyRepository defines vacancy persistence operations.
type VacancyRepository interface {
	Create(ctx context.Context, vacancy *model.Vacancy) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vacancy, error)
	ListAll(ctx context.Context) ([]model.Vacancy, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Vacancy, error)
	Filter(ctx context.Context, title, category, location string) ([]model.Vacancy, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vacancyRepository struct {
	db *gorm.DB
}

// NewVacancyRepository builds a GORM-backed repository.
func NewVacancyRepository(db *gorm.DB) VacancyRepository {
	return &vacancyRepository{db: db}
}

func (r *vacancyRepository) Create(ctx context.Context, vacancy *model.Vacancy) error {
	return r.db.WithContext(ctx).Create(vacancy).Error
}

func (r *vacancyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Vacancy, error) {
	var vacancy model.Vacancy
	err := r.db.WithContext(ctx).Preload("Company").Preload("Applications").
		Where("id = ?", id).First(&vacancy).Error
	if err != nil {
		return nil, err
	}
	return &vacancy, nil
}

func (r *vacancyRepository) ListAll(ctx context.Context) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	if err := r.db.WithContext(ctx).Preload("Company").Find(&vacancies).Error; err != nil {
		return nil, err
	}
	return vacancies, nil
}

func (r *vacancyRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	err := r.db.WithContext(ctx).Preload("Company").
		Where("company_id = ?", companyID).Find(&vacancies).Error
	if err != nil {
		return nil, err
	}
	return vacancies, nil
}

// Filter matches title, category and location independently as
// case-insensitive prefixes. Empty terms match everything.
func (r *vacancyRepository) Filter(ctx context.Context, title, category, location string) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	err := r.db.WithContext(ctx).Preload("Company").
		Where("title LIKE ?", prefixPattern(title)).
		Where("category LIKE ?", prefixPattern(category)).
		Where("location LIKE ?", prefixPattern(location)).
		Find(&vacancies).Error
	if err != nil {
		return nil, err
	}
	return vacancies, nil
}

// prefixPattern turns a search term into a prefix-only LIKE pattern.
// Case folding is left to the column collation.
func prefixPattern(term string) string {
	return term + "%"
}

func (r *vacancyRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Vacancy{}).
		Where("id = ?", id).Updates(fields).Error
}

func (r *vacancyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Vacancy{}).Error
}
