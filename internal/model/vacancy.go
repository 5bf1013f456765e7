package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vacancy is a job posting owned by a company-role user.
type Vacancy struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;index"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"size:255;index"`
	Tags        string    `json:"tags" gorm:"size:255"`
	Location    string    `json:"location" gorm:"size:255;index"`
	Contract    string    `json:"contract" gorm:"size:255"`

	CompanyID uuid.UUID `json:"company_id" gorm:"type:char(36);index;not null"`
	Company   *User     `json:"company,omitempty" gorm:"foreignKey:CompanyID"`

	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:VacancyID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (v *Vacancy) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
