package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application records a candidate applying to a vacancy. Applications
// have no further workflow state.
type Application struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	VacancyID   uuid.UUID `json:"vacancy_id" gorm:"type:char(36);index;not null"`
	CandidateID uuid.UUID `json:"candidate_id" gorm:"type:char(36);index;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
