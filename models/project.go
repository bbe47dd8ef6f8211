package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio entry shown on the skills page and managed from the dashboard.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	VideoURL    *string   `json:"video_url" db:"video_url" gorm:"type:text"`
	TechStack   TechStack `json:"tech_stack" db:"tech_stack" gorm:"type:jsonb"`
	Status      string    `json:"status" db:"status" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}

func (Project) TableName() string { return "projects" }

// BeforeCreate assigns the backend identifier; ids sent by clients are discarded.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	p.ID = uuid.New()
	return nil
}

// StatusClass turns a free-text status such as "In Progress" into "in-progress".
func (p Project) StatusClass() string {
	return slugify(p.Status)
}
