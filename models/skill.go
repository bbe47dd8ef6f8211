package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is a technology badge with a logo URL.
type Skill struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Skill     string    `json:"skill" db:"skill" gorm:"type:text;not null"`
	Logo      string    `json:"logo" db:"logo" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}

func (Skill) TableName() string { return "web_skills" }

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	s.ID = uuid.New()
	return nil
}
