package entity

import (
	"time"

	"github.com/google/uuid"
)

// SuperheroImage rows are immutable once created: attached in batches,
// removed one at a time together with the stored file.
type SuperheroImage struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SuperheroID  uuid.UUID `json:"superheroId" gorm:"type:uuid;not null;index"`
	Filename     string    `json:"filename" gorm:"type:varchar(255);not null"`
	OriginalName string    `json:"originalName" gorm:"type:varchar(255);not null"`
	MimeType     string    `json:"mimetype" gorm:"type:varchar(100);not null"`
	Size         int64     `json:"size" gorm:"not null"`
	Path         string    `json:"path" gorm:"type:varchar(512);not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`

	Superhero *Superhero `json:"-" gorm:"foreignKey:SuperheroID;constraint:OnDelete:CASCADE"`
}
