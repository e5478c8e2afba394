package entity

import (
	"time"

	"github.com/google/uuid"
)

type Superhero struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Nickname          string    `json:"nickname" gorm:"type:varchar(100);uniqueIndex;not null"`
	RealName          string    `json:"realName" gorm:"type:varchar(100);not null"`
	OriginDescription string    `json:"originDescription" gorm:"type:varchar(2000);not null"`
	Superpowers       string    `json:"superpowers" gorm:"type:varchar(1000);not null"`
	CatchPhrase       string    `json:"catchPhrase" gorm:"type:varchar(200);not null"`
	CreatedAt         time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`
	UpdatedAt         time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	Images []SuperheroImage `json:"images" gorm:"foreignKey:SuperheroID;constraint:OnDelete:CASCADE"`
}
