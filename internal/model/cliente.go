package model

import (
	"time"

	"github.com/google/uuid"
)

type Cliente struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre   string    `gorm:"index;not null"`
	Telefono string
	Nota     *string
	Activo   bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
