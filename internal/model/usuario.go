package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is a staff account. Email doubles as the audit actor identity
// stamped on every estado transition.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null"` // admin | almacen | repartidor
	Activo       bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
