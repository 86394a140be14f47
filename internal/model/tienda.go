package model

import (
	"time"

	"github.com/google/uuid"
)

// Tienda is a sales storefront. Prefijo seeds the codigo_pedido of every
// order placed through it.
type Tienda struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre   string    `gorm:"not null"`
	Prefijo  string    `gorm:"type:varchar(5);uniqueIndex;not null"`
	Telefono string
	Activo   bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
