package model

import (
	"time"

	"github.com/google/uuid"
)

// Producto is a sellable item with a single photograph, grouped in albums.
// Invariant: Reservado is true iff PedidoID is non-nil — a product belongs to
// at most one pedido at a time.
type Producto struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo    string     `gorm:"uniqueIndex;not null"`
	Album     string     `gorm:"index;not null"`
	Reservado bool       `gorm:"not null;default:false"`
	PedidoID  *uuid.UUID `gorm:"type:uuid;index"`
	// FechaLiberado (YYYY-MM-DD) se fija solo al liberar un pedido cumplido.
	// Queda en NULL cuando la reserva se suelta por eliminación del pedido.
	FechaLiberado *string `gorm:"type:varchar(10)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
