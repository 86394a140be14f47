package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Remuneracion is one append-only payout ledger row. The composite unique
// index enforces at most one row per (pedido, fecha, tipo) — the toggle in
// RemuneracionService relies on it to stay race-free under double clicks.
type Remuneracion struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_remuneracion_toggle"`
	// Tipo: "retirado" | "no-retirado"
	Tipo  string `gorm:"type:varchar(15);not null;uniqueIndex:idx_remuneracion_toggle"`
	Fecha string `gorm:"type:varchar(10);not null;index;uniqueIndex:idx_remuneracion_toggle"`

	Monto         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UsuarioNombre string          `gorm:"not null"`
	// Column name keeps the historical spelling used on the wire.
	EncomendistaNombre string `gorm:"column:encomiendista_nombre;not null"`
	// Timestamp is the ISO-8601 moment the toggle created this row.
	Timestamp string `gorm:"not null"`

	CreatedAt time.Time
}

// TableName overrides GORM's default pluralization.
func (Remuneracion) TableName() string { return "remuneraciones" }
