package model

import (
	"time"

	"github.com/google/uuid"
)

// Encomendista is a courier company with named drop-off points.
type Encomendista struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre   string    `gorm:"index;not null"`
	Telefono string
	Email    *string
	Activo   bool `gorm:"not null;default:true"`

	Destinos []Destino `gorm:"foreignKey:EncomendistaID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Destino is a named drop-off point served by a courier.
type Destino struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EncomendistaID uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre         string    `gorm:"not null"`

	Horarios []Horario `gorm:"foreignKey:DestinoID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Horario is a weekly delivery window for a destino.
type Horario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DestinoID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Dias holds comma-joined weekday names, e.g. "miercoles,sabado".
	Dias       string `gorm:"not null"`
	HoraInicio string `gorm:"type:varchar(5);not null"` // HH:MM, 24h
	HoraFin    string `gorm:"type:varchar(5);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
