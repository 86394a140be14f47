package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido is the central order entity. It tracks a reseller order through the
// pendiente → empacada → enviado → retirado/no-retirado → liberado lifecycle,
// with one audit pair (user + timestamp) per estado ever reached.
type Pedido struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// CodigoPedido is the human-readable code: <prefijo tienda><YYYYMMDD><seq>.
	CodigoPedido string `gorm:"uniqueIndex;not null"`
	Estado       Estado `gorm:"type:varchar(20);not null;default:'pendiente';index"`

	ClienteID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	EncomendistaID *uuid.UUID `gorm:"type:uuid;index"` // NULL = entrega autogestionada
	DestinoID      *uuid.UUID `gorm:"type:uuid"`
	TiendaID       uuid.UUID  `gorm:"type:uuid;not null"`

	// FechaEntregaProgramada is always a plain calendar date (YYYY-MM-DD),
	// never a timestamp. Stored as text so no layer can silently convert it
	// and shift the day under a non-UTC timezone.
	FechaEntregaProgramada string `gorm:"type:varchar(10);index"`
	// DiaEntrega caches the weekday name for the scheduled date.
	DiaEntrega string `gorm:"type:varchar(10)"`
	HoraInicio string `gorm:"type:varchar(5)"` // HH:MM, 24h
	HoraFin    string `gorm:"type:varchar(5)"`

	Modo                   string  `gorm:"type:varchar(15);not null;default:'normal'"`
	DireccionPersonalizada *string

	CostoPrendas decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MontoEnvio   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Total se fija al escribir (costo_prendas + monto_envio) y no se
	// recalcula en lectura.
	Total decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// Audit pairs: who moved the order into each estado and when (RFC3339).
	// Only the latest transition into a given estado is retained.
	EstadoPendienteUser          *string `gorm:"column:estado_pendiente_user"`
	EstadoPendienteTimestamp     *string `gorm:"column:estado_pendiente_user_timestamp"`
	EstadoEmpacadaUser           *string `gorm:"column:estado_empacada_user"`
	EstadoEmpacadaTimestamp      *string `gorm:"column:estado_empacada_user_timestamp"`
	EstadoEnviadoUser            *string `gorm:"column:estado_enviado_user"`
	EstadoEnviadoTimestamp       *string `gorm:"column:estado_enviado_user_timestamp"`
	EstadoRetiradoUser           *string `gorm:"column:estado_retirado_user"`
	EstadoRetiradoTimestamp      *string `gorm:"column:estado_retirado_user_timestamp"`
	EstadoNoRetiradoUser         *string `gorm:"column:estado_no_retirado_user"`
	EstadoNoRetiradoTimestamp    *string `gorm:"column:estado_no_retirado_user_timestamp"`
	EstadoCanceladoUser          *string `gorm:"column:estado_cancelado_user"`
	EstadoCanceladoTimestamp     *string `gorm:"column:estado_cancelado_user_timestamp"`
	EstadoRetiradoLocalUser      *string `gorm:"column:estado_retirado_local_user"`
	EstadoRetiradoLocalTimestamp *string `gorm:"column:estado_retirado_local_user_timestamp"`
	EstadoLiberadoUser           *string `gorm:"column:estado_liberado_user"`
	EstadoLiberadoTimestamp      *string `gorm:"column:estado_liberado_user_timestamp"`
	EstadoReservadoUser          *string `gorm:"column:estado_reservado_user"`
	EstadoReservadoTimestamp     *string `gorm:"column:estado_reservado_user_timestamp"`
	EstadoRemuneroUser           *string `gorm:"column:estado_remunero_user"`
	EstadoRemuneroTimestamp      *string `gorm:"column:estado_remunero_user_timestamp"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Cliente      *Cliente      `gorm:"foreignKey:ClienteID"`
	Encomendista *Encomendista `gorm:"foreignKey:EncomendistaID"`
	Destino      *Destino      `gorm:"foreignKey:DestinoID"`
	Tienda       *Tienda       `gorm:"foreignKey:TiendaID"`
	// Productos are the items currently reserved by this pedido.
	Productos []Producto `gorm:"foreignKey:PedidoID"`
}

// NombreEncomendista returns the preloaded courier name, or "" for
// self-managed deliveries. Used as a sort key, so missing preloads must not
// panic.
func (p *Pedido) NombreEncomendista() string {
	if p.Encomendista == nil {
		return ""
	}
	return p.Encomendista.Nombre
}
