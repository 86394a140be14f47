package dto

import (
	"github.com/shopspring/decimal"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"
)

// ─── Filter / List ──────────────────────────────────────────────────────────

// PedidoFilter is bound from the query string of GET /pedidos.
// Estado accepts comma-joined multi-status values: ?estado=enviado,retirado.
type PedidoFilter struct {
	Estado string `form:"estado"`
	Limite int    `form:"limite,default=100" validate:"min=1,max=500"`
}

// FechaHoyQuery carries the caller's "today" for the classifier endpoints.
// Empty = server-local today.
type FechaHoyQuery struct {
	FechaHoy  string `form:"fecha_hoy" validate:"omitempty,len=10"`
	DiasAtras int    `form:"dias_atras,default=0" validate:"min=0,max=30"`
}

// ─── Request DTOs ───────────────────────────────────────────────────────────

type CrearPedidoRequest struct {
	ClienteID      string   `json:"cliente_id"      validate:"required,uuid"`
	TiendaID       string   `json:"tienda_id"       validate:"required,uuid"`
	EncomendistaID *string  `json:"encomendista_id" validate:"omitempty,uuid"`
	DestinoID      *string  `json:"destino_id"      validate:"omitempty,uuid"`
	ProductosID    []string `json:"productos_id"    validate:"required,min=1,dive,uuid"`

	FechaEntregaProgramada string `json:"fecha_entrega_programada" validate:"required,len=10"`
	HoraInicio             string `json:"hora_inicio"              validate:"required,len=5"`
	HoraFin                string `json:"hora_fin"                 validate:"required,len=5"`

	Modo                   string  `json:"modo" validate:"required,oneof=normal personalizado"`
	DireccionPersonalizada *string `json:"direccion_personalizada"`

	CostoPrendas decimal.Decimal `json:"costo_prendas" validate:"min=0"`
	MontoEnvio   decimal.Decimal `json:"monto_envio"   validate:"min=0"`
}

type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// ─── Response DTOs ──────────────────────────────────────────────────────────

type PedidoResponse struct {
	ID           string `json:"id"`
	CodigoPedido string `json:"codigo_pedido"`
	Estado       string `json:"estado"`

	ClienteID      string  `json:"cliente_id"`
	ClienteNombre  string  `json:"cliente_nombre,omitempty"`
	EncomendistaID *string `json:"encomendista_id,omitempty"`
	Encomendista   string  `json:"encomendista_nombre,omitempty"`
	DestinoID      *string `json:"destino_id,omitempty"`
	TiendaID       string  `json:"tienda_id"`

	FechaEntregaProgramada string `json:"fecha_entrega_programada"`
	DiaEntrega             string `json:"dia_entrega"`
	HoraInicio             string `json:"hora_inicio"`
	HoraFin                string `json:"hora_fin"`
	// EstadoIntradia is recomputed from the wall clock on every read:
	// pendiente | a-punto | en-curso | pasado.
	EstadoIntradia string `json:"estado_intradia,omitempty"`

	Modo                   string  `json:"modo"`
	DireccionPersonalizada *string `json:"direccion_personalizada,omitempty"`

	CostoPrendas decimal.Decimal `json:"costo_prendas"`
	MontoEnvio   decimal.Decimal `json:"monto_envio"`
	Total        decimal.Decimal `json:"total"`

	Urgente   bool                     `json:"urgente,omitempty"`
	Productos []string                 `json:"productos_id,omitempty"`
	Historial []model.EntradaHistorial `json:"historial,omitempty"`

	CreatedAt string `json:"created_at"`
}

type PedidoListResponse struct {
	Data  []PedidoResponse `json:"data"`
	Total int              `json:"total"`
}

// EnvioDelDiaResponse drives the retrieval dashboards.
type EnvioDelDiaResponse struct {
	FechaHoy  string           `json:"fecha_hoy"`
	DiasAtras int              `json:"dias_atras"`
	Pedidos   []PedidoResponse `json:"pedidos"`
}
