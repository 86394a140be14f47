package dto

import "github.com/shopspring/decimal"

type AlternarRemuneracionRequest struct {
	PedidoID string          `json:"pedido_id" validate:"required,uuid"`
	Tipo     string          `json:"tipo"      validate:"required,oneof=retirado no-retirado"`
	Monto    decimal.Decimal `json:"monto"     validate:"min=0"`
	// Fecha empty = today (server-local).
	Fecha string `json:"fecha" validate:"omitempty,len=10"`
}

// AlternarRemuneracionResponse reports which side of the toggle ran.
type AlternarRemuneracionResponse struct {
	Accion string `json:"accion"` // creada | eliminada
	OK     bool   `json:"ok"`
}

type RemuneracionResponse struct {
	ID                 string          `json:"id"`
	PedidoID           string          `json:"pedido_id"`
	Tipo               string          `json:"tipo"`
	Monto              decimal.Decimal `json:"monto"`
	UsuarioNombre      string          `json:"usuario_nombre"`
	EncomendistaNombre string          `json:"encomiendista_nombre"`
	Fecha              string          `json:"fecha"`
	Timestamp          string          `json:"timestamp"`
}

// TotalEncomendista aggregates one courier's payout amounts for a date. The
// totals are recomputed from the full snapshot on every request.
type TotalEncomendista struct {
	EncomendistaNombre string          `json:"encomiendista_nombre"`
	TotalRetirado      decimal.Decimal `json:"total_retirado"`
	TotalNoRetirado    decimal.Decimal `json:"total_no_retirado"`
}

type TotalesRemuneracionResponse struct {
	Fecha   string              `json:"fecha"`
	Totales []TotalEncomendista `json:"totales"`
}
