package model

// Estado is the closed order-status enum. The string values are wire values:
// they appear verbatim as DB column contents and as HTTP query parameters
// (?estado=enviado or ?estado=enviado,retirado) and must never change.
type Estado string

const (
	EstadoPendiente     Estado = "pendiente"
	EstadoEmpacada      Estado = "empacada"
	EstadoEnviado       Estado = "enviado"
	EstadoRetirado      Estado = "retirado"
	EstadoNoRetirado    Estado = "no-retirado"
	EstadoCancelado     Estado = "cancelado"
	EstadoRetiradoLocal Estado = "retirado-local"
	EstadoLiberado      Estado = "liberado"
	EstadoReservado     Estado = "reservado"
	EstadoRemunero      Estado = "remunero"
)

// Estados lists every value in declaration order. The audit history iterates
// this slice, so the order is part of the API.
var Estados = []Estado{
	EstadoPendiente,
	EstadoEmpacada,
	EstadoEnviado,
	EstadoRetirado,
	EstadoNoRetirado,
	EstadoCancelado,
	EstadoRetiradoLocal,
	EstadoLiberado,
	EstadoReservado,
	EstadoRemunero,
}

// ParseEstado validates a wire value against the enum.
func ParseEstado(s string) (Estado, bool) {
	for _, e := range Estados {
		if string(e) == s {
			return e, true
		}
	}
	return "", false
}

// Prioridad returns the sort rank used by the default "sin finalizar" list
// view. Unranked estados sort last.
func (e Estado) Prioridad() int {
	switch e {
	case EstadoPendiente:
		return 1
	case EstadoEmpacada:
		return 2
	case EstadoEnviado:
		return 3
	case EstadoRetirado:
		return 4
	case EstadoRemunero:
		return 5
	case EstadoCancelado:
		return 6
	case EstadoLiberado:
		return 7
	default:
		return 99
	}
}

// Delivery mode. "normal" requires encomendista + destino; "personalizado"
// requires a free-form address instead.
const (
	ModoNormal        = "normal"
	ModoPersonalizado = "personalizado"
)

// Payout record types — mirror the retirado / no-retirado estados.
const (
	TipoRemuneracionRetirado   = "retirado"
	TipoRemuneracionNoRetirado = "no-retirado"
)
