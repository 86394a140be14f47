package model

// auditoria.go — per-estado audit trail embedded in Pedido.
// Each estado has one (user, timestamp) pair; recording a transition into an
// estado overwrites that estado's pair, so only the latest transition into
// each estado survives.

import (
	"time"

	"github.com/rs/zerolog/log"
)

// EntradaHistorial is one populated audit pair.
type EntradaHistorial struct {
	Estado    Estado `json:"estado"`
	Usuario   string `json:"usuario"`
	Timestamp string `json:"timestamp"`
}

type parAuditoria struct {
	estado    Estado
	usuario   **string
	timestamp **string
}

// paresAuditoria maps every estado to its audit fields, in declaration order.
func (p *Pedido) paresAuditoria() []parAuditoria {
	return []parAuditoria{
		{EstadoPendiente, &p.EstadoPendienteUser, &p.EstadoPendienteTimestamp},
		{EstadoEmpacada, &p.EstadoEmpacadaUser, &p.EstadoEmpacadaTimestamp},
		{EstadoEnviado, &p.EstadoEnviadoUser, &p.EstadoEnviadoTimestamp},
		{EstadoRetirado, &p.EstadoRetiradoUser, &p.EstadoRetiradoTimestamp},
		{EstadoNoRetirado, &p.EstadoNoRetiradoUser, &p.EstadoNoRetiradoTimestamp},
		{EstadoCancelado, &p.EstadoCanceladoUser, &p.EstadoCanceladoTimestamp},
		{EstadoRetiradoLocal, &p.EstadoRetiradoLocalUser, &p.EstadoRetiradoLocalTimestamp},
		{EstadoLiberado, &p.EstadoLiberadoUser, &p.EstadoLiberadoTimestamp},
		{EstadoReservado, &p.EstadoReservadoUser, &p.EstadoReservadoTimestamp},
		{EstadoRemunero, &p.EstadoRemuneroUser, &p.EstadoRemuneroTimestamp},
	}
}

// RegistrarTransicion sets the new estado and stamps its audit pair with the
// actor email and now (RFC3339). When the actor is empty or the estado has no
// audit pair, the estado still changes but no audit is written — the
// operation degrades with a warning instead of failing.
//
// Callers compare against the previously loaded estado before invoking; the
// function itself is unconditional.
func (p *Pedido) RegistrarTransicion(estado Estado, actorEmail string, now time.Time) {
	p.Estado = estado

	var par *parAuditoria
	for _, candidato := range p.paresAuditoria() {
		if candidato.estado == estado {
			par = &candidato
			break
		}
	}
	if par == nil {
		log.Warn().
			Str("codigo_pedido", p.CodigoPedido).
			Str("estado", string(estado)).
			Msg("estado sin par de auditoria, transicion sin registro")
		return
	}
	if actorEmail == "" {
		log.Warn().
			Str("codigo_pedido", p.CodigoPedido).
			Str("estado", string(estado)).
			Msg("transicion sin actor, no se registra auditoria")
		return
	}

	usuario := actorEmail
	ts := now.Format(time.RFC3339)
	*par.usuario = &usuario
	*par.timestamp = &ts
}

// Historial returns every populated audit pair in enum declaration order.
// The order is NOT chronological: the trail is keyed by estado, not an
// append-only log.
func (p *Pedido) Historial() []EntradaHistorial {
	var entradas []EntradaHistorial
	for _, par := range p.paresAuditoria() {
		if *par.usuario == nil || *par.timestamp == nil {
			continue
		}
		entradas = append(entradas, EntradaHistorial{
			Estado:    par.estado,
			Usuario:   **par.usuario,
			Timestamp: **par.timestamp,
		})
	}
	return entradas
}

// ModificadoPor reports whether the actor appears in any populated audit pair.
func (p *Pedido) ModificadoPor(actorEmail string) bool {
	for _, par := range p.paresAuditoria() {
		if *par.usuario != nil && **par.usuario == actorEmail {
			return true
		}
	}
	return false
}
