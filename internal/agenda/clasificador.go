package agenda

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"
)

// EtiquetasPorPagina is the fixed sticker-sheet capacity.
const EtiquetasPorPagina = 8

// EsUrgenteEmpacar reports whether a pending order must be packed before the
// next cycle: its scheduled delivery date falls before the urgency deadline
// (last shipment day on or before now, plus seven days).
func EsUrgenteEmpacar(p *model.Pedido, now time.Time) bool {
	if p.Estado != model.EstadoPendiente {
		return false
	}
	entrega, err := ParseFechaLocal(p.FechaEntregaProgramada)
	if err != nil {
		return false
	}
	return entrega.Before(FechaLimiteUrgencia(now))
}

// UrgentesEmpacar filters the snapshot down to urgent orders, preserving the
// input order.
func UrgentesEmpacar(pedidos []model.Pedido, now time.Time) []model.Pedido {
	urgentes := make([]model.Pedido, 0)
	for _, p := range pedidos {
		if EsUrgenteEmpacar(&p, now) {
			urgentes = append(urgentes, p)
		}
	}
	return urgentes
}

// PaginasEtiquetas slices orders into fixed pages of 8 for the sticker-sheet
// printing workflow. Input order is preserved and pages are never re-sorted.
func PaginasEtiquetas(pedidos []model.Pedido) [][]model.Pedido {
	var paginas [][]model.Pedido
	for inicio := 0; inicio < len(pedidos); inicio += EtiquetasPorPagina {
		fin := inicio + EtiquetasPorPagina
		if fin > len(pedidos) {
			fin = len(pedidos)
		}
		paginas = append(paginas, pedidos[inicio:fin])
	}
	return paginas
}

// estadosSinRemunerar are excluded from payout reconciliation: orders that
// never left the warehouse or are already financially closed.
var estadosSinRemunerar = map[model.Estado]bool{
	model.EstadoLiberado:      true,
	model.EstadoRetiradoLocal: true,
	model.EstadoCancelado:     true,
	model.EstadoPendiente:     true,
	model.EstadoEmpacada:      true,
	model.EstadoRemunero:      true,
}

// DebeRemunerarse reports whether an order needs payout reconciliation: it is
// not in the exclusion set and its delivery window has already started
// (scheduled date not in the future).
func DebeRemunerarse(p *model.Pedido, now time.Time) bool {
	if estadosSinRemunerar[p.Estado] {
		return false
	}
	entrega, err := ParseFechaLocal(p.FechaEntregaProgramada)
	if err != nil {
		return false
	}
	return !entrega.After(Dia(now))
}

// PorRemunerar filters the snapshot down to payout-due orders.
func PorRemunerar(pedidos []model.Pedido, now time.Time) []model.Pedido {
	debidos := make([]model.Pedido, 0)
	for _, p := range pedidos {
		if DebeRemunerarse(&p, now) {
			debidos = append(debidos, p)
		}
	}
	return debidos
}

// ParaRetirar reports whether a shipped order was scheduled exactly diasAtras
// days ago (0 = today). Drives the same-day and retroactive retrieval boards.
func ParaRetirar(p *model.Pedido, now time.Time, diasAtras int) bool {
	if p.Estado != model.EstadoEnviado || diasAtras < 0 {
		return false
	}
	entrega, err := ParseFechaLocal(p.FechaEntregaProgramada)
	if err != nil {
		return false
	}
	return entrega.Equal(Dia(now).AddDate(0, 0, -diasAtras))
}

// ParaEnvios filters shipped orders scheduled exactly diasAtras days before
// now.
func ParaEnvios(pedidos []model.Pedido, now time.Time, diasAtras int) []model.Pedido {
	salida := make([]model.Pedido, 0)
	for _, p := range pedidos {
		if ParaRetirar(&p, now, diasAtras) {
			salida = append(salida, p)
		}
	}
	return salida
}

// ── Intra-day delivery state ─────────────────────────────────────────────────

// EstadoIntradia classifies an order's delivery window against the wall
// clock. It is recomputed on every read; nothing is persisted.
type EstadoIntradia int

const (
	IntradiaPendiente EstadoIntradia = iota
	IntradiaAPunto
	IntradiaEnCurso
	IntradiaPasado
)

func (e EstadoIntradia) String() string {
	switch e {
	case IntradiaPendiente:
		return "pendiente"
	case IntradiaAPunto:
		return "a-punto"
	case IntradiaEnCurso:
		return "en-curso"
	default:
		return "pasado"
	}
}

// margenAPunto is how long before hora_inicio an order counts as "a punto".
const margenAPunto = 30 * time.Minute

// ClasificarIntradia maps now against the [horaInicio, horaFin) window.
// Malformed windows classify as Pasado so they drop out of active boards.
func ClasificarIntradia(horaInicio, horaFin string, now time.Time) EstadoIntradia {
	inicio, okInicio := enHora(now, horaInicio)
	fin, okFin := enHora(now, horaFin)
	if !okInicio || !okFin {
		return IntradiaPasado
	}
	switch {
	case now.Before(inicio.Add(-margenAPunto)):
		return IntradiaPendiente
	case now.Before(inicio):
		return IntradiaAPunto
	case now.Before(fin):
		return IntradiaEnCurso
	default:
		return IntradiaPasado
	}
}

// enHora anchors an HH:MM wall-clock value on the given day.
func enHora(dia time.Time, hhmm string) (time.Time, bool) {
	var h, m int
	if n, err := fmt.Sscanf(hhmm, "%2d:%2d", &h, &m); err != nil || n != 2 {
		return time.Time{}, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return time.Time{}, false
	}
	return time.Date(dia.Year(), dia.Month(), dia.Day(), h, m, 0, 0, dia.Location()), true
}

// ── Default list ordering ────────────────────────────────────────────────────

// estadosFinalizados drop out of the default list view.
var estadosFinalizados = map[model.Estado]bool{
	model.EstadoNoRetirado:    true,
	model.EstadoCancelado:     true,
	model.EstadoRetiradoLocal: true,
}

// OrdenarSinFinalizar returns the default list view: finalized estados
// excluded, sorted by urgency first, then estado rank, then courier name
// (case-insensitive), then delivery date ascending. The UI depends on this
// exact ordering.
func OrdenarSinFinalizar(pedidos []model.Pedido, now time.Time) []model.Pedido {
	abiertos := make([]model.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if !estadosFinalizados[p.Estado] {
			abiertos = append(abiertos, p)
		}
	}

	sort.SliceStable(abiertos, func(i, j int) bool {
		a, b := &abiertos[i], &abiertos[j]

		urgenteA, urgenteB := EsUrgenteEmpacar(a, now), EsUrgenteEmpacar(b, now)
		if urgenteA != urgenteB {
			return urgenteA
		}

		if ra, rb := a.Estado.Prioridad(), b.Estado.Prioridad(); ra != rb {
			return ra < rb
		}

		na := strings.ToLower(a.NombreEncomendista())
		nb := strings.ToLower(b.NombreEncomendista())
		if na != nb {
			return na < nb
		}

		return a.FechaEntregaProgramada < b.FechaEntregaProgramada
	})
	return abiertos
}
