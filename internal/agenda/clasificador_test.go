package agenda

import (
	"fmt"
	"testing"
	"time"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pedido(estado model.Estado, fechaEntrega string) model.Pedido {
	return model.Pedido{Estado: estado, FechaEntregaProgramada: fechaEntrega}
}

// Wednesday 2025-01-08 — a shipment day. Urgency deadline = 2025-01-15.
var hoy = time.Date(2025, 1, 8, 12, 0, 0, 0, time.Local)

func TestEsUrgenteEmpacar_EscenarioMuestra(t *testing.T) {
	o1 := pedido(model.EstadoPendiente, "2024-12-28")
	assert.True(t, EsUrgenteEmpacar(&o1, hoy))
}

func TestEsUrgenteEmpacar_Umbral(t *testing.T) {
	casos := []struct {
		fecha   string
		urgente bool
	}{
		{"2025-01-14", true},  // one day before deadline
		{"2025-01-15", false}, // on the deadline — not strictly before
		{"2025-01-20", false},
		{"2024-11-01", true},
	}
	for _, c := range casos {
		p := pedido(model.EstadoPendiente, c.fecha)
		assert.Equal(t, c.urgente, EsUrgenteEmpacar(&p, hoy), "fecha %s", c.fecha)
	}
}

func TestEsUrgenteEmpacar_SoloPendientes(t *testing.T) {
	for _, estado := range model.Estados {
		p := pedido(estado, "2024-12-28")
		esperado := estado == model.EstadoPendiente
		assert.Equal(t, esperado, EsUrgenteEmpacar(&p, hoy), "estado %s", estado)
	}
}

// Urgency is a pure threshold on the delivery date once estado is fixed: if a
// later-dated order is urgent, every earlier-dated pending order is too.
func TestEsUrgenteEmpacar_Monotonia(t *testing.T) {
	fechas := []string{"2024-12-01", "2024-12-20", "2025-01-10", "2025-01-14", "2025-01-15", "2025-02-01"}
	previoUrgente := true
	for _, f := range fechas {
		p := pedido(model.EstadoPendiente, f)
		urgente := EsUrgenteEmpacar(&p, hoy)
		if urgente {
			assert.True(t, previoUrgente, "orden con fecha anterior no era urgente pero %s si", f)
		}
		previoUrgente = urgente
	}
}

func TestEsUrgenteEmpacar_FechaInvalida(t *testing.T) {
	p := pedido(model.EstadoPendiente, "")
	assert.False(t, EsUrgenteEmpacar(&p, hoy))
}

func TestPaginasEtiquetas(t *testing.T) {
	var pedidos []model.Pedido
	for i := 0; i < 19; i++ {
		pedidos = append(pedidos, model.Pedido{CodigoPedido: fmt.Sprintf("EG20250108%02d", i)})
	}

	paginas := PaginasEtiquetas(pedidos)
	require.Len(t, paginas, 3) // ceil(19/8)
	assert.Len(t, paginas[0], 8)
	assert.Len(t, paginas[1], 8)
	assert.Len(t, paginas[2], 3)

	// Original order preserved, no re-sort within pages.
	assert.Equal(t, "EG2025010800", paginas[0][0].CodigoPedido)
	assert.Equal(t, "EG2025010808", paginas[1][0].CodigoPedido)
	assert.Equal(t, "EG2025010818", paginas[2][2].CodigoPedido)

	assert.Empty(t, PaginasEtiquetas(nil))
}

func TestDebeRemunerarse_EstadosExcluidos(t *testing.T) {
	excluidos := []model.Estado{
		model.EstadoLiberado, model.EstadoRetiradoLocal, model.EstadoCancelado,
		model.EstadoPendiente, model.EstadoEmpacada, model.EstadoRemunero,
	}
	for _, estado := range excluidos {
		p := pedido(estado, "2024-12-01") // well in the past
		assert.False(t, DebeRemunerarse(&p, hoy), "estado %s", estado)
	}
}

func TestDebeRemunerarse_FechaYEstado(t *testing.T) {
	enviado := pedido(model.EstadoEnviado, "2025-01-08")
	assert.True(t, DebeRemunerarse(&enviado, hoy), "entrega hoy cuenta")

	futuro := pedido(model.EstadoEnviado, "2025-01-09")
	assert.False(t, DebeRemunerarse(&futuro, hoy), "entrega futura no cuenta")

	retirado := pedido(model.EstadoRetirado, "2025-01-01")
	assert.True(t, DebeRemunerarse(&retirado, hoy))

	noRetirado := pedido(model.EstadoNoRetirado, "2025-01-01")
	assert.True(t, DebeRemunerarse(&noRetirado, hoy))

	reservado := pedido(model.EstadoReservado, "2025-01-01")
	assert.True(t, DebeRemunerarse(&reservado, hoy))
}

func TestParaRetirar(t *testing.T) {
	p := pedido(model.EstadoEnviado, "2025-01-08")
	assert.True(t, ParaRetirar(&p, hoy, 0))
	assert.False(t, ParaRetirar(&p, hoy, 1))

	ayer := pedido(model.EstadoEnviado, "2025-01-07")
	assert.False(t, ParaRetirar(&ayer, hoy, 0))
	assert.True(t, ParaRetirar(&ayer, hoy, 1))

	pendiente := pedido(model.EstadoPendiente, "2025-01-08")
	assert.False(t, ParaRetirar(&pendiente, hoy, 0), "solo enviados")

	assert.False(t, ParaRetirar(&p, hoy, -1))
}

func TestClasificarIntradia(t *testing.T) {
	en := func(hhmm string) time.Time {
		tt, ok := enHora(hoy, hhmm)
		require.True(t, ok)
		return tt
	}

	// Window 14:00–16:00, margin 30min.
	casos := []struct {
		now      time.Time
		esperado EstadoIntradia
	}{
		{en("13:00"), IntradiaPendiente},
		{en("13:29"), IntradiaPendiente},
		{en("13:30"), IntradiaAPunto},
		{en("13:59"), IntradiaAPunto},
		{en("14:00"), IntradiaEnCurso},
		{en("15:59"), IntradiaEnCurso},
		{en("16:00"), IntradiaPasado},
		{en("20:00"), IntradiaPasado},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, ClasificarIntradia("14:00", "16:00", c.now),
			"a las %s", c.now.Format("15:04"))
	}
}

func TestClasificarIntradia_VentanaInvalida(t *testing.T) {
	assert.Equal(t, IntradiaPasado, ClasificarIntradia("", "16:00", hoy))
	assert.Equal(t, IntradiaPasado, ClasificarIntradia("25:00", "26:00", hoy))
}

func TestOrdenarSinFinalizar(t *testing.T) {
	conCourier := func(estado model.Estado, fecha, courier string) model.Pedido {
		p := pedido(estado, fecha)
		p.Encomendista = &model.Encomendista{Nombre: courier}
		return p
	}

	pedidos := []model.Pedido{
		conCourier(model.EstadoEnviado, "2025-01-10", "Zeta Express"),
		conCourier(model.EstadoPendiente, "2025-02-01", "Andes Cargo"), // pendiente, no urgente
		conCourier(model.EstadoCancelado, "2024-12-01", "Andes Cargo"), // excluido
		conCourier(model.EstadoPendiente, "2024-12-28", "beta"),        // urgente
		conCourier(model.EstadoPendiente, "2024-12-20", "Beta"),        // urgente, mismo courier (case), fecha anterior
		conCourier(model.EstadoRetiradoLocal, "2025-01-05", "Gamma"),   // excluido
		conCourier(model.EstadoEmpacada, "2025-01-09", "Andes Cargo"),
	}

	orden := OrdenarSinFinalizar(pedidos, hoy)
	require.Len(t, orden, 5)

	// Urgent first, tie broken by date ascending within same courier.
	assert.Equal(t, "2024-12-20", orden[0].FechaEntregaProgramada)
	assert.Equal(t, "2024-12-28", orden[1].FechaEntregaProgramada)

	// Then by estado rank: pendiente(1) < empacada(2) < enviado(3).
	assert.Equal(t, model.EstadoPendiente, orden[2].Estado)
	assert.Equal(t, model.EstadoEmpacada, orden[3].Estado)
	assert.Equal(t, model.EstadoEnviado, orden[4].Estado)
}

func TestUrgentesEmpacar_PreservaOrden(t *testing.T) {
	pedidos := []model.Pedido{
		pedido(model.EstadoPendiente, "2025-01-02"),
		pedido(model.EstadoEnviado, "2025-01-02"),
		pedido(model.EstadoPendiente, "2024-12-15"),
	}
	urgentes := UrgentesEmpacar(pedidos, hoy)
	require.Len(t, urgentes, 2)
	assert.Equal(t, "2025-01-02", urgentes[0].FechaEntregaProgramada)
	assert.Equal(t, "2024-12-15", urgentes[1].FechaEntregaProgramada)
}
