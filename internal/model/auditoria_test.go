package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ahora = time.Date(2025, 1, 8, 10, 30, 0, 0, time.Local)

func TestRegistrarTransicion_ParAuditoria(t *testing.T) {
	p := &Pedido{CodigoPedido: "EG202501081"}
	p.RegistrarTransicion(EstadoPendiente, "creador@eligomez.com", ahora)
	p.RegistrarTransicion(EstadoEnviado, "a@b.com", ahora.Add(time.Hour))

	assert.Equal(t, EstadoEnviado, p.Estado)
	require.NotNil(t, p.EstadoEnviadoUser)
	assert.Equal(t, "a@b.com", *p.EstadoEnviadoUser)
	require.NotNil(t, p.EstadoEnviadoTimestamp)
	assert.Equal(t, ahora.Add(time.Hour).Format(time.RFC3339), *p.EstadoEnviadoTimestamp)

	// The creation pair stays untouched.
	require.NotNil(t, p.EstadoPendienteUser)
	assert.Equal(t, "creador@eligomez.com", *p.EstadoPendienteUser)

	historial := p.Historial()
	require.Len(t, historial, 2)
	assert.Equal(t, EstadoPendiente, historial[0].Estado)
	assert.Equal(t, EstadoEnviado, historial[1].Estado)
	assert.Equal(t, "a@b.com", historial[1].Usuario)
}

func TestRegistrarTransicion_SinActor(t *testing.T) {
	p := &Pedido{CodigoPedido: "EG202501082"}
	p.RegistrarTransicion(EstadoEmpacada, "", ahora)

	// Estado changes but no audit pair is written.
	assert.Equal(t, EstadoEmpacada, p.Estado)
	assert.Nil(t, p.EstadoEmpacadaUser)
	assert.Nil(t, p.EstadoEmpacadaTimestamp)
	assert.Empty(t, p.Historial())
}

func TestRegistrarTransicion_Sobrescribe(t *testing.T) {
	// Only the latest transition into a given estado is retained.
	p := &Pedido{}
	p.RegistrarTransicion(EstadoEnviado, "primero@eligomez.com", ahora)
	p.RegistrarTransicion(EstadoEnviado, "segundo@eligomez.com", ahora.Add(2*time.Hour))

	historial := p.Historial()
	require.Len(t, historial, 1)
	assert.Equal(t, "segundo@eligomez.com", historial[0].Usuario)
}

func TestHistorial_OrdenDeclaracion(t *testing.T) {
	// Transitions out of chronological order still come back in enum
	// declaration order.
	p := &Pedido{}
	p.RegistrarTransicion(EstadoRetirado, "x@eligomez.com", ahora)
	p.RegistrarTransicion(EstadoPendiente, "y@eligomez.com", ahora.Add(time.Hour))

	historial := p.Historial()
	require.Len(t, historial, 2)
	assert.Equal(t, EstadoPendiente, historial[0].Estado)
	assert.Equal(t, EstadoRetirado, historial[1].Estado)
}

func TestModificadoPor(t *testing.T) {
	p := &Pedido{}
	p.RegistrarTransicion(EstadoPendiente, "betty@eligomez.com", ahora)
	p.RegistrarTransicion(EstadoEmpacada, "mario@eligomez.com", ahora)

	assert.True(t, p.ModificadoPor("betty@eligomez.com"))
	assert.True(t, p.ModificadoPor("mario@eligomez.com"))
	assert.False(t, p.ModificadoPor("nadie@eligomez.com"))
}

func TestParseEstado(t *testing.T) {
	e, ok := ParseEstado("no-retirado")
	assert.True(t, ok)
	assert.Equal(t, EstadoNoRetirado, e)

	_, ok = ParseEstado("desconocido")
	assert.False(t, ok)
}

func TestPrioridad(t *testing.T) {
	assert.Equal(t, 1, EstadoPendiente.Prioridad())
	assert.Equal(t, 5, EstadoRemunero.Prioridad())
	assert.Equal(t, 99, EstadoReservado.Prioridad())
	assert.Equal(t, 99, EstadoNoRetirado.Prioridad())
}
