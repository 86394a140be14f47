package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFechaLocal_ComponentesLocales(t *testing.T) {
	fecha, err := ParseFechaLocal("2025-03-05")
	require.NoError(t, err)

	assert.Equal(t, 2025, fecha.Year())
	assert.Equal(t, time.March, fecha.Month())
	assert.Equal(t, 5, fecha.Day())
	assert.Equal(t, 0, fecha.Hour())
	assert.Equal(t, time.Local, fecha.Location())
}

func TestParseFechaLocal_Invalidas(t *testing.T) {
	casos := []string{"", "2025-3-5", "05/03/2025", "2025-13-01", "2025-00-10", "hoy"}
	for _, c := range casos {
		_, err := ParseFechaLocal(c)
		assert.Error(t, err, "se esperaba error para %q", c)
	}
}

func TestProximoDiaEnvio_TodosLosDias(t *testing.T) {
	// 2025-01-06 is a Monday; cover one full week.
	for i := 0; i < 7; i++ {
		dia := time.Date(2025, 1, 6+i, 15, 30, 0, 0, time.Local)
		envio := ProximoDiaEnvio(dia)

		wd := envio.Weekday()
		assert.True(t, wd == time.Wednesday || wd == time.Saturday,
			"%s devolvio %s", dia.Weekday(), wd)
		assert.False(t, envio.Before(Dia(dia)))
		assert.LessOrEqual(t, int(envio.Sub(Dia(dia)).Hours()), 7*24)

		// Earliest such date: no Wed/Sat strictly between dia and envio.
		for d := Dia(dia); d.Before(envio); d = d.AddDate(0, 0, 1) {
			assert.False(t, esDiaEnvio(d), "habia un dia de envio anterior: %s", d)
		}
	}
}

func TestProximoDiaEnvio_Idempotente(t *testing.T) {
	miercoles := time.Date(2025, 1, 8, 10, 0, 0, 0, time.Local)
	sabado := time.Date(2025, 1, 11, 10, 0, 0, 0, time.Local)

	assert.Equal(t, Dia(miercoles), ProximoDiaEnvio(miercoles))
	assert.Equal(t, Dia(sabado), ProximoDiaEnvio(sabado))
}

func TestUltimoDiaEnvio(t *testing.T) {
	// Thursday 2025-01-09 → Wednesday 2025-01-08
	jueves := time.Date(2025, 1, 9, 9, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.Local), UltimoDiaEnvio(jueves))

	// Monday 2025-01-13 → Saturday 2025-01-11
	lunes := time.Date(2025, 1, 13, 9, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 1, 11, 0, 0, 0, 0, time.Local), UltimoDiaEnvio(lunes))

	// A shipment day maps to itself.
	miercoles := time.Date(2025, 1, 8, 23, 0, 0, 0, time.Local)
	assert.Equal(t, Dia(miercoles), UltimoDiaEnvio(miercoles))
}

func TestFechaLimiteUrgencia_EscenarioMuestra(t *testing.T) {
	// Wednesday 2025-01-08 is itself a shipment day, so the deadline is one
	// cycle later: 2025-01-15.
	hoy := time.Date(2025, 1, 8, 12, 0, 0, 0, time.Local)

	assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.Local), UltimoDiaEnvio(hoy))
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local), FechaLimiteUrgencia(hoy))
}

func TestNombreDia(t *testing.T) {
	assert.Equal(t, "miercoles", NombreDia(time.Date(2025, 1, 8, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "sabado", NombreDia(time.Date(2025, 1, 11, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "domingo", NombreDia(time.Date(2025, 1, 12, 0, 0, 0, 0, time.Local)))
}
