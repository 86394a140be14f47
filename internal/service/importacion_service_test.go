package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hojaEjemplo = `notas de la semana,,
2025-01-08,,,,,,
Clienta,Telefono,Destino,Encomendista,Dia,Hora,Estado,Total
Maria Lopez,999111222,Arequipa,Olva,miercoles,14:00,enviado,85.00
Rosa Diaz,988777666,Cusco,Shalom,miercoles,15:00,pendiente,40.50
,,,,,,
2025-01-11,,,,,,
Clienta,Telefono,Destino,Encomendista,Dia,Hora,Estado,Total
Maria,999111222,Arequipa,Olva,sabado,10:00,pendiente,60.00
`

func TestParsearCSV_BloquesPorFecha(t *testing.T) {
	svc := NewImportacionService()

	resp, err := svc.ParsearCSV(strings.NewReader(hojaEjemplo))
	require.NoError(t, err)
	require.Len(t, resp.Bloques, 2)

	b1 := resp.Bloques[0]
	assert.Equal(t, "2025-01-08", b1.Fecha)
	require.Len(t, b1.Pedidos, 2)
	assert.Equal(t, "Maria Lopez", b1.Pedidos[0].ClienteNombre)
	assert.Equal(t, "Olva", b1.Pedidos[0].EncomendistaNombre)
	assert.Equal(t, "enviado", b1.Pedidos[0].Estado)
	assert.Equal(t, "85.00", b1.Pedidos[0].Total)
	assert.Equal(t, 4, b1.Pedidos[0].Fila)

	b2 := resp.Bloques[1]
	assert.Equal(t, "2025-01-11", b2.Fecha)
	require.Len(t, b2.Pedidos, 1)
	assert.Equal(t, "2025-01-11", b2.Pedidos[0].FechaBloque)
}

func TestParsearCSV_AgrupaNombresPorContencion(t *testing.T) {
	svc := NewImportacionService()

	resp, err := svc.ParsearCSV(strings.NewReader(hojaEjemplo))
	require.NoError(t, err)

	// "Maria" del segundo bloque cae dentro de "Maria Lopez" del primero.
	assert.ElementsMatch(t, []string{"Maria Lopez", "Rosa Diaz"}, resp.Clientes)
	assert.ElementsMatch(t, []string{"Olva", "Shalom"}, resp.Encomendistas)
	require.Len(t, resp.Ambiguedades, 1)
	assert.Contains(t, resp.Ambiguedades[0], "Maria")
}

func TestParsearCSV_EncabezadosDifusos(t *testing.T) {
	svc := NewImportacionService()
	hoja := `2025-01-08,,
nombre clienta , celular ,lugar destino
Ana Torres,911222333,Trujillo
`
	resp, err := svc.ParsearCSV(strings.NewReader(hoja))
	require.NoError(t, err)
	require.Len(t, resp.Bloques, 1)
	require.Len(t, resp.Bloques[0].Pedidos, 1)

	p := resp.Bloques[0].Pedidos[0]
	assert.Equal(t, "Ana Torres", p.ClienteNombre)
	assert.Equal(t, "911222333", p.Telefono)
	assert.Equal(t, "Trujillo", p.Destino)
}

func TestParsearCSV_FilasSinClientaSeOmiten(t *testing.T) {
	svc := NewImportacionService()
	hoja := `2025-01-08,,
Clienta,Telefono,Destino
Ana Torres,911222333,Trujillo
,955444333,Lima
`
	resp, err := svc.ParsearCSV(strings.NewReader(hoja))
	require.NoError(t, err)
	require.Len(t, resp.Bloques, 1)
	assert.Len(t, resp.Bloques[0].Pedidos, 1)
}

func TestParsearCSV_FilasAntesDeLaPrimeraFechaSeIgnoran(t *testing.T) {
	svc := NewImportacionService()
	hoja := `Clienta,Telefono
Perdida,900000000
`
	resp, err := svc.ParsearCSV(strings.NewReader(hoja))
	require.NoError(t, err)
	assert.Empty(t, resp.Bloques)
	assert.Empty(t, resp.Clientes)
}

func TestParsearCSV_Vacio(t *testing.T) {
	svc := NewImportacionService()
	resp, err := svc.ParsearCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, resp.Bloques)
}
