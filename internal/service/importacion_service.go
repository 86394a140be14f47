package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/agenda"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/dto"

	"github.com/rs/zerolog/log"
)

// ImportacionService parses exported spreadsheet grids into draft records.
// It is best-effort: rows it cannot place are skipped with a log line, and
// near-duplicate names are collapsed but reported as ambiguedades so an
// operator can review them before anything is persisted.
type ImportacionService interface {
	ParsearCSV(r io.Reader) (*dto.ImportacionResponse, error)
}

type importacionService struct{}

func NewImportacionService() ImportacionService { return &importacionService{} }

// Column headers vary between sheets ("clienta", "Clienta ", "nombre clienta"),
// so each field keeps a list of substrings to match against.
var columnasImportacion = map[string][]string{
	"cliente":      {"clienta", "cliente"},
	"telefono":     {"telefono", "teléfono", "celular"},
	"destino":      {"destino", "lugar"},
	"encomendista": {"encomendista", "encomienda", "courier"},
	"dia":          {"dia", "día"},
	"hora":         {"hora"},
	"estado":       {"estado"},
	"total":        {"total", "monto"},
}

func (s *importacionService) ParsearCSV(r io.Reader) (*dto.ImportacionResponse, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // grids are ragged
	reader.TrimLeadingSpace = true

	filas, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv ilegible: %w", err)
	}

	resp := &dto.ImportacionResponse{
		Bloques:       []dto.BloqueImportacion{},
		Clientes:      []string{},
		Encomendistas: []string{},
		Ambiguedades:  []string{},
	}

	var bloque *dto.BloqueImportacion
	var columnas map[string]int

	cerrarBloque := func() {
		if bloque != nil && len(bloque.Pedidos) > 0 {
			resp.Bloques = append(resp.Bloques, *bloque)
		}
		bloque = nil
		columnas = nil
	}

	for i, fila := range filas {
		numFila := i + 1

		if filaVacia(fila) {
			cerrarBloque()
			continue
		}

		if fecha, ok := detectarFecha(fila); ok {
			cerrarBloque()
			bloque = &dto.BloqueImportacion{Fecha: fecha}
			continue
		}

		if bloque == nil {
			continue // rows before the first date header carry no batch
		}

		if columnas == nil {
			if cols, ok := mapearColumnas(fila); ok {
				columnas = cols
				continue
			}
			log.Warn().Int("fila", numFila).Msg("fila de encabezado no reconocida, se omite el bloque")
			bloque = nil
			continue
		}

		borrador := extraerBorrador(fila, columnas)
		if borrador.ClienteNombre == "" {
			log.Warn().Int("fila", numFila).Msg("fila sin clienta, se omite")
			continue
		}
		borrador.FechaBloque = bloque.Fecha
		borrador.Fila = numFila
		bloque.Pedidos = append(bloque.Pedidos, borrador)
		bloque.Filas++
	}
	cerrarBloque()

	var ambiguos []string
	for _, b := range resp.Bloques {
		for _, p := range b.Pedidos {
			resp.Clientes, ambiguos = agruparNombre(resp.Clientes, p.ClienteNombre)
			resp.Ambiguedades = append(resp.Ambiguedades, ambiguos...)
			if p.EncomendistaNombre != "" {
				resp.Encomendistas, ambiguos = agruparNombre(resp.Encomendistas, p.EncomendistaNombre)
				resp.Ambiguedades = append(resp.Ambiguedades, ambiguos...)
			}
		}
	}

	return resp, nil
}

func filaVacia(fila []string) bool {
	for _, celda := range fila {
		if strings.TrimSpace(celda) != "" {
			return false
		}
	}
	return true
}

// detectarFecha reports whether any cell of the row holds a parseable
// YYYY-MM-DD date; such rows open a new delivery batch.
func detectarFecha(fila []string) (string, bool) {
	for _, celda := range fila {
		valor := strings.TrimSpace(celda)
		if len(valor) != len(agenda.FormatoFecha) {
			continue
		}
		if _, err := agenda.ParseFechaLocal(valor); err == nil {
			return valor, true
		}
	}
	return "", false
}

// mapearColumnas matches header cells to known fields by substring. A row
// qualifies as a header when at least the clienta column is found.
func mapearColumnas(fila []string) (map[string]int, bool) {
	cols := make(map[string]int)
	for idx, celda := range fila {
		valor := strings.ToLower(strings.TrimSpace(celda))
		if valor == "" {
			continue
		}
		for campo, patrones := range columnasImportacion {
			if _, visto := cols[campo]; visto {
				continue
			}
			for _, patron := range patrones {
				if strings.Contains(valor, patron) {
					cols[campo] = idx
					break
				}
			}
		}
	}
	_, ok := cols["cliente"]
	return cols, ok
}

func celdaEn(fila []string, cols map[string]int, campo string) string {
	idx, ok := cols[campo]
	if !ok || idx >= len(fila) {
		return ""
	}
	return strings.TrimSpace(fila[idx])
}

func extraerBorrador(fila []string, cols map[string]int) dto.PedidoBorrador {
	return dto.PedidoBorrador{
		ClienteNombre:      celdaEn(fila, cols, "cliente"),
		Telefono:           celdaEn(fila, cols, "telefono"),
		Destino:            celdaEn(fila, cols, "destino"),
		EncomendistaNombre: celdaEn(fila, cols, "encomendista"),
		DiaEntrega:         celdaEn(fila, cols, "dia"),
		Hora:               celdaEn(fila, cols, "hora"),
		Estado:             strings.ToLower(celdaEn(fila, cols, "estado")),
		Total:              celdaEn(fila, cols, "total"),
	}
}

// agruparNombre folds nombre into conocidos using substring containment:
// "Maria" and "Maria Lopez" are treated as the same person, keeping the
// longer form. Every collapse is reported so nothing merges silently.
func agruparNombre(conocidos []string, nombre string) ([]string, []string) {
	nombre = strings.Join(strings.Fields(nombre), " ")
	if nombre == "" {
		return conocidos, nil
	}
	bajo := strings.ToLower(nombre)

	var ambiguedades []string
	for i, existente := range conocidos {
		existenteBajo := strings.ToLower(existente)
		if existenteBajo == bajo {
			return conocidos, nil
		}
		if strings.Contains(existenteBajo, bajo) {
			ambiguedades = append(ambiguedades,
				fmt.Sprintf("%q agrupado con %q", nombre, existente))
			return conocidos, ambiguedades
		}
		if strings.Contains(bajo, existenteBajo) {
			ambiguedades = append(ambiguedades,
				fmt.Sprintf("%q agrupado con %q", existente, nombre))
			conocidos[i] = nombre
			return conocidos, ambiguedades
		}
	}
	return append(conocidos, nombre), nil
}
