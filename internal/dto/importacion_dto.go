package dto

// Spreadsheet import: drafts only — nothing is persisted until an operator
// confirms them. Ambiguities are reported, never silently merged.

type PedidoBorrador struct {
	ClienteNombre      string `json:"cliente_nombre"`
	Telefono           string `json:"telefono,omitempty"`
	EncomendistaNombre string `json:"encomendista_nombre,omitempty"`
	Destino            string `json:"destino,omitempty"`
	DiaEntrega         string `json:"dia_entrega,omitempty"`
	Hora               string `json:"hora,omitempty"`
	Estado             string `json:"estado,omitempty"`
	Total              string `json:"total,omitempty"`
	FechaBloque        string `json:"fecha_bloque"`
	Fila               int    `json:"fila"`
}

type BloqueImportacion struct {
	Fecha   string           `json:"fecha"`
	Filas   int              `json:"filas"`
	Pedidos []PedidoBorrador `json:"pedidos"`
}

type ImportacionResponse struct {
	Bloques       []BloqueImportacion `json:"bloques"`
	Clientes      []string            `json:"clientes_detectados"`
	Encomendistas []string            `json:"encomendistas_detectados"`
	// Ambiguedades lists near-duplicate names that were collapsed by the
	// substring heuristic, for operator review.
	Ambiguedades []string `json:"ambiguedades"`
}
