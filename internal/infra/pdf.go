package infra

// pdf.go — sticker sheet generation using go-pdf/fpdf.
// Each A4 page holds 8 stickers (2 columns x 4 rows) with the order code,
// client name, destination and delivery window — what the almacen prints and
// pastes on the packages of an urgent batch.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"

	"github.com/go-pdf/fpdf"
)

const (
	etiquetasPorFila    = 2
	etiquetasPorColumna = 4
	etiquetasPorPagina  = etiquetasPorFila * etiquetasPorColumna
)

// GenerateEtiquetasPDF writes one sticker sheet for the given orders and
// returns the absolute path to the file. pedidos arrive already paginated by
// the caller in groups of 8; extra entries flow onto additional pages.
func GenerateEtiquetasPDF(pedidos []model.Pedido, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("etiquetas_%s.pdf", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)

	pageW, pageH := pdf.GetPageSize()
	cellW := (pageW - 20) / etiquetasPorFila
	cellH := (pageH - 20) / etiquetasPorColumna

	for i, p := range pedidos {
		pos := i % etiquetasPorPagina
		if pos == 0 {
			pdf.AddPage()
		}
		x := 10 + float64(pos%etiquetasPorFila)*cellW
		y := 10 + float64(pos/etiquetasPorFila)*cellH
		dibujarEtiqueta(pdf, &p, x, y, cellW, cellH)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

func dibujarEtiqueta(pdf *fpdf.Fpdf, p *model.Pedido, x, y, w, h float64) {
	pdf.Rect(x+2, y+2, w-4, h-4, "D")

	pdf.SetXY(x+6, y+8)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(w-12, 8, p.CodigoPedido, "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	cliente := ""
	if p.Cliente != nil {
		cliente = p.Cliente.Nombre
	}
	pdf.CellFormat(w-12, 6, cliente, "", 2, "L", false, 0, "")

	destino := ""
	if p.Modo == model.ModoPersonalizado && p.DireccionPersonalizada != nil {
		destino = *p.DireccionPersonalizada
	} else if p.Destino != nil {
		destino = p.Destino.Nombre
	}
	if p.NombreEncomendista() != "" {
		destino = p.NombreEncomendista() + " - " + destino
	}
	if len(destino) > 40 {
		destino = destino[:39] + "…"
	}
	pdf.CellFormat(w-12, 6, destino, "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	entrega := p.FechaEntregaProgramada
	if p.HoraInicio != "" {
		entrega = fmt.Sprintf("%s  %s-%s", entrega, p.HoraInicio, p.HoraFin)
	}
	pdf.CellFormat(w-12, 6, entrega, "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(w-12, 5, fmt.Sprintf("%d prendas  S/ %s", len(p.Productos), p.Total.StringFixed(2)), "", 2, "L", false, 0, "")
}
