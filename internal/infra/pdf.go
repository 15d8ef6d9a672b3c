package infra

// pdf.go — order receipt generation using go-pdf/fpdf.
// Receipts are rendered on demand and streamed to the client; nothing is
// persisted. Layout: header, order number/date/branch, item table with the
// price captured at checkout, bold total.

import (
	"bytes"
	"fmt"

	"jumbox/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerarComprobantePDF renders a PDF receipt for a Pedido and returns the
// raw document bytes. Detalles must be preloaded with their Producto.
func GenerarComprobantePDF(pedido *model.Pedido) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Core fonts are cp1252; product and branch names carry accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Jumbox", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Comprobante de Pedido", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Order info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Pedido %s", pedido.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4, pedido.Fecha.Format("02/01/2006"), "", 1, "L", false, 0, "")
	if pedido.Sucursal != nil {
		pdf.CellFormat(contentW, 4, tr("Sucursal: "+pedido.Sucursal.Nombre), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 4, "Estado: "+pedido.Estado, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Item table ────────────────────────────────────────────────────────────
	col1 := contentW * 0.50 // product name
	col2 := contentW * 0.15 // qty
	col3 := contentW * 0.35 // subtotal

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	total := decimal.Zero
	for _, d := range pedido.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		// Truncate on runes; byte slicing could split an accented character.
		if runas := []rune(nombre); len(runas) > 30 {
			nombre = string(runas[:29]) + "…"
		}
		subtotal := d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		total = total.Add(subtotal)

		pdf.CellFormat(col1, 5, tr(nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", d.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 4, tr("¡Gracias por su compra!"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}
