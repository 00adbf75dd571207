// Package receipts renders a printable PDF slip for a ledger order, with the
// order re-encoded into a QR code so a second terminal can re-ingest it.
package receipts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"zaoan/checkout"
	"zaoan/models"
	"zaoan/orders"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Handler serves order receipts.
type Handler struct {
	Ledger *orders.Ledger
}

func NewHandler(l *orders.Ledger) *Handler { return &Handler{Ledger: l} }

// PrintReceipt renders the order as a PDF. Item lines are printed by catalog
// code; the embedded QR carries the full payload including notes, since the
// built-in PDF fonts cannot render them.
func (h *Handler) PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("orderid"))
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.Ledger.Get(id)
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load order", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(checkout.EncodeOrder(order))
	if err != nil {
		http.Error(w, "Failed to encode order", http.StatusInternalServerError)
		return
	}
	qrPNG, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order: #%d", order.ID))
	pdf.Ln(8)

	service := "Take-out"
	if order.ServiceType == models.ServiceDineIn {
		service = "Dine-in"
		if order.TableNumber != nil {
			service = fmt.Sprintf("Dine-in  Table %s", *order.TableNumber)
		}
	}
	pdf.Cell(0, 10, service)
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Time: %s", order.Time))
	pdf.Ln(12)

	pdf.SetFont("Courier", "", 11)
	for _, line := range order.Lines {
		pdf.Cell(0, 7, fmt.Sprintf("%-6s x%-3d", line.ItemID, line.Quantity))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %s", order.TotalText))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", order.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
