package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"zaoan/cart"
	"zaoan/menu"
	"zaoan/utils"

	"github.com/julienschmidt/httprouter"
)

// ScanHandler ingests raw decoded QR text into the POS staging order. The
// camera and QR detection live in the browser; this endpoint only gets the
// decoded string.
type ScanHandler struct {
	Staging *cart.Model
}

func NewScanHandler(staging *cart.Model) *ScanHandler {
	return &ScanHandler{Staging: staging}
}

// Ingest replays the scanned payload's lines against the staging order with
// their scanned quantities. Lines whose item id no longer resolves are
// skipped, not fatal; the cashier gets a count of both.
func (h *ScanHandler) Ingest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	p, err := Decode(body.Text)
	if err != nil {
		if errors.Is(err, ErrBadPayload) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Scan failed")
		return
	}

	added, skipped := 0, 0
	for _, line := range p.D {
		if _, ok := menu.Lookup(line.ID); !ok {
			skipped++
			continue
		}
		h.Staging.AddQty(line.ID, line.Q, line.N)
		added++
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"type":        p.Type,
		"tableNumber": p.TableNumber,
		"added":       added,
		"skipped":     skipped,
		"items":       h.Staging.Lines(),
		"total":       h.Staging.TotalPrice(),
	})
}
