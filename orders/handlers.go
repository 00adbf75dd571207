package orders

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"zaoan/board"
	"zaoan/cart"
	"zaoan/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler exposes order submission and the kanban board. Staging is the
// POS-side in-progress order; its line CRUD goes through a cart.Handler on
// the same routes prefix.
type Handler struct {
	Ledger  *Ledger
	Staging *cart.Model
	Hub     *board.Hub
}

func NewHandler(l *Ledger, staging *cart.Model, hub *board.Hub) *Handler {
	return &Handler{Ledger: l, Staging: staging, Hub: hub}
}

func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrOrderArchived):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	}
}

// Submit finalizes the staging order into the ledger. The staging order is
// reset only on success.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Type        string `json:"type"`
		TableNumber string `json:"tableNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Println("Submit decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	order, err := h.Ledger.Submit(h.Staging, body.Type, body.TableNumber)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	h.Hub.Publish(board.Event{Action: "order_created", Order: &order, Counts: h.Ledger.Counts()})
	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// Board returns every kanban column plus per-status counts.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"columns": h.Ledger.GroupByStatus(),
		"counts":  h.Ledger.Counts(),
	})
}

func orderID(ps httprouter.Params) (int, error) {
	return strconv.Atoi(ps.ByName("orderid"))
}

// Advance moves an order one step along new → making → done → history.
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := orderID(ps)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.Ledger.Advance(id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	h.Hub.Publish(board.Event{Action: "status_changed", Order: &order, Counts: h.Ledger.Counts()})
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// Cancel voids an order and archives it.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := orderID(ps)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.Ledger.Cancel(id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	h.Hub.Publish(board.Event{Action: "order_cancelled", Order: &order, Counts: h.Ledger.Counts()})
	utils.RespondWithJSON(w, http.StatusOK, order)
}
