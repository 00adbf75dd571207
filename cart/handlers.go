package cart

import (
	"encoding/json"
	"log"
	"net/http"

	"zaoan/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler exposes one cart model over HTTP. The customer ordering page talks
// to the process-wide customer cart instance.
type Handler struct {
	Model *Model
}

func NewHandler(m *Model) *Handler { return &Handler{Model: m} }

func (h *Handler) state() utils.M {
	return utils.M{
		"items": h.Model.Lines(),
		"total": h.Model.TotalPrice(),
		"count": h.Model.LineCount(),
	}
}

// AddItem adds one unit of an item, with the note built from the tapped
// common annotations plus optional free text.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		ItemID string   `json:"itemId"`
		Notes  []string `json:"notes"`
		Custom string   `json:"customNote"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Println("AddItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if body.ItemID == "" {
		http.Error(w, "itemId is required", http.StatusBadRequest)
		return
	}
	if _, ok := h.Model.lookup(body.ItemID); !ok {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	key := h.Model.Add(body.ItemID, NormalizeNote(body.Notes, body.Custom))

	resp := h.state()
	resp["key"] = key
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// GetCart returns the current lines, total and line count.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.state())
}

// UpdateQty bumps a line by delta. An unknown key is a silent no-op, the
// same as tapping +/- on a line that was just deleted.
func (h *Handler) UpdateQty(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Key   string `json:"key"`
		Delta int    `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Println("UpdateQty decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if body.Key == "" || body.Delta == 0 {
		http.Error(w, "key and a non-zero delta are required", http.StatusBadRequest)
		return
	}

	h.Model.UpdateQty(body.Key, body.Delta)
	utils.RespondWithJSON(w, http.StatusOK, h.state())
}

// RemoveItem deletes a line by its composite key (?key=, URL-encoded by the
// caller since keys contain the note separator).
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}
	h.Model.Remove(key)
	utils.RespondWithJSON(w, http.StatusOK, h.state())
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Model.Clear()
	utils.RespondWithJSON(w, http.StatusOK, h.state())
}
