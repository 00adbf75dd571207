// Package reservations handles online pickup pre-orders placed from the
// customer menu: the customer leaves a name, the last three digits of their
// phone, and a pickup time, and collects at the counter.
package reservations

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"zaoan/cart"
	"zaoan/models"
	"zaoan/utils"

	"github.com/julienschmidt/httprouter"
)

// Store keeps the day's reservations in memory, oldest first.
type Store struct {
	mu   sync.Mutex
	list []models.Reservation
}

func NewStore() *Store { return &Store{} }

func (s *Store) add(r models.Reservation) {
	s.mu.Lock()
	s.list = append(s.list, r)
	s.mu.Unlock()
}

// All returns the reservations in placement order.
func (s *Store) All() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Reservation, len(s.list))
	copy(out, s.list)
	return out
}

// Handler exposes reservation placement and listing.
type Handler struct {
	Store *Store
	Cart  *cart.Model
}

func NewHandler(store *Store, customerCart *cart.Model) *Handler {
	return &Handler{Store: store, Cart: customerCart}
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Create freezes the customer cart into a reservation and clears the cart.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		PickupTime string `json:"pickupTime"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Println("Create reservation decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if body.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if len(body.Phone) != 3 || !digitsOnly(body.Phone) {
		http.Error(w, "Phone must be the last 3 digits", http.StatusBadRequest)
		return
	}
	if body.PickupTime == "" {
		http.Error(w, "Pickup time is required", http.StatusBadRequest)
		return
	}
	if h.Cart.LineCount() == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	total := h.Cart.TotalPrice()
	res := models.Reservation{
		Number:     "ORD" + strconv.FormatInt(time.Now().UnixNano()%1e6, 10),
		Name:       body.Name,
		Phone:      body.Phone,
		PickupTime: body.PickupTime,
		Lines:      h.Cart.Snapshot(),
		Total:      total,
		TotalText:  fmt.Sprintf("$%d", total),
		CreatedAt:  time.Now().UnixMilli(),
	}
	h.Store.add(res)
	h.Cart.Clear()

	utils.RespondWithJSON(w, http.StatusCreated, res)
}

// List returns the day's reservations for the counter screen.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.Store.All())
}
