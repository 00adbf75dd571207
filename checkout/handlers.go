package checkout

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"zaoan/cart"
	"zaoan/models"
	"zaoan/orders"
	"zaoan/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// Handler turns the customer cart into a scannable QR code.
type Handler struct {
	Cart *cart.Model
}

func NewHandler(m *cart.Model) *Handler { return &Handler{Cart: m} }

func (h *Handler) encodeFromRequest(serviceType, tableNumber string) (Payload, []byte, error) {
	p, err := Encode(h.Cart, serviceType, tableNumber)
	if err != nil {
		return Payload{}, nil, err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return Payload{}, nil, err
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, qrSize)
	if err != nil {
		return Payload{}, nil, err
	}
	return p, png, nil
}

func writeEncodeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orders.ErrEmptyOrder), errors.Is(err, orders.ErrTableNumberRequired):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		log.Println("checkout encode error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
	}
}

// GenerateQR builds the payload for the current cart and returns it together
// with a rendered PNG (base64) for the checkout dialog.
func (h *Handler) GenerateQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Type        string `json:"type"`
		TableNumber string `json:"tableNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if body.Type == "" {
		body.Type = models.ServiceDineIn
	}

	p, png, err := h.encodeFromRequest(body.Type, body.TableNumber)
	if err != nil {
		writeEncodeError(w, err)
		return
	}

	info := "外帶"
	if p.Type == models.ServiceDineIn {
		info = fmt.Sprintf("內用 - 桌號: %s", *p.TableNumber)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"payload": p,
		"qr":      base64.StdEncoding.EncodeToString(png),
		"info":    info,
		"total":   fmt.Sprintf("$%d", h.Cart.TotalPrice()),
	})
}

// QRImage serves the same code as a raw PNG, for an <img> tag
// (?type=dineIn&tableNumber=5).
func (h *Handler) QRImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	serviceType := r.URL.Query().Get("type")
	if serviceType == "" {
		serviceType = models.ServiceDineIn
	}

	_, png, err := h.encodeFromRequest(serviceType, r.URL.Query().Get("tableNumber"))
	if err != nil {
		writeEncodeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
