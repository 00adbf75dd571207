// Package checkout carries an order between the customer screen and the POS
// through a QR code. The wire format is JSON:
//
//	{"t": 1712345678901, "type": "dineIn", "tableNumber": "5",
//	 "d": [{"id": "A01", "q": 2, "n": "加辣、少冰"}]}
//
// "n" is omitted entirely for lines without a note, and legacy payloads may
// lack "type" and "tableNumber"; both sides treat an absent field and an
// empty string the same way.
package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"zaoan/cart"
	"zaoan/models"
	"zaoan/orders"
)

// ErrBadPayload reports scanned text that does not parse as an order
// payload: not JSON, or missing the "d" line array.
var ErrBadPayload = errors.New("malformed order payload")

// Line is one encoded order line.
type Line struct {
	ID string `json:"id"`
	Q  int    `json:"q"`
	N  string `json:"n,omitempty"`
}

// Payload is the full QR payload. TableNumber is null for take-out, matching
// what the customer page has always emitted.
type Payload struct {
	T           int64   `json:"t"`
	Type        string  `json:"type,omitempty"`
	TableNumber *string `json:"tableNumber"`
	D           []Line  `json:"d"`
}

// Encode snapshots the model into a payload. Validation mirrors order
// submission: a payload is only produced for a cart the shop could accept.
func Encode(m *cart.Model, serviceType, tableNumber string) (Payload, error) {
	if serviceType != models.ServiceDineIn && serviceType != models.ServiceTakeOut {
		return Payload{}, fmt.Errorf("unknown service type %q", serviceType)
	}
	if m.LineCount() == 0 {
		return Payload{}, orders.ErrEmptyOrder
	}
	if serviceType == models.ServiceDineIn && tableNumber == "" {
		return Payload{}, orders.ErrTableNumberRequired
	}

	var table *string
	if serviceType == models.ServiceDineIn {
		table = &tableNumber
	}

	p := Payload{
		T:           time.Now().UnixMilli(),
		Type:        serviceType,
		TableNumber: table,
	}
	for _, line := range m.Lines() {
		if line.Quantity <= 0 {
			continue
		}
		p.D = append(p.D, Line{ID: line.ItemID, Q: line.Quantity, N: line.Note})
	}
	return p, nil
}

// EncodeOrder rebuilds a payload from a frozen ledger order, for reprinting
// its QR on a receipt.
func EncodeOrder(order models.Order) Payload {
	var table *string
	if order.TableNumber != nil {
		t := *order.TableNumber
		table = &t
	}
	p := Payload{
		T:           time.Now().UnixMilli(),
		Type:        order.ServiceType,
		TableNumber: table,
	}
	for _, line := range order.Lines {
		p.D = append(p.D, Line{ID: line.ItemID, Q: line.Quantity, N: line.Note})
	}
	return p
}

// Decode parses raw scanned text back into line operations. Only structural
// problems fail the decode; lines referencing unknown items are the
// caller's problem to skip, the same way totals skip them.
func Decode(text string) (Payload, error) {
	var raw struct {
		T           int64           `json:"t"`
		Type        string          `json:"type"`
		TableNumber *string         `json:"tableNumber"`
		D           json.RawMessage `json:"d"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return Payload{}, ErrBadPayload
	}
	if raw.D == nil || string(raw.D) == "null" {
		return Payload{}, ErrBadPayload
	}
	var lines []Line
	if err := json.Unmarshal(raw.D, &lines); err != nil {
		return Payload{}, ErrBadPayload
	}
	return Payload{T: raw.T, Type: raw.Type, TableNumber: raw.TableNumber, D: lines}, nil
}
