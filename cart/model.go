package cart

import (
	"sync"

	"zaoan/models"
)

// ZeroQuantityPolicy decides what a model does when a decrement would take a
// line to zero or below. The customer cart clamps at one (removal is an
// explicit delete button); the POS staging order drops the line so the
// cashier can back items out with the minus key.
type ZeroQuantityPolicy int

const (
	ClampToOne ZeroQuantityPolicy = iota
	RemoveLine
)

// LookupFunc resolves an item id against the catalog.
type LookupFunc func(id string) (models.CatalogItem, bool)

// Model holds the lines of one in-progress order, keyed by composite key.
// Two instances exist in the process: the customer cart and the POS staging
// order. They never share lines.
type Model struct {
	mu     sync.Mutex
	lines  map[string]*models.CartLine
	keys   []string // insertion order, for stable display
	policy ZeroQuantityPolicy
	lookup LookupFunc
}

// New returns an empty model with the given zero-quantity policy.
func New(policy ZeroQuantityPolicy, lookup LookupFunc) *Model {
	return &Model{
		lines:  make(map[string]*models.CartLine),
		policy: policy,
		lookup: lookup,
	}
}

// Add puts one unit of an item with the given normalized note into the
// model, merging with an existing line of the same key.
func (m *Model) Add(itemID, note string) string {
	return m.AddQty(itemID, 1, note)
}

// AddQty merges qty units into the line for (itemID, note) and returns the
// composite key. A scan replay passes the scanned quantity here; the manual
// entry path only ever passes 1. Under the RemoveLine policy a non-positive
// resulting quantity deletes the line.
func (m *Model) AddQty(itemID string, qty int, note string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := BuildKey(itemID, note)
	line, ok := m.lines[key]
	if !ok {
		line = &models.CartLine{ItemID: itemID, Note: note}
		m.lines[key] = line
		m.keys = append(m.keys, key)
	}
	line.Quantity += qty
	if line.Quantity <= 0 && m.policy == RemoveLine {
		m.drop(key)
	}
	return key
}

// UpdateQty adjusts an existing line by delta. Unknown keys are a no-op.
func (m *Model) UpdateQty(key string, delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	line, ok := m.lines[key]
	if !ok {
		return
	}
	line.Quantity += delta
	if line.Quantity < 1 {
		switch m.policy {
		case ClampToOne:
			line.Quantity = 1
		case RemoveLine:
			m.drop(key)
		}
	}
}

// Remove deletes a line outright. Unknown keys are a no-op.
func (m *Model) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drop(key)
}

// Clear empties the model.
func (m *Model) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = make(map[string]*models.CartLine)
	m.keys = nil
}

func (m *Model) drop(key string) {
	if _, ok := m.lines[key]; !ok {
		return
	}
	delete(m.lines, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// LineView is a display-ready cart line with its key and resolved price.
type LineView struct {
	Key       string `json:"key"`
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"qty"`
	Note      string `json:"note,omitempty"`
	LineTotal int    `json:"lineTotal"`
}

// Lines returns the current lines in insertion order, with catalog lookups
// applied. Lines whose item no longer resolves are reported with zero price
// rather than hidden, so the cashier can still see and delete them.
func (m *Model) Lines() []LineView {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]LineView, 0, len(m.keys))
	for _, key := range m.keys {
		line := m.lines[key]
		v := LineView{
			Key:      key,
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Note:     line.Note,
		}
		if item, ok := m.lookup(line.ItemID); ok {
			v.Name = item.Name
			v.Price = item.Price
			v.LineTotal = item.Price * line.Quantity
		}
		out = append(out, v)
	}
	return out
}

// TotalPrice sums price × quantity over all lines. Lines whose item id does
// not resolve in the catalog contribute nothing, as if already removed from
// the menu.
func (m *Model) TotalPrice() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for _, line := range m.lines {
		if item, ok := m.lookup(line.ItemID); ok {
			total += item.Price * line.Quantity
		}
	}
	return total
}

// LineCount is the number of distinct lines with a positive quantity, not
// the summed unit count.
func (m *Model) LineCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, line := range m.lines {
		if line.Quantity > 0 {
			n++
		}
	}
	return n
}

// Snapshot returns a frozen copy of the current lines keyed by composite
// key, in no particular order. Used at submission time.
func (m *Model) Snapshot() map[string]models.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]models.CartLine, len(m.lines))
	for key, line := range m.lines {
		out[key] = *line
	}
	return out
}
