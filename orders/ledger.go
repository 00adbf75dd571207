package orders

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"zaoan/cart"
	"zaoan/models"
)

var (
	// ErrEmptyOrder rejects submitting or encoding an order with no lines.
	ErrEmptyOrder = errors.New("order has no items")
	// ErrTableNumberRequired rejects a dine-in order without a table.
	ErrTableNumberRequired = errors.New("table number is required for dine-in")
	// ErrOrderNotFound reports an unknown order id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderArchived rejects transitions on an order already in history.
	ErrOrderArchived = errors.New("order is already archived")
)

// statusAfter maps each kanban status to its successor. The flow is strictly
// linear; cancel is the only other way into history.
var statusAfter = map[string]string{
	models.StatusNew:    models.StatusMaking,
	models.StatusMaking: models.StatusDone,
	models.StatusDone:   models.StatusHistory,
}

// Ledger is the append-only collection of submitted orders for the process
// lifetime. Submit is the only way in; nothing is ever deleted.
type Ledger struct {
	mu       sync.Mutex
	orders   []*models.Order
	byID     map[int]*models.Order
	archived []int // order ids, most recently archived first
	nextID   int
}

func NewLedger() *Ledger {
	return &Ledger{
		byID:   make(map[int]*models.Order),
		nextID: 1,
	}
}

// Submit finalizes the given model into a new ledger order and resets the
// model to empty. Validation happens before any state changes: an invalid
// submission leaves both the ledger and the model untouched.
func (l *Ledger) Submit(m *cart.Model, serviceType, tableNumber string) (models.Order, error) {
	if serviceType != models.ServiceDineIn && serviceType != models.ServiceTakeOut {
		return models.Order{}, fmt.Errorf("unknown service type %q", serviceType)
	}
	if m.LineCount() == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	var table *string
	if serviceType == models.ServiceDineIn {
		if tableNumber == "" {
			return models.Order{}, ErrTableNumberRequired
		}
		table = &tableNumber
	}

	total := m.TotalPrice()
	order := &models.Order{
		Lines:       m.Snapshot(),
		Total:       total,
		TotalText:   fmt.Sprintf("$%d", total),
		ServiceType: serviceType,
		TableNumber: table,
		Status:      models.StatusNew,
		Time:        time.Now().Format("15:04"),
	}

	l.mu.Lock()
	order.ID = l.nextID
	l.nextID++
	l.orders = append(l.orders, order)
	l.byID[order.ID] = order
	l.mu.Unlock()

	m.Clear()
	return *order, nil
}

// Get returns a copy of the order with the given id.
func (l *Ledger) Get(id int) (models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	order, ok := l.byID[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return *order, nil
}

// Advance moves an order to the next kanban status. Orders already in
// history cannot move again.
func (l *Ledger) Advance(id int) (models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	order, ok := l.byID[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	next, ok := statusAfter[order.Status]
	if !ok {
		return models.Order{}, ErrOrderArchived
	}
	order.Status = next
	if next == models.StatusHistory {
		l.archive(id)
	}
	return *order, nil
}

// Cancel voids an order from any active status, moving it straight to
// history with the cancelled flag set. An archived order cannot be voided.
func (l *Ledger) Cancel(id int) (models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	order, ok := l.byID[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	if order.Status == models.StatusHistory {
		return models.Order{}, ErrOrderArchived
	}
	order.Status = models.StatusHistory
	order.Cancelled = true
	l.archive(id)
	return *order, nil
}

// archive prepends, so the history column reads newest archival first.
// Callers hold the lock.
func (l *Ledger) archive(id int) {
	l.archived = append([]int{id}, l.archived...)
}

// GroupByStatus buckets orders per kanban column. Active columns keep
// submission order (oldest first); history keeps archive order (newest
// first). Cancelled orders count as history like everything else there.
func (l *Ledger) GroupByStatus() map[string][]models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	groups := map[string][]models.Order{
		models.StatusNew:     {},
		models.StatusMaking:  {},
		models.StatusDone:    {},
		models.StatusHistory: {},
	}
	for _, order := range l.orders {
		if order.Status == models.StatusHistory {
			continue
		}
		groups[order.Status] = append(groups[order.Status], *order)
	}
	for _, id := range l.archived {
		groups[models.StatusHistory] = append(groups[models.StatusHistory], *l.byID[id])
	}
	return groups
}

// Counts reports how many orders sit in each status.
func (l *Ledger) Counts() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := map[string]int{
		models.StatusNew:     0,
		models.StatusMaking:  0,
		models.StatusDone:    0,
		models.StatusHistory: 0,
	}
	for _, order := range l.orders {
		counts[order.Status]++
	}
	return counts
}
