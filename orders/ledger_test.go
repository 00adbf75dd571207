package orders

import (
	"errors"
	"testing"

	"zaoan/cart"
	"zaoan/models"
)

var testCatalog = map[string]models.CatalogItem{
	"A01": {ID: "A01", Name: "煎蛋三明治", Price: 25, Category: "sandwich"},
	"D02": {ID: "D02", Name: "奶茶", Price: 25, Category: "drink"},
}

func testLookup(id string) (models.CatalogItem, bool) {
	it, ok := testCatalog[id]
	return it, ok
}

func stagedCart(t *testing.T) *cart.Model {
	t.Helper()
	m := cart.New(cart.RemoveLine, testLookup)
	m.AddQty("A01", 2, "加辣")
	m.Add("D02", "")
	return m
}

func TestSubmitEmptyCart(t *testing.T) {
	l := NewLedger()
	m := cart.New(cart.RemoveLine, testLookup)
	if _, err := l.Submit(m, models.ServiceTakeOut, ""); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	if got := l.Counts()[models.StatusNew]; got != 0 {
		t.Fatalf("failed submit must not grow the ledger, got %d new orders", got)
	}
}

func TestSubmitDineInRequiresTable(t *testing.T) {
	l := NewLedger()
	m := stagedCart(t)

	if _, err := l.Submit(m, models.ServiceDineIn, ""); !errors.Is(err, ErrTableNumberRequired) {
		t.Fatalf("expected ErrTableNumberRequired, got %v", err)
	}
	if m.LineCount() == 0 {
		t.Fatal("failed submit must leave the staging order intact")
	}

	order, err := l.Submit(m, models.ServiceDineIn, "5")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if order.TableNumber == nil || *order.TableNumber != "5" {
		t.Fatalf("expected table 5, got %v", order.TableNumber)
	}
}

func TestSubmitTakeOutHasNoTable(t *testing.T) {
	l := NewLedger()
	order, err := l.Submit(stagedCart(t), models.ServiceTakeOut, "3")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if order.TableNumber != nil {
		t.Fatalf("take-out order must not carry a table, got %v", *order.TableNumber)
	}
}

func TestSubmitRejectsUnknownServiceType(t *testing.T) {
	l := NewLedger()
	if _, err := l.Submit(stagedCart(t), "delivery", ""); err == nil {
		t.Fatal("expected error for unknown service type")
	}
}

func TestSubmitFreezesAndResets(t *testing.T) {
	l := NewLedger()
	m := stagedCart(t)
	total := m.TotalPrice()

	order, err := l.Submit(m, models.ServiceTakeOut, "")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if m.LineCount() != 0 {
		t.Fatal("staging order should be empty after submit")
	}
	if order.Total != total {
		t.Fatalf("expected total %d, got %d", total, order.Total)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("expected 2 frozen lines, got %d", len(order.Lines))
	}
	if order.Status != models.StatusNew {
		t.Fatalf("fresh order must start in %q, got %q", models.StatusNew, order.Status)
	}

	// later edits to the model must not touch the frozen order
	m.Add("A01", "")
	got, _ := l.Get(order.ID)
	if len(got.Lines) != 2 {
		t.Fatal("ledger order changed after the staging model was reused")
	}
}

func TestOrderIDsMonotonic(t *testing.T) {
	l := NewLedger()
	for want := 1; want <= 3; want++ {
		order, err := l.Submit(stagedCart(t), models.ServiceTakeOut, "")
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if order.ID != want {
			t.Fatalf("expected id %d, got %d", want, order.ID)
		}
	}
}

func TestAdvanceWalksTheBoard(t *testing.T) {
	l := NewLedger()
	order, _ := l.Submit(stagedCart(t), models.ServiceTakeOut, "")

	want := []string{models.StatusMaking, models.StatusDone, models.StatusHistory}
	for _, status := range want {
		got, err := l.Advance(order.ID)
		if err != nil {
			t.Fatalf("advance to %s failed: %v", status, err)
		}
		if got.Status != status {
			t.Fatalf("expected status %q, got %q", status, got.Status)
		}
	}

	if _, err := l.Advance(order.ID); !errors.Is(err, ErrOrderArchived) {
		t.Fatalf("advancing an archived order must fail, got %v", err)
	}
}

func TestAdvanceUnknownOrder(t *testing.T) {
	l := NewLedger()
	if _, err := l.Advance(42); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestCancelFromMaking(t *testing.T) {
	l := NewLedger()
	order, _ := l.Submit(stagedCart(t), models.ServiceTakeOut, "")
	l.Advance(order.ID) // making

	got, err := l.Cancel(order.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if got.Status != models.StatusHistory || !got.Cancelled {
		t.Fatalf("cancelled order must be archived and flagged, got %+v", got)
	}

	if _, err := l.Cancel(order.ID); !errors.Is(err, ErrOrderArchived) {
		t.Fatalf("second cancel must fail, got %v", err)
	}
}

func TestCancelUnknownOrder(t *testing.T) {
	l := NewLedger()
	if _, err := l.Cancel(7); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestGroupByStatusOrdering(t *testing.T) {
	l := NewLedger()
	first, _ := l.Submit(stagedCart(t), models.ServiceTakeOut, "")
	second, _ := l.Submit(stagedCart(t), models.ServiceTakeOut, "")
	third, _ := l.Submit(stagedCart(t), models.ServiceTakeOut, "")

	// archive first then second: second must show up before first
	for i := 0; i < 3; i++ {
		l.Advance(first.ID)
	}
	l.Cancel(second.ID)

	groups := l.GroupByStatus()

	history := groups[models.StatusHistory]
	if len(history) != 2 {
		t.Fatalf("expected 2 archived orders, got %d", len(history))
	}
	if history[0].ID != second.ID || history[1].ID != first.ID {
		t.Fatalf("history must be newest archival first, got %d then %d", history[0].ID, history[1].ID)
	}

	news := groups[models.StatusNew]
	if len(news) != 1 || news[0].ID != third.ID {
		t.Fatalf("expected order %d alone in new, got %+v", third.ID, news)
	}
}

func TestCountsIncludeCancelled(t *testing.T) {
	l := NewLedger()
	a, _ := l.Submit(stagedCart(t), models.ServiceTakeOut, "")
	l.Submit(stagedCart(t), models.ServiceTakeOut, "")
	l.Cancel(a.ID)

	counts := l.Counts()
	if counts[models.StatusNew] != 1 {
		t.Fatalf("expected 1 new order, got %d", counts[models.StatusNew])
	}
	if counts[models.StatusHistory] != 1 {
		t.Fatalf("cancelled order must count as history, got %d", counts[models.StatusHistory])
	}
}
