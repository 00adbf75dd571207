package checkout

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zaoan/cart"
	"zaoan/menu"
)

func postScan(t *testing.T, h *ScanHandler, text string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"text": text})
	req := httptest.NewRequest(http.MethodPost, "/api/pos/scan", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	h.Ingest(w, req, nil)
	return w
}

func TestScanAppliesLines(t *testing.T) {
	staging := cart.New(cart.RemoveLine, menu.Lookup)
	h := NewScanHandler(staging)

	w := postScan(t, h, `{"t":1,"type":"dineIn","tableNumber":"5","d":[{"id":"A01","q":2,"n":"加辣"},{"id":"D01","q":1}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Type        string  `json:"type"`
		TableNumber *string `json:"tableNumber"`
		Added       int     `json:"added"`
		Skipped     int     `json:"skipped"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Type != "dineIn" || resp.TableNumber == nil || *resp.TableNumber != "5" {
		t.Fatalf("service info not extracted: %+v", resp)
	}
	if resp.Added != 2 || resp.Skipped != 0 {
		t.Fatalf("expected 2 applied lines, got %+v", resp)
	}
	if staging.LineCount() != 2 {
		t.Fatalf("staging order should have 2 lines, got %d", staging.LineCount())
	}
}

func TestScanMergesIntoExistingLines(t *testing.T) {
	staging := cart.New(cart.RemoveLine, menu.Lookup)
	staging.Add("A01", "加辣")
	h := NewScanHandler(staging)

	postScan(t, h, `{"t":1,"d":[{"id":"A01","q":2,"n":"加辣"}]}`)

	lines := staging.Lines()
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("scanned line should merge with the manual one, got %+v", lines)
	}
}

func TestScanSkipsUnknownItems(t *testing.T) {
	staging := cart.New(cart.RemoveLine, menu.Lookup)
	h := NewScanHandler(staging)

	w := postScan(t, h, `{"t":1,"d":[{"id":"A01","q":1},{"id":"ZZZ","q":4}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("partial payloads must still apply, got %d", w.Code)
	}

	var resp struct {
		Added   int `json:"added"`
		Skipped int `json:"skipped"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Added != 1 || resp.Skipped != 1 {
		t.Fatalf("expected 1 added / 1 skipped, got %+v", resp)
	}
	if staging.LineCount() != 1 {
		t.Fatalf("unknown item must not reach the staging order, got %d lines", staging.LineCount())
	}
}

func TestScanRejectsMalformedText(t *testing.T) {
	staging := cart.New(cart.RemoveLine, menu.Lookup)
	h := NewScanHandler(staging)

	w := postScan(t, h, "https://example.com/some-random-qr")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a foreign QR code, got %d", w.Code)
	}
	if staging.LineCount() != 0 {
		t.Fatal("failed scan must not touch the staging order")
	}
}
