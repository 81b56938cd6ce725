package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alcast/backoffice/internal/api/handlers"
	"github.com/alcast/backoffice/internal/rfq"
	"github.com/alcast/backoffice/internal/service"
	"github.com/alcast/backoffice/internal/testutil"
)

func newComposerHandler() *handlers.ComposerHandler {
	return handlers.NewComposerHandler(service.NewComposerService())
}

func createSession(t *testing.T, h *handlers.ComposerHandler) service.SessionState {
	t.Helper()
	rec := httptest.NewRecorder()
	h.CreateSession(rec, testutil.NewRequestWithURLParams(http.MethodPost, "/api/rfq/sessions", nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}
	var state service.SessionState
	testutil.DecodeJSON(t, rec, &state)
	return state
}

func TestComposerHandler_SessionFlow(t *testing.T) {
	h := newComposerHandler()
	sess := createSession(t, h)

	if len(sess.Trades) != 1 {
		t.Fatalf("Expected one default trade, got %d", len(sess.Trades))
	}

	// set the account header
	rec := httptest.NewRecorder()
	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/rfq/sessions/"+sess.ID+"/company",
		map[string]string{"company": "Alcast Trading"},
		map[string]string{"sessionId": sess.ID})
	h.SetCompany(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("SetCompany: expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// put a quantity and a fixed leg on the trade
	rec = httptest.NewRecorder()
	req = testutil.NewJSONRequest(t, http.MethodPatch, "/api/rfq/sessions/"+sess.ID+"/trades/1",
		map[string]any{"quantity": 500},
		map[string]string{"sessionId": sess.ID, "tradeId": "1"})
	h.UpdateTrade(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("UpdateTrade: expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = testutil.NewJSONRequest(t, http.MethodPatch, "/api/rfq/sessions/"+sess.ID+"/trades/1/legs/leg2",
		map[string]string{"priceType": "Fix", "fixingDate": "2026-09-15"},
		map[string]string{"sessionId": sess.ID, "tradeId": "1", "leg": "leg2"})
	h.UpdateLeg(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("UpdateLeg: expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var trade rfq.Trade
	testutil.DecodeJSON(t, rec, &trade)
	if trade.Leg2.PriceType != rfq.PriceFix {
		t.Errorf("Expected leg2 price type Fix, got %s", trade.Leg2.PriceType)
	}

	// generate and share
	rec = httptest.NewRecorder()
	req = testutil.NewRequestWithURLParams(http.MethodPost, "/api/rfq/sessions/"+sess.ID+"/generate",
		map[string]string{"sessionId": sess.ID})
	h.Generate(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Generate: expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var gen handlers.GenerateResponse
	testutil.DecodeJSON(t, rec, &gen)
	if !strings.HasPrefix(gen.Output, "For Alcast Trading Account:") {
		t.Errorf("Expected Trading account header, got %q", gen.Output)
	}
	if !strings.Contains(gen.Output, "Swap 500mt") {
		t.Errorf("Expected trade line in output, got %q", gen.Output)
	}
	if !strings.Contains(gen.Output, "Fix 15 Sep 2026") {
		t.Errorf("Expected fixed leg descriptor, got %q", gen.Output)
	}

	rec = httptest.NewRecorder()
	req = testutil.NewRequestWithURLParams(http.MethodGet, "/api/rfq/sessions/"+sess.ID+"/share",
		map[string]string{"sessionId": sess.ID})
	h.ShareLinks(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("ShareLinks: expected status 200, got %d", rec.Code)
	}

	var links rfq.ShareLinks
	testutil.DecodeJSON(t, rec, &links)
	if links.Text != gen.Output {
		t.Errorf("Expected share text to match the generated output")
	}
	if !strings.HasPrefix(links.WhatsApp, "https://wa.me/?text=") {
		t.Errorf("Expected a wa.me link, got %q", links.WhatsApp)
	}
}

func TestComposerHandler_UnknownSession(t *testing.T) {
	h := newComposerHandler()

	rec := httptest.NewRecorder()
	req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/rfq/sessions/missing",
		map[string]string{"sessionId": "missing"})
	h.GetSession(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestComposerHandler_InvalidTradeID(t *testing.T) {
	h := newComposerHandler()
	sess := createSession(t, h)

	rec := httptest.NewRecorder()
	req := testutil.NewJSONRequest(t, http.MethodPatch, "/api/rfq/sessions/"+sess.ID+"/trades/abc",
		map[string]any{"quantity": 1},
		map[string]string{"sessionId": sess.ID, "tradeId": "abc"})
	h.UpdateTrade(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestComposerHandler_InvalidCompany(t *testing.T) {
	h := newComposerHandler()
	sess := createSession(t, h)

	rec := httptest.NewRecorder()
	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/rfq/sessions/"+sess.ID+"/company",
		map[string]string{"company": "Acme"},
		map[string]string{"sessionId": sess.ID})
	h.SetCompany(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestComposerHandler_UnknownTemplate(t *testing.T) {
	h := newComposerHandler()
	sess := createSession(t, h)

	rec := httptest.NewRecorder()
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/rfq/sessions/"+sess.ID+"/trades/1/template",
		map[string]string{"template": "straddle"},
		map[string]string{"sessionId": sess.ID, "tradeId": "1"})
	h.ApplyTemplate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestComposerHandler_RemoveLastTradeKeepsSet(t *testing.T) {
	h := newComposerHandler()
	sess := createSession(t, h)

	rec := httptest.NewRecorder()
	req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/rfq/sessions/"+sess.ID+"/trades/1",
		map[string]string{"sessionId": sess.ID, "tradeId": "1"})
	h.RemoveTrade(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var state service.SessionState
	testutil.DecodeJSON(t, rec, &state)
	if len(state.Trades) != 1 {
		t.Errorf("Expected the last trade to survive removal, got %d trades", len(state.Trades))
	}
}
