package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/rfq"
)

func TestComposerService_SessionLifecycle(t *testing.T) {
	svc := NewComposerService()

	state := svc.CreateSession()
	if state.ID == "" {
		t.Fatal("Expected a session id")
	}
	if state.Company != rfq.CompanyBrasil {
		t.Errorf("Expected default company %q, got %q", rfq.CompanyBrasil, state.Company)
	}
	if len(state.Trades) != 1 {
		t.Errorf("Expected one default trade, got %d", len(state.Trades))
	}
	if state.Output != "" {
		t.Errorf("Expected empty output before first generate, got %q", state.Output)
	}

	got, err := svc.GetSession(state.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.ID != state.ID {
		t.Errorf("Expected session %s, got %s", state.ID, got.ID)
	}

	if err := svc.DeleteSession(state.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := svc.GetSession(state.ID); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestComposerService_UnknownSession(t *testing.T) {
	svc := NewComposerService()

	if _, err := svc.GetSession("nope"); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("GetSession: expected ErrSessionNotFound, got %v", err)
	}
	if err := svc.DeleteSession("nope"); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("DeleteSession: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.AddTrade("nope"); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("AddTrade: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Generate("nope"); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("Generate: expected ErrSessionNotFound, got %v", err)
	}
}

func TestComposerService_TradeCommands(t *testing.T) {
	svc := NewComposerService()
	sess := svc.CreateSession()

	trade, err := svc.AddTrade(sess.ID)
	if err != nil {
		t.Fatalf("AddTrade failed: %v", err)
	}
	if trade.ID != 2 {
		t.Errorf("Expected trade id 2, got %d", trade.ID)
	}

	qty := 500.0
	updated, err := svc.UpdateTrade(sess.ID, trade.ID, rfq.TradeUpdate{Quantity: &qty})
	if err != nil {
		t.Fatalf("UpdateTrade failed: %v", err)
	}
	if updated.Quantity != 500 {
		t.Errorf("Expected quantity 500, got %v", updated.Quantity)
	}

	side := rfq.Sell
	updated, err = svc.UpdateLeg(sess.ID, trade.ID, rfq.Leg1, rfq.LegUpdate{Side: &side})
	if err != nil {
		t.Fatalf("UpdateLeg failed: %v", err)
	}
	if updated.Leg1.Side != rfq.Sell || updated.Leg2.Side != rfq.Buy {
		t.Errorf("Expected sides sell/buy, got %s/%s", updated.Leg1.Side, updated.Leg2.Side)
	}

	updated, err = svc.ApplyTemplate(sess.ID, trade.ID, rfq.TemplateDecline)
	if err != nil {
		t.Fatalf("ApplyTemplate failed: %v", err)
	}
	if updated.Leg1.PriceType != rfq.PriceAVG || updated.Leg2.PriceType != rfq.PriceFix {
		t.Errorf("Expected AVG/Fix legs, got %s/%s", updated.Leg1.PriceType, updated.Leg2.PriceType)
	}

	state, err := svc.RemoveTrade(sess.ID, 1)
	if err != nil {
		t.Fatalf("RemoveTrade failed: %v", err)
	}
	if len(state.Trades) != 1 || state.Trades[0].ID != 2 {
		t.Errorf("Expected only trade 2 to remain, got %+v", state.Trades)
	}

	if _, err := svc.UpdateTrade(sess.ID, 99, rfq.TradeUpdate{}); !errors.Is(err, apperrors.ErrTradeNotFound) {
		t.Errorf("Expected ErrTradeNotFound, got %v", err)
	}
}

// TestComposerService_OutputSnapshot checks that Generate stores a snapshot
// that later edits do not touch, and that share links are built from that
// snapshot rather than the live trades.
func TestComposerService_OutputSnapshot(t *testing.T) {
	svc := NewComposerService()
	sess := svc.CreateSession()

	if _, err := svc.SetCompany(sess.ID, rfq.CompanyTrading); err != nil {
		t.Fatalf("SetCompany failed: %v", err)
	}

	qty := 500.0
	if _, err := svc.UpdateTrade(sess.ID, 1, rfq.TradeUpdate{Quantity: &qty}); err != nil {
		t.Fatalf("UpdateTrade failed: %v", err)
	}

	out, err := svc.Generate(sess.ID)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.HasPrefix(out, "For Alcast Trading Account:") {
		t.Errorf("Expected Trading account header, got %q", out)
	}
	if !strings.Contains(out, "Swap 500mt") {
		t.Errorf("Expected trade line in output, got %q", out)
	}

	// edit after generating; the stored output must not move
	qty = 750.0
	if _, err := svc.UpdateTrade(sess.ID, 1, rfq.TradeUpdate{Quantity: &qty}); err != nil {
		t.Fatalf("UpdateTrade failed: %v", err)
	}

	state, err := svc.GetSession(sess.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if !strings.Contains(state.Output, "500mt") {
		t.Errorf("Expected stale 500mt snapshot, got %q", state.Output)
	}

	links, err := svc.ShareLinks(sess.ID)
	if err != nil {
		t.Fatalf("ShareLinks failed: %v", err)
	}
	if links.Text != out {
		t.Errorf("Expected share text to match the snapshot, got %q", links.Text)
	}

	refreshed, err := svc.Generate(sess.ID)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(refreshed, "750mt") {
		t.Errorf("Expected refreshed output to carry 750mt, got %q", refreshed)
	}
}

func TestComposerService_ShareLinksBeforeGenerate(t *testing.T) {
	svc := NewComposerService()
	sess := svc.CreateSession()

	links, err := svc.ShareLinks(sess.ID)
	if err != nil {
		t.Fatalf("ShareLinks failed: %v", err)
	}
	if links.Text != "" {
		t.Errorf("Expected empty share text before generate, got %q", links.Text)
	}
}
