package service

import (
	"errors"
	"testing"
	"time"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/repository"
	"github.com/alcast/backoffice/internal/testutil"
)

func newTestRFQRecordService(t *testing.T) *RFQRecordService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewRFQRecordService(repository.NewRFQRecordRepository(db))
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestDispatch(t *testing.T) {
	svc := newTestRFQRecordService(t)

	rec, err := svc.Dispatch("Alcast Trading", "Swap 500mt", model.ChannelEmail)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if rec.RFQNumber != "RFQ-2026-0001" {
		t.Errorf("Expected number RFQ-2026-0001, got %s", rec.RFQNumber)
	}
	if rec.Status != model.RFQSent {
		t.Errorf("Expected status sent, got %s", rec.Status)
	}
	if rec.Company != "Alcast Trading" || rec.MessageText != "Swap 500mt" {
		t.Errorf("Dispatch did not carry the message: %+v", rec)
	}

	stored, err := svc.GetRecord(rec.ID)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if stored.RFQNumber != rec.RFQNumber {
		t.Errorf("Expected stored record %s, got %s", rec.RFQNumber, stored.RFQNumber)
	}
}

func TestDispatch_NumberSequence(t *testing.T) {
	svc := newTestRFQRecordService(t)

	first, err := svc.Dispatch("Alcast Brasil", "Forward 100mt", model.ChannelWhatsApp)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	second, err := svc.Dispatch("Alcast Brasil", "Forward 200mt", model.ChannelClipboard)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if first.RFQNumber != "RFQ-2026-0001" || second.RFQNumber != "RFQ-2026-0002" {
		t.Errorf("Expected sequential numbers, got %s and %s", first.RFQNumber, second.RFQNumber)
	}
}

func TestGetRecords(t *testing.T) {
	svc := newTestRFQRecordService(t)

	if _, err := svc.Dispatch("Alcast Trading", "one", model.ChannelEmail); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Dispatch("Alcast Trading", "two", model.ChannelEmail); err != nil {
		t.Fatal(err)
	}

	records, err := svc.GetRecords()
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}
}

func TestGetRecord_NotFound(t *testing.T) {
	svc := newTestRFQRecordService(t)

	_, err := svc.GetRecord(testutil.MakeID())
	if !errors.Is(err, apperrors.ErrRFQRecordNotFound) {
		t.Errorf("Expected ErrRFQRecordNotFound, got %v", err)
	}
}
