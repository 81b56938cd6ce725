package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/repository"
)

// RFQRecordService handles the audit log of dispatched quotation requests.
type RFQRecordService struct {
	rfqRepo *repository.RFQRecordRepository
	now     func() time.Time
}

// NewRFQRecordService creates a new RFQRecordService with the provided repository.
func NewRFQRecordService(rfqRepo *repository.RFQRecordRepository) *RFQRecordService {
	return &RFQRecordService{
		rfqRepo: rfqRepo,
		now:     time.Now,
	}
}

// GetRecords retrieves all dispatched RFQs, newest first.
func (s *RFQRecordService) GetRecords() ([]model.RFQRecord, error) {
	return s.rfqRepo.GetRecords()
}

// GetRecord retrieves one dispatched RFQ by ID.
func (s *RFQRecordService) GetRecord(id string) (model.RFQRecord, error) {
	return s.rfqRepo.GetRecordOnID(id)
}

// Dispatch records that a generated message went out through a channel,
// allocating the next RFQ number in the RFQ-YYYY-NNNN sequence.
func (s *RFQRecordService) Dispatch(company, messageText string, channel model.RFQChannel) (model.RFQRecord, error) {
	number, err := s.nextNumber()
	if err != nil {
		return model.RFQRecord{}, err
	}

	rec := model.RFQRecord{
		ID:          uuid.NewString(),
		RFQNumber:   number,
		Company:     company,
		MessageText: messageText,
		Channel:     channel,
		Status:      model.RFQSent,
		CreatedAt:   s.now(),
	}

	if err := s.rfqRepo.CreateRecord(rec); err != nil {
		return model.RFQRecord{}, err
	}
	return rec, nil
}

// nextNumber allocates the next sequence number within the current year.
func (s *RFQRecordService) nextNumber() (string, error) {
	prefix := fmt.Sprintf("RFQ-%d-", s.now().Year())

	count, err := s.rfqRepo.CountRecordsWithPrefix(prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}
