package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/rfq"
)

// ComposerService owns the in-memory RFQ composer sessions. Each session holds
// one trade set, a company selector and the last generated output. Sessions are
// never persisted: the composer is a scratchpad, and only messages that are
// actually dispatched reach the database (see RFQRecordService).
//
// Every command runs to completion under the service lock, so the trade-set
// invariants (opposite leg sides, at least one trade) hold at every observable
// point.
type ComposerService struct {
	mu       sync.Mutex
	sessions map[string]*composerSession
}

type composerSession struct {
	id        string
	company   rfq.Company
	set       *rfq.TradeSet
	output    string
	createdAt time.Time
}

// SessionState is a point-in-time view of a composer session. Output is the
// snapshot from the last Generate call; it goes stale as the trades are edited
// and is only refreshed by another explicit Generate.
type SessionState struct {
	ID      string      `json:"id"`
	Company rfq.Company `json:"company"`
	Trades  []rfq.Trade `json:"trades"`
	Output  string      `json:"output"`
}

// NewComposerService creates a ComposerService with no sessions.
func NewComposerService() *ComposerService {
	return &ComposerService{sessions: make(map[string]*composerSession)}
}

// CreateSession starts a new composer session holding one default trade.
func (s *ComposerService) CreateSession() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &composerSession{
		id:        uuid.NewString(),
		company:   rfq.CompanyBrasil,
		set:       rfq.NewTradeSet(),
		createdAt: time.Now(),
	}
	s.sessions[sess.id] = sess
	return sess.state()
}

// GetSession returns the current state of a session.
func (s *ComposerService) GetSession(id string) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return SessionState{}, apperrors.ErrSessionNotFound
	}
	return sess.state(), nil
}

// DeleteSession discards a session and everything in it.
func (s *ComposerService) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return apperrors.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// SetCompany switches whose account header the generated message will carry.
func (s *ComposerService) SetCompany(id string, company rfq.Company) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return SessionState{}, apperrors.ErrSessionNotFound
	}
	sess.company = company
	return sess.state(), nil
}

// AddTrade appends a default trade to the session's trade set.
func (s *ComposerService) AddTrade(id string) (rfq.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return rfq.Trade{}, apperrors.ErrSessionNotFound
	}
	return sess.set.AddTrade(), nil
}

// RemoveTrade removes a trade from the session. Removing the last remaining
// trade is a no-op per the trade-set invariant; the returned state reflects
// whatever the set holds afterwards.
func (s *ComposerService) RemoveTrade(id string, tradeID int) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return SessionState{}, apperrors.ErrSessionNotFound
	}
	if err := sess.set.RemoveTrade(tradeID); err != nil {
		return SessionState{}, err
	}
	return sess.state(), nil
}

// UpdateTrade merges a partial trade update into one of the session's trades.
func (s *ComposerService) UpdateTrade(id string, tradeID int, u rfq.TradeUpdate) (rfq.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return rfq.Trade{}, apperrors.ErrSessionNotFound
	}
	if err := sess.set.UpdateTrade(tradeID, u); err != nil {
		return rfq.Trade{}, err
	}
	return sess.set.Trade(tradeID)
}

// UpdateLeg merges a partial leg update into one leg of a trade, flipping the
// sibling leg's side when the update changes sides.
func (s *ComposerService) UpdateLeg(id string, tradeID int, slot rfq.LegSlot, u rfq.LegUpdate) (rfq.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return rfq.Trade{}, apperrors.ErrSessionNotFound
	}
	if err := sess.set.UpdateLeg(tradeID, slot, u); err != nil {
		return rfq.Trade{}, err
	}
	return sess.set.Trade(tradeID)
}

// ApplyTemplate rewrites a trade to a named hedge structure.
func (s *ComposerService) ApplyTemplate(id string, tradeID int, tpl rfq.Template) (rfq.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return rfq.Trade{}, apperrors.ErrSessionNotFound
	}
	if err := sess.set.ApplyTemplate(tradeID, tpl); err != nil {
		return rfq.Trade{}, err
	}
	return sess.set.Trade(tradeID)
}

// Generate assembles the outgoing message from the session's current trades
// and stores it as the session's output snapshot. The snapshot is only
// refreshed by another Generate call; edits in between leave it stale, which
// is the intended behavior of the composer.
func (s *ComposerService) Generate(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return "", apperrors.ErrSessionNotFound
	}
	sess.output = rfq.Assemble(sess.company, sess.set.Trades())
	return sess.output, nil
}

// ShareLinks returns the share targets for the session's last generated
// output. Generating first is the caller's responsibility; with no snapshot
// the links carry an empty message.
func (s *ComposerService) ShareLinks(id string) (rfq.ShareLinks, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return rfq.ShareLinks{}, apperrors.ErrSessionNotFound
	}
	return rfq.BuildShareLinks(sess.company, sess.output), nil
}

func (c *composerSession) state() SessionState {
	return SessionState{
		ID:      c.id,
		Company: c.company,
		Trades:  c.set.Trades(),
		Output:  c.output,
	}
}
