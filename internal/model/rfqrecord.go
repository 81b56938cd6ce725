package model

import "time"

// RFQChannel is the sink an RFQ message was dispatched through.
type RFQChannel string

const (
	ChannelEmail     RFQChannel = "email"
	ChannelWhatsApp  RFQChannel = "whatsapp"
	ChannelClipboard RFQChannel = "clipboard"
)

// Valid reports whether c is a recognized dispatch channel.
func (c RFQChannel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelWhatsApp, ChannelClipboard:
		return true
	}
	return false
}

// RFQStatus is the dispatch state of a sent RFQ.
type RFQStatus string

const (
	RFQSent   RFQStatus = "sent"
	RFQFailed RFQStatus = "failed"
)

// Valid reports whether s is a recognized RFQ status.
func (s RFQStatus) Valid() bool {
	return s == RFQSent || s == RFQFailed
}

// RFQRecord is the audit entry kept for every dispatched quotation request:
// the generated message text snapshot plus dispatch metadata. Composer
// session state itself is never persisted; only what actually went out.
type RFQRecord struct {
	ID          string     `json:"id"`
	RFQNumber   string     `json:"rfqNumber"` // RFQ-YYYY-NNNN
	Company     string     `json:"company"`
	MessageText string     `json:"messageText"`
	Channel     RFQChannel `json:"channel"`
	Status      RFQStatus  `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}
