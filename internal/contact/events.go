package contact

import (
	"time"

	"github.com/cjrsolutions/cjrweb/internal/pubsub"
)

// SubmittedEvent is published for every accepted submission. It carries no
// personal data beyond the service of interest.
type SubmittedEvent struct {
	VisitorID string    `json:"visitorId"`
	Service   string    `json:"service"`
	Delivery  string    `json:"delivery"`
	HandedOff bool      `json:"handedOff"`
	At        time.Time `json:"at"`
}

// Submitted is the contact.submitted event.
var Submitted = pubsub.NewEvent[SubmittedEvent]("contact.submitted", "A visitor submitted the quote request form")
