package email

import (
	"fmt"

	"github.com/cjrsolutions/cjrweb/internal/config"
	"github.com/cjrsolutions/cjrweb/internal/domain"
)

// NewContactSubmitter returns the delivery mechanism named by CONTACT_DELIVERY.
func NewContactSubmitter(cfg config.Provider) (domain.ContactSubmitter, error) {
	switch cfg.GetContactDelivery() {
	case "", "mailto":
		return &MailtoSubmitter{recipient: cfg.GetContactAddress()}, nil
	case "log":
		return &LogSender{recipient: cfg.GetContactAddress()}, nil
	case "resend":
		if cfg.GetEmailAPIKey() == "" {
			return nil, fmt.Errorf("contact delivery is 'resend' but EMAIL_API_KEY is not set")
		}
		return NewResendSender(cfg.GetEmailAPIKey(), cfg.GetEmailSender(), cfg.GetContactAddress(), ""), nil
	default:
		return nil, fmt.Errorf("unknown contact delivery: %s", cfg.GetContactDelivery())
	}
}
