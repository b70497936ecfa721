package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures.
var (
	ErrNotFound            = errors.New("requested resource not found")
	ErrCatalogInconsistent = errors.New("service catalog is inconsistent")
	ErrDeliveryFailed      = errors.New("contact message could not be delivered")
)
