package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cjrsolutions/cjrweb/internal/domain"
)

// Default timings of the form.
const (
	DefaultSubmitDelay = time.Second
	DefaultStatusReset = 5 * time.Second
)

var (
	// ErrIncomplete is returned when a required field is empty. The machine
	// does not change state.
	ErrIncomplete = errors.New("required contact fields are empty")
	// ErrInFlight is returned when a submission is already in progress.
	ErrInFlight = errors.New("a submission is already in progress")
	// ErrClosed is returned once the machine has been closed.
	ErrClosed = errors.New("contact form is closed")
	// ErrUnknownField is returned by SetField for names the form does not have.
	ErrUnknownField = errors.New("unknown contact field")
)

// Fields are the values of the form, keyed by input name.
type Fields = domain.ContactForm

// Status is the outcome shown to the visitor.
type Status int

const (
	Idle Status = iota
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// Snapshot is a consistent copy of a machine's state.
type Snapshot struct {
	Fields     Fields
	Status     Status
	Submitting bool
}

// State collapses the snapshot into one of idle, submitting, success, error.
func (s Snapshot) State() string {
	if s.Submitting {
		return "submitting"
	}
	return s.Status.String()
}

// Options tune a Machine. Zero durations use the defaults.
type Options struct {
	SubmitDelay time.Duration
	StatusReset time.Duration
}

func (o Options) withDefaults() Options {
	if o.SubmitDelay <= 0 {
		o.SubmitDelay = DefaultSubmitDelay
	}
	if o.StatusReset <= 0 {
		o.StatusReset = DefaultStatusReset
	}
	return o
}

// Machine is the contact form state machine of one visitor. It is safe for
// concurrent use.
type Machine struct {
	mu         sync.Mutex
	submitter  domain.ContactSubmitter
	opts       Options
	timers     *timerSet
	fields     Fields
	status     Status
	submitting bool
	closed     bool
	// gen identifies the current submission; callbacks of older ones are ignored.
	gen     uint64
	resetID uint64
	touched time.Time
}

// NewMachine returns an idle machine delivering through submitter.
func NewMachine(submitter domain.ContactSubmitter, opts Options) *Machine {
	return &Machine{
		submitter: submitter,
		opts:      opts.withDefaults(),
		timers:    newTimerSet(),
		touched:   time.Now(),
	}
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) snapshotLocked() Snapshot {
	return Snapshot{Fields: m.fields, Status: m.status, Submitting: m.submitting}
}

// SetField changes one field by its input name.
func (m *Machine) SetField(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	switch name {
	case "name":
		m.fields.Name = value
	case "email":
		m.fields.Email = value
	case "phone":
		m.fields.Phone = value
	case "service":
		m.fields.Service = value
	case "message":
		m.fields.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	m.touched = time.Now()
	return nil
}

// SetFields replaces every field at once, as a full form post does.
func (m *Machine) SetFields(f Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.fields = f
	m.touched = time.Now()
	return nil
}

// Submit delivers the current fields. On success the fields are cleared and
// the status becomes Success after the submit delay; on failure the status
// becomes Error at once and the fields are kept. Either result returns to
// Idle after the status reset window.
func (m *Machine) Submit(ctx context.Context) (domain.SubmitResult, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return domain.SubmitResult{}, ErrClosed
	}
	if m.submitting {
		m.mu.Unlock()
		return domain.SubmitResult{}, ErrInFlight
	}
	if missing := missingFields(m.fields); len(missing) > 0 {
		m.mu.Unlock()
		return domain.SubmitResult{}, fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	m.timers.Stop(m.resetID)
	m.resetID = 0
	m.gen++
	gen := m.gen
	m.submitting = true
	m.status = Idle
	m.touched = time.Now()
	form := m.fields
	m.mu.Unlock()

	result, err := m.submitter.Submit(ctx, form)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || gen != m.gen {
		return result, ErrClosed
	}
	if err != nil {
		m.submitting = false
		m.status = Error
		m.scheduleResetLocked(gen)
		return result, fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, err)
	}

	m.timers.After(m.opts.SubmitDelay, func() { m.complete(gen) })
	return result, nil
}

func (m *Machine) complete(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || gen != m.gen {
		return
	}
	m.fields = Fields{}
	m.status = Success
	m.submitting = false
	m.scheduleResetLocked(gen)
}

func (m *Machine) scheduleResetLocked(gen uint64) {
	m.resetID = m.timers.After(m.opts.StatusReset, func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.closed || gen != m.gen || m.submitting {
			return
		}
		m.status = Idle
		m.resetID = 0
	})
}

// Close cancels every pending timer. The machine is inert afterwards.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	m.timers.StopAll()
}

// idleSince reports when the visitor last changed the form, and whether the
// machine has nothing pending that eviction would cut short.
func (m *Machine) idleSince() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.touched, !m.submitting && m.timers.Len() == 0
}

func missingFields(f Fields) []string {
	var missing []string
	if f.Name == "" {
		missing = append(missing, "name")
	}
	if f.Email == "" {
		missing = append(missing, "email")
	}
	if f.Message == "" {
		missing = append(missing, "message")
	}
	return missing
}
