package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cjrsolutions/cjrweb/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	mu      sync.Mutex
	err     error
	release chan struct{}
	forms   []domain.ContactForm
}

func (f *fakeSubmitter) Submit(ctx context.Context, form domain.ContactForm) (domain.SubmitResult, error) {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forms = append(f.forms, form)
	if f.err != nil {
		return domain.SubmitResult{}, f.err
	}
	return domain.SubmitResult{ComposeURI: "mailto:test@example.com"}, nil
}

func (f *fakeSubmitter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.forms)
}

var fastOptions = Options{SubmitDelay: 30 * time.Millisecond, StatusReset: 60 * time.Millisecond}

func validFields() Fields {
	return Fields{
		Name:    "Ana Quispe",
		Email:   "ana@example.com",
		Phone:   "964284252",
		Service: "Servicios de RF y Microondas",
		Message: "Necesitamos una cotización.",
	}
}

func TestMachine_SuccessFlow(t *testing.T) {
	sub := &fakeSubmitter{}
	m := NewMachine(sub, fastOptions)
	defer m.Close()

	require.NoError(t, m.SetFields(validFields()))
	assert.Equal(t, "idle", m.Snapshot().State())

	result, err := m.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mailto:test@example.com", result.ComposeURI)

	snap := m.Snapshot()
	assert.Equal(t, "submitting", snap.State())
	assert.Equal(t, "Ana Quispe", snap.Fields.Name, "fields are kept until the delay elapses")

	require.Eventually(t, func() bool { return m.Snapshot().Status == Success }, time.Second, 5*time.Millisecond)
	snap = m.Snapshot()
	assert.False(t, snap.Submitting)
	assert.Equal(t, Fields{}, snap.Fields, "fields are cleared on success")

	require.Eventually(t, func() bool { return m.Snapshot().State() == "idle" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, sub.calls())
}

func TestMachine_ErrorFlow(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("smtp down")}
	m := NewMachine(sub, fastOptions)
	defer m.Close()

	require.NoError(t, m.SetFields(validFields()))

	_, err := m.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)

	snap := m.Snapshot()
	assert.Equal(t, Error, snap.Status)
	assert.False(t, snap.Submitting)
	assert.Equal(t, validFields(), snap.Fields, "fields are kept on error")

	require.Eventually(t, func() bool { return m.Snapshot().Status == Idle }, time.Second, 5*time.Millisecond)
	assert.Equal(t, validFields(), m.Snapshot().Fields)
}

func TestMachine_Incomplete(t *testing.T) {
	for _, field := range []string{"name", "email", "message"} {
		t.Run(field, func(t *testing.T) {
			sub := &fakeSubmitter{}
			m := NewMachine(sub, fastOptions)
			defer m.Close()

			require.NoError(t, m.SetFields(validFields()))
			require.NoError(t, m.SetField(field, ""))

			_, err := m.Submit(context.Background())

			assert.ErrorIs(t, err, ErrIncomplete)
			assert.ErrorContains(t, err, field)
			assert.Equal(t, "idle", m.Snapshot().State())
			assert.Zero(t, sub.calls(), "the submitter is never reached")
		})
	}

	t.Run("phone and service are optional", func(t *testing.T) {
		m := NewMachine(&fakeSubmitter{}, fastOptions)
		defer m.Close()

		f := validFields()
		f.Phone, f.Service = "", ""
		require.NoError(t, m.SetFields(f))

		_, err := m.Submit(context.Background())
		assert.NoError(t, err)
	})
}

func TestMachine_InFlight(t *testing.T) {
	sub := &fakeSubmitter{release: make(chan struct{})}
	m := NewMachine(sub, fastOptions)
	defer m.Close()
	require.NoError(t, m.SetFields(validFields()))

	first := make(chan error, 1)
	go func() {
		_, err := m.Submit(context.Background())
		first <- err
	}()

	require.Eventually(t, func() bool { return m.Snapshot().Submitting }, time.Second, time.Millisecond)

	_, err := m.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInFlight)

	close(sub.release)
	assert.NoError(t, <-first)
}

func TestMachine_SetField(t *testing.T) {
	m := NewMachine(&fakeSubmitter{}, fastOptions)
	defer m.Close()

	require.NoError(t, m.SetField("name", "Luis"))
	require.NoError(t, m.SetField("email", "luis@example.com"))
	require.NoError(t, m.SetField("phone", "01-3003429"))
	require.NoError(t, m.SetField("service", "Sistemas de Energía"))
	require.NoError(t, m.SetField("message", "Hola"))

	assert.Equal(t, Fields{
		Name:    "Luis",
		Email:   "luis@example.com",
		Phone:   "01-3003429",
		Service: "Sistemas de Energía",
		Message: "Hola",
	}, m.Snapshot().Fields)

	assert.ErrorIs(t, m.SetField("company", "x"), ErrUnknownField)
}

func TestMachine_CloseCancelsTimers(t *testing.T) {
	m := NewMachine(&fakeSubmitter{}, Options{SubmitDelay: 20 * time.Millisecond, StatusReset: time.Hour})
	require.NoError(t, m.SetFields(validFields()))

	_, err := m.Submit(context.Background())
	require.NoError(t, err)

	m.Close()
	assert.Zero(t, m.timers.Len())

	time.Sleep(60 * time.Millisecond)
	snap := m.Snapshot()
	assert.True(t, snap.Submitting, "no transition happens after close")
	assert.Equal(t, Idle, snap.Status)

	_, err = m.Submit(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.SetField("name", "x"), ErrClosed)
}

func TestMachine_ResubmitCancelsPendingReset(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("offline")}
	m := NewMachine(sub, Options{SubmitDelay: 10 * time.Millisecond, StatusReset: time.Hour})
	defer m.Close()
	require.NoError(t, m.SetFields(validFields()))

	_, err := m.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, m.timers.Len(), "the error result schedules a reset")

	sub.mu.Lock()
	sub.err = nil
	sub.mu.Unlock()

	_, err = m.Submit(context.Background())
	require.NoError(t, err)

	require.Eventually(t, func() bool { return m.Snapshot().Status == Success }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, m.timers.Len(), "only the new result's reset is pending")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "error", Error.String())
}
