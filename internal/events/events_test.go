package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAuditEvent(t *testing.T) {
	e := NewAuditEvent("user", "11", ActionCreate, "admin@safaricom.co.ke")
	assert.Equal(t, "user", e.Entity)
	_, err := time.Parse(time.RFC3339, e.Timestamp)
	assert.NoError(t, err)
}

func TestDecodeAuditEvent(t *testing.T) {
	payload, err := json.Marshal(NewAuditEvent("notification", "1000", ActionRegenerate, "system"))
	require.NoError(t, err)

	e, err := DecodeAuditEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, "1000", e.EntityID)
	assert.Equal(t, ActionRegenerate, e.Action)

	_, err = DecodeAuditEvent([]byte(`{"entityId":"1"}`))
	assert.Error(t, err)

	_, err = DecodeAuditEvent([]byte(`not json`))
	assert.Error(t, err)
}

func TestNewNotifierWithoutBroker(t *testing.T) {
	n, err := NewNotifier("", "audit")
	require.NoError(t, err)
	assert.IsType(t, NoopNotifier{}, n)
	assert.NoError(t, n.Notify(context.Background(), AuditEvent{}))
	n.Close()
}

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Receive(ctx context.Context) (AuditEvent, pulsar.Message, error) {
	args := m.Called(ctx)
	msg, _ := args.Get(1).(pulsar.Message)
	return args.Get(0).(AuditEvent), msg, args.Error(2)
}

func (m *mockSource) Ack(msg pulsar.Message) {
	m.Called(msg)
}

func TestConsume_BacksOffAfterReceiveErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := NewAuditEvent("user", "11", ActionCreate, "admin@safaricom.co.ke")

	src := new(mockSource)
	src.On("Receive", mock.Anything).Return(AuditEvent{}, nil, errors.New("broker unavailable")).Twice()
	src.On("Receive", mock.Anything).Return(event, nil, nil).Once()
	src.On("Ack", mock.Anything).Return().Once()
	src.On("Receive", mock.Anything).Return(AuditEvent{}, nil, context.Canceled).Maybe()

	var got []AuditEvent
	start := time.Now()
	Consume(ctx, src, 10*time.Millisecond, func(e AuditEvent) {
		got = append(got, e)
		cancel()
	})

	// Two failed receives wait 10ms then 20ms before the event arrives.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	require.Len(t, got, 1)
	assert.Equal(t, "11", got[0].EntityID)
	src.AssertExpectations(t)
}

func TestConsume_StopsWhileWaitingToRetry(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	src := new(mockSource)
	src.On("Receive", mock.Anything).Return(AuditEvent{}, nil, errors.New("broker unavailable")).Once()

	done := make(chan struct{})
	go func() {
		Consume(ctx, src, time.Hour, func(AuditEvent) { t.Error("no event expected") })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Consume kept retrying after the context ended")
	}
	src.AssertNumberOfCalls(t, "Receive", 1)
}
