package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stratodeck/copytrade/internal/pkg/models"
)

type recordingNotifier struct {
	address string
	subject string
	body    string
	calls   int
	err     error
}

func (n *recordingNotifier) Notify(address, subject, body string) error {
	n.calls++
	n.address = address
	n.subject = subject
	n.body = body
	return n.err
}

type recordingMarker struct {
	marked []uuid.UUID
}

func (m *recordingMarker) MarkAdminMessageSent(_ context.Context, id uuid.UUID) error {
	m.marked = append(m.marked, id)
	return nil
}

func TestHandleAdminMessage_DeliversAndMarksSent(t *testing.T) {
	notifier := &recordingNotifier{}
	marker := &recordingMarker{}
	c := NewConsumer(nil, notifier, marker)

	txID := uuid.New()
	event := models.AdminMessageEvent{
		TransactionID: txID,
		UserID:        uuid.New(),
		UserEmail:     "trader@example.com",
		Message:       "please resend the receipt",
		Timestamp:     time.Now(),
	}
	data, err := json.Marshal(event)
	assert.NoError(t, err)

	c.handleAdminMessage(data)

	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, "trader@example.com", notifier.address)
	assert.Equal(t, "please resend the receipt", notifier.body)
	assert.Equal(t, []uuid.UUID{txID}, marker.marked)
}

func TestHandleAdminMessage_DeliveryFailureLeavesStatusPending(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	marker := &recordingMarker{}
	c := NewConsumer(nil, notifier, marker)

	event := models.AdminMessageEvent{
		TransactionID: uuid.New(),
		UserEmail:     "trader@example.com",
		Message:       "hello",
	}
	data, _ := json.Marshal(event)

	c.handleAdminMessage(data)

	assert.Equal(t, 1, notifier.calls)
	assert.Empty(t, marker.marked)
}

func TestHandlePaymentEvent_IncludesReason(t *testing.T) {
	notifier := &recordingNotifier{}
	c := NewConsumer(nil, notifier, &recordingMarker{})

	event := models.PaymentEvent{
		TransactionID: uuid.New(),
		UserEmail:     "trader@example.com",
		Status:        models.TransactionFailed,
		Amount:        decimal.RequireFromString("42"),
		Reason:        "receipt unreadable",
	}
	data, _ := json.Marshal(event)

	c.handlePaymentEvent(data, "Payment rejected")

	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, "Payment rejected", notifier.subject)
	assert.Contains(t, notifier.body, "failed")
	assert.Contains(t, notifier.body, "receipt unreadable")
}

func TestHandlePaymentEvent_NoEmailSkips(t *testing.T) {
	notifier := &recordingNotifier{}
	c := NewConsumer(nil, notifier, &recordingMarker{})

	event := models.PaymentEvent{TransactionID: uuid.New(), Status: models.TransactionCompleted}
	data, _ := json.Marshal(event)

	c.handlePaymentEvent(data, "Payment approved")

	assert.Equal(t, 0, notifier.calls)
}
