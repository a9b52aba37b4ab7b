package payments

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MockProcessor is an in-memory processor enabled by PAYMENT_GATEWAY_MOCK.
// It honors idempotency keys the way the real processors do: a repeated
// create with the same key returns the first transaction.
type MockProcessor struct {
	mu    sync.Mutex
	byID  map[string]*entities.ProcessorTransaction
	byKey map[string]string
	name  string
}

var _ interfaces.IPaymentProcessor = (*MockProcessor)(nil)

func NewMockProcessor(name string) *MockProcessor {
	if strings.TrimSpace(name) == "" {
		name = "mock"
	}
	log.Printf("[payment][gateway] mock mode enabled processor=%s", name)
	return &MockProcessor{
		byID:  map[string]*entities.ProcessorTransaction{},
		byKey: map[string]string{},
		name:  name,
	}
}

func (m *MockProcessor) Name() string { return m.name }

func (m *MockProcessor) CreateTransaction(_ context.Context, req entities.CreateTransactionRequest) (entities.ProcessorTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byKey[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		log.Printf("[payment][gateway] mock create replay key=%s id=%s", req.IdempotencyKey, id)
		return *m.byID[id], nil
	}
	id := "mock_" + uuid.NewString()
	tx := &entities.ProcessorTransaction{
		ID:           id,
		AmountMinor:  req.AmountMinor,
		Currency:     strings.ToLower(req.Currency),
		Status:       "requires_capture",
		Description:  req.Description,
		ClientSecret: id + "_secret",
	}
	m.byID[id] = tx
	if req.IdempotencyKey != "" {
		m.byKey[req.IdempotencyKey] = id
	}
	log.Printf("[payment][gateway] mock create success id=%s amount=%d", id, req.AmountMinor)
	return *tx, nil
}

func (m *MockProcessor) GetTransaction(_ context.Context, id string) (entities.ProcessorTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.byID[id]
	if !ok {
		return entities.ProcessorTransaction{}, fmt.Errorf("%w: mock transaction %s not found", interfaces.ErrProcessorDeclined, id)
	}
	return *tx, nil
}

func (m *MockProcessor) UpdateTransactionAmount(_ context.Context, id string, amountMinor int64, _ string) (entities.ProcessorTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.byID[id]
	if !ok {
		return entities.ProcessorTransaction{}, fmt.Errorf("%w: mock transaction %s not found", interfaces.ErrProcessorDeclined, id)
	}
	tx.AmountMinor = amountMinor
	return *tx, nil
}

func (m *MockProcessor) CaptureTransaction(_ context.Context, id string, _ string) (entities.ProcessorCapture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.byID[id]
	if !ok {
		return entities.ProcessorCapture{}, fmt.Errorf("%w: mock transaction %s not found", interfaces.ErrProcessorDeclined, id)
	}
	tx.Status = "succeeded"
	return entities.ProcessorCapture{
		TransactionID: tx.ID,
		CaptureID:     "cap_" + tx.ID,
		AmountMinor:   tx.AmountMinor,
		Status:        tx.Status,
		Succeeded:     true,
	}, nil
}
