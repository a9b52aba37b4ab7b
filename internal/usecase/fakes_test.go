package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"
)

// memOrderRepository is an in-memory IOrderRepository.
// hiddenLookups makes the next N GetByTransactionID calls miss, simulating a
// store whose write has not propagated yet.
type memOrderRepository struct {
	mu            sync.Mutex
	orders        map[string]entities.Order
	seq           int
	hiddenLookups int
	lookups       int
	saves         int
}

var _ interfaces.IOrderRepository = (*memOrderRepository)(nil)

func newMemOrderRepository() *memOrderRepository {
	return &memOrderRepository{orders: map[string]entities.Order{}}
}

func (r *memOrderRepository) Save(_ context.Context, id string, o entities.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if id == "" {
		r.seq++
		id = fmt.Sprintf("ord-%d", r.seq)
	}
	o.ID = id
	r.orders[id] = o
	return id, nil
}

func (r *memOrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orders[id], nil
}

func (r *memOrderRepository) GetByTransactionID(_ context.Context, transactionID string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups++
	if r.hiddenLookups > 0 {
		r.hiddenLookups--
		return entities.Order{}, nil
	}
	for _, o := range r.orders {
		if o.PaymentID == transactionID {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

func (r *memOrderRepository) MarkFinal(_ context.Context, id, transactionID string, amount float64) (entities.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, false, nil
	}
	if o.Status != entities.OrderStatusPending {
		return o, false, nil
	}
	now := time.Now().UTC()
	o.Status = entities.OrderStatusFinal
	o.PaymentID = transactionID
	o.Charged = amount
	o.FinalizedAt = &now
	o.UpdatedAt = now
	r.orders[id] = o
	return o, true, nil
}

// countingPublisher records order.finalized publications.
type countingPublisher struct {
	mu        sync.Mutex
	published []entities.Order
	err       error
}

func (p *countingPublisher) PublishOrderFinalized(_ context.Context, o entities.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, o)
	return p.err
}

// instantTimer fires immediately and records requested delays.
type instantTimer struct {
	c      chan time.Time
	delays []time.Duration
}

func newInstantTimer() *instantTimer {
	return &instantTimer{c: make(chan time.Time, 1)}
}

func (t *instantTimer) Start(d time.Duration) {
	t.delays = append(t.delays, d)
	t.c <- time.Now()
}

func (t *instantTimer) Stop() {}

func (t *instantTimer) C() <-chan time.Time { return t.c }

func sampleOrder() entities.Order {
	return entities.Order{
		People: []entities.Person{
			{FirstName: "Ana", LastName: "Lee", Email: "ana@example.org", Admission: 120},
			{FirstName: "Bo", LastName: "Lee", Admission: 80},
		},
		Total:         200,
		PaymentMethod: entities.PaymentMethodStripe,
	}
}
