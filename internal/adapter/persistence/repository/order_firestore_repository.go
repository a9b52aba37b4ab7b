package repository

import (
	"context"
	"errors"
	"time"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const DefaultOrdersCollection = "orders"

type personDoc struct {
	FirstName string                 `firestore:"first_name"`
	LastName  string                 `firestore:"last_name"`
	Email     string                 `firestore:"email,omitempty"`
	Phone     string                 `firestore:"phone,omitempty"`
	Admission float64                `firestore:"admission"`
	Extra     map[string]interface{} `firestore:"extra,omitempty"`
}

type orderDoc struct {
	People        []personDoc `firestore:"people"`
	Donation      float64     `firestore:"donation"`
	Deposit       float64     `firestore:"deposit"`
	Fees          float64     `firestore:"fees"`
	Total         float64     `firestore:"total"`
	PaymentMethod string      `firestore:"payment_method,omitempty"`
	PaymentID     string      `firestore:"payment_id,omitempty"`
	Charged       float64     `firestore:"charged"`
	Status        string      `firestore:"status"`
	CreatedAt     time.Time   `firestore:"created_at"`
	UpdatedAt     time.Time   `firestore:"updated_at"`
	FinalizedAt   *time.Time  `firestore:"finalized_at,omitempty"`
}

// OrderFirestoreRepository persists registration orders as Firestore documents
// (document id = order id). Lookups by payment_id need a single-field index,
// which Firestore creates automatically.
type OrderFirestoreRepository struct {
	client     *firestore.Client
	collection string
	now        func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderFirestoreRepository)(nil)

func NewOrderFirestoreRepository(client *firestore.Client, collection string) *OrderFirestoreRepository {
	if collection == "" {
		collection = DefaultOrdersCollection
	}
	return &OrderFirestoreRepository{client: client, collection: collection, now: time.Now}
}

func (r *OrderFirestoreRepository) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func (r *OrderFirestoreRepository) Save(ctx context.Context, id string, o entities.Order) (string, error) {
	doc := toOrderDoc(o)
	if id == "" {
		ref := r.col().NewDoc()
		if _, err := ref.Create(ctx, doc); err != nil {
			return "", err
		}
		return ref.ID, nil
	}

	ref := r.col().Doc(id)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil && snap.Exists() {
			var current orderDoc
			if err := snap.DataTo(&current); err != nil {
				return err
			}
			if current.Status != string(entities.OrderStatusPending) {
				return interfaces.ErrOrderNotPending
			}
		}
		return tx.Set(ref, doc)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *OrderFirestoreRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	return snapshotToOrder(snap)
}

func (r *OrderFirestoreRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.Order, error) {
	it := r.col().Where("payment_id", "==", transactionID).Limit(1).Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	return snapshotToOrder(snap)
}

func (r *OrderFirestoreRepository) MarkFinal(ctx context.Context, id, transactionID string, amount float64) (entities.Order, bool, error) {
	ref := r.col().Doc(id)
	var (
		result       entities.Order
		transitioned bool
	)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		transitioned = false
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			result = entities.Order{}
			return nil
		}
		if err != nil {
			return err
		}
		current, err := snapshotToOrder(snap)
		if err != nil {
			return err
		}
		if current.Status != entities.OrderStatusPending {
			result = current
			return nil
		}

		now := r.now().UTC()
		current.Status = entities.OrderStatusFinal
		current.PaymentID = transactionID
		current.Charged = amount
		current.FinalizedAt = &now
		current.UpdatedAt = now
		if err := tx.Update(ref, []firestore.Update{
			{Path: "status", Value: string(entities.OrderStatusFinal)},
			{Path: "payment_id", Value: transactionID},
			{Path: "charged", Value: amount},
			{Path: "finalized_at", Value: now},
			{Path: "updated_at", Value: now},
		}); err != nil {
			return err
		}
		result = current
		transitioned = true
		return nil
	})
	if err != nil {
		return entities.Order{}, false, err
	}
	return result, transitioned, nil
}

func snapshotToOrder(snap *firestore.DocumentSnapshot) (entities.Order, error) {
	var doc orderDoc
	if err := snap.DataTo(&doc); err != nil {
		return entities.Order{}, err
	}
	return fromOrderDoc(snap.Ref.ID, doc), nil
}

func toOrderDoc(o entities.Order) orderDoc {
	people := make([]personDoc, 0, len(o.People))
	for _, p := range o.People {
		people = append(people, personDoc(p))
	}
	return orderDoc{
		People:        people,
		Donation:      o.Donation,
		Deposit:       o.Deposit,
		Fees:          o.Fees,
		Total:         o.Total,
		PaymentMethod: string(o.PaymentMethod),
		PaymentID:     o.PaymentID,
		Charged:       o.Charged,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt.UTC(),
		UpdatedAt:     o.UpdatedAt.UTC(),
		FinalizedAt:   o.FinalizedAt,
	}
}

func fromOrderDoc(id string, d orderDoc) entities.Order {
	people := make([]entities.Person, 0, len(d.People))
	for _, p := range d.People {
		people = append(people, entities.Person(p))
	}
	return entities.Order{
		ID:            id,
		People:        people,
		Donation:      d.Donation,
		Deposit:       d.Deposit,
		Fees:          d.Fees,
		Total:         d.Total,
		PaymentMethod: entities.PaymentMethod(d.PaymentMethod),
		PaymentID:     d.PaymentID,
		Charged:       d.Charged,
		Status:        entities.OrderStatus(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		FinalizedAt:   d.FinalizedAt,
	}
}
