package handlers

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"mirror-store/internal/models"
)

type fakeItemStore struct {
	items []models.Item
}

func (s *fakeItemStore) List(ctx context.Context) ([]models.Item, error) {
	return s.items, nil
}

func (s *fakeItemStore) Get(ctx context.Context, id string) (models.Item, error) {
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, pgx.ErrNoRows
}

func (s *fakeItemStore) Insert(ctx context.Context, it models.Item) error {
	s.items = append(s.items, it)
	return nil
}

func (s *fakeItemStore) Delete(ctx context.Context, id string) (bool, error) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeOrderStore struct {
	orders []models.Order
}

func (s *fakeOrderStore) Insert(ctx context.Context, o models.Order) error {
	s.orders = append(s.orders, o)
	return nil
}

func (s *fakeOrderStore) List(ctx context.Context) ([]models.Order, error) {
	return s.orders, nil
}

func (s *fakeOrderStore) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *fakeOrderStore) Get(ctx context.Context, id string) (models.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, pgx.ErrNoRows
}

func (s *fakeOrderStore) Delete(ctx context.Context, id string) (bool, error) {
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (s *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) Upsert(ctx context.Context, u models.User) error {
	if existing, ok := s.users[u.Email]; ok {
		existing.Name = u.Name
		s.users[u.Email] = existing
		return nil
	}
	s.users[u.Email] = u
	return nil
}

func (s *fakeUserStore) Role(ctx context.Context, email string) (string, error) {
	u, ok := s.users[email]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return u.Role, nil
}

func (s *fakeUserStore) PromoteAdmin(ctx context.Context, email string) (bool, error) {
	u, ok := s.users[email]
	if !ok {
		return false, nil
	}
	u.Role = "admin"
	s.users[email] = u
	return true, nil
}

type fakePaymentStore struct {
	payments []models.Payment
	fail     bool
}

func (s *fakePaymentStore) Insert(ctx context.Context, p models.Payment) error {
	if s.fail {
		return errors.New("insert failed")
	}
	s.payments = append(s.payments, p)
	return nil
}

type fakeOrderPayer struct {
	paidID    string
	paidTxnID string
	fail      bool
}

func (s *fakeOrderPayer) MarkPaid(ctx context.Context, id string, transactionID string) (bool, error) {
	if s.fail {
		return false, errors.New("update failed")
	}
	s.paidID = id
	s.paidTxnID = transactionID
	return true, nil
}

type fakePublisher struct {
	keys     []string
	payloads []any
	fail     bool
}

func (s *fakePublisher) Publish(ctx context.Context, key string, payload any) error {
	if s.fail {
		return errors.New("publish failed")
	}
	s.keys = append(s.keys, key)
	s.payloads = append(s.payloads, payload)
	return nil
}

type fakeGateway struct {
	amount   int64
	currency string
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	g.amount = amountCents
	g.currency = currency
	return "pi_test_secret", nil
}
