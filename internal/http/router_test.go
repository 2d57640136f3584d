package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirror-store/internal/auth"
	"mirror-store/internal/http/handlers"
	"mirror-store/internal/models"
)

type userStoreStub struct {
	roles map[string]string
}

func (s *userStoreStub) List(ctx context.Context) ([]models.User, error) { return nil, nil }
func (s *userStoreStub) Upsert(ctx context.Context, u models.User) error { return nil }
func (s *userStoreStub) Role(ctx context.Context, email string) (string, error) {
	role, ok := s.roles[email]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return role, nil
}
func (s *userStoreStub) PromoteAdmin(ctx context.Context, email string) (bool, error) {
	return true, nil
}

type itemStoreStub struct{}

func (s *itemStoreStub) List(ctx context.Context) ([]models.Item, error) { return nil, nil }
func (s *itemStoreStub) Get(ctx context.Context, id string) (models.Item, error) {
	return models.Item{}, pgx.ErrNoRows
}
func (s *itemStoreStub) Insert(ctx context.Context, it models.Item) error   { return nil }
func (s *itemStoreStub) Delete(ctx context.Context, id string) (bool, error) { return true, nil }

type orderStoreStub struct{}

func (s *orderStoreStub) Insert(ctx context.Context, o models.Order) error { return nil }
func (s *orderStoreStub) List(ctx context.Context) ([]models.Order, error) { return nil, nil }
func (s *orderStoreStub) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return nil, nil
}
func (s *orderStoreStub) Get(ctx context.Context, id string) (models.Order, error) {
	return models.Order{}, pgx.ErrNoRows
}
func (s *orderStoreStub) Delete(ctx context.Context, id string) (bool, error) { return true, nil }

type reviewStoreStub struct{}

func (s *reviewStoreStub) List(ctx context.Context) ([]models.Review, error)  { return nil, nil }
func (s *reviewStoreStub) Insert(ctx context.Context, rv models.Review) error { return nil }

type profileStoreStub struct{}

func (s *profileStoreStub) Get(ctx context.Context, email string) (models.Profile, error) {
	return models.Profile{}, pgx.ErrNoRows
}
func (s *profileStoreStub) Insert(ctx context.Context, p models.Profile) error { return nil }
func (s *profileStoreStub) Update(ctx context.Context, p models.Profile) (bool, error) {
	return true, nil
}

type paymentStoreStub struct{}

func (s *paymentStoreStub) Insert(ctx context.Context, p models.Payment) error { return nil }

type orderPayerStub struct{}

func (s *orderPayerStub) MarkPaid(ctx context.Context, id, txn string) (bool, error) {
	return true, nil
}

type gatewayStub struct{}

func (s *gatewayStub) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	return "pi_test_secret", nil
}

func newTestRouter(tokens *auth.TokenService) http.Handler {
	log := zerolog.Nop()
	users := &userStoreStub{roles: map[string]string{
		"root@example.com":  auth.RoleAdmin,
		"alice@example.com": "",
	}}
	return NewRouter(&Deps{
		Tokens:   tokens,
		Users:    &handlers.UsersHandler{Store: users, Tokens: tokens, Log: log},
		Items:    &handlers.ItemsHandler{Store: &itemStoreStub{}, Log: log},
		Orders:   &handlers.OrdersHandler{Store: &orderStoreStub{}, Log: log},
		Reviews:  &handlers.ReviewsHandler{Store: &reviewStoreStub{}, Log: log},
		Profiles: &handlers.ProfilesHandler{Store: &profileStoreStub{}, Log: log},
		Intents:  &handlers.PaymentIntentHandler{Gateway: &gatewayStub{}, Log: log},
		Confirm: &handlers.ConfirmPaymentHandler{
			Payments: &paymentStoreStub{},
			Orders:   &orderPayerStub{},
			Log:      log,
		},
		Log: log,
	})
}

var protectedRoutes = []struct {
	method string
	target string
}{
	{http.MethodPost, "/item"},
	{http.MethodDelete, "/item/i1"},
	{http.MethodGet, "/order"},
	{http.MethodGet, "/order/o1"},
	{http.MethodDelete, "/order/o1"},
	{http.MethodPatch, "/order/o1"},
	{http.MethodPost, "/create-payment-intent"},
	{http.MethodGet, "/user"},
	{http.MethodPost, "/profile"},
	{http.MethodPatch, "/profile/alice@example.com"},
	{http.MethodGet, "/profile/alice@example.com"},
	{http.MethodPut, "/user/admin/bob@example.com"},
}

func TestProtectedRoutesRequireCredential(t *testing.T) {
	h := newTestRouter(auth.NewTokenService("test-secret", time.Hour))

	for _, rt := range protectedRoutes {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", rt.method, rt.target)
	}
}

func TestProtectedRoutesRejectBadToken(t *testing.T) {
	h := newTestRouter(auth.NewTokenService("test-secret", time.Hour))

	for _, rt := range protectedRoutes {
		req := httptest.NewRequest(rt.method, rt.target, nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", rt.method, rt.target)
	}
}

func TestAdminRouteChecksStoredRole(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	h := newTestRouter(tokens)

	promote := func(email string) int {
		token, err := tokens.Issue(auth.Identity{Email: email})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/user/admin/bob@example.com", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, promote("root@example.com"))
	assert.Equal(t, http.StatusForbidden, promote("alice@example.com"))
	assert.Equal(t, http.StatusForbidden, promote("ghost@example.com"))
}

func TestPublicRoutesNeedNoCredential(t *testing.T) {
	h := newTestRouter(auth.NewTokenService("test-secret", time.Hour))

	for _, rt := range []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/", ""},
		{http.MethodGet, "/health", ""},
		{http.MethodGet, "/item", ""},
		{http.MethodGet, "/review", ""},
		{http.MethodGet, "/admin/alice@example.com", ""},
		{http.MethodPut, "/user/alice@example.com", `{"name":"Alice"}`},
	} {
		var req *http.Request
		if rt.body == "" {
			req = httptest.NewRequest(rt.method, rt.target, nil)
		} else {
			req = httptest.NewRequest(rt.method, rt.target, strings.NewReader(rt.body))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "%s %s", rt.method, rt.target)
	}
}

func TestValidTokenReachesHandler(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	h := newTestRouter(tokens)

	token, err := tokens.Issue(auth.Identity{Email: "alice@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/order", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
