package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tradein/config"
	"tradein/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, cacheTTL time.Duration) service.LedgerService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewLedgerService(ClientParams{
		Config: &config.Config{
			Ledger: &config.LedgerConfig{
				BaseURL:            srv.URL,
				AccessToken:        "token-1",
				MetafieldNamespace: "loyalty",
				MetafieldKey:       "points",
				CacheTTL:           cacheTTL,
			},
		},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	return svc
}

func TestClient_FindCustomerByEmail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/customers/search.json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-1", r.Header.Get("X-Access-Token"))
		assert.Equal(t, "email:owner@example.com", r.URL.Query().Get("query"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"customers": []map[string]any{
				{"id": 9, "email": "similar-owner@example.com"},
				{"id": 42, "email": "owner@example.com"},
			},
		})
	})
	svc := newTestClient(t, mux, 0)

	customer, err := svc.FindCustomerByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, "42", customer.ID)
	assert.Equal(t, "owner@example.com", customer.Email)
}

func TestClient_FindCustomerByEmail_NoExactMatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/customers/search.json", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"customers": []map[string]any{{"id": 9, "email": "other@example.com"}},
		})
	})
	svc := newTestClient(t, mux, 0)

	_, err := svc.FindCustomerByEmail(context.Background(), "owner@example.com")
	assert.ErrorIs(t, err, service.ErrLedgerCustomerNotFound)
}

func TestClient_GetPointsBalance_ParsesDecimalString(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/customers/42/metafields.json", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"metafields": []map[string]any{
				{"id": 7, "namespace": "other", "key": "points", "value": "999"},
				{"id": 8, "namespace": "loyalty", "key": "points", "value": "1500"},
			},
		})
	})
	svc := newTestClient(t, mux, 0)

	balance, err := svc.GetPointsBalance(context.Background(), &service.LedgerCustomer{ID: "42"})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), balance)
}

func TestClient_GetPointsBalance_MissingMetafieldIsZero(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/customers/42/metafields.json", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"metafields": []map[string]any{}})
	})
	svc := newTestClient(t, mux, 0)

	balance, err := svc.GetPointsBalance(context.Background(), &service.LedgerCustomer{ID: "42"})
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestClient_GetPointsBalance_CachesReads(t *testing.T) {
	var calls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/customers/42/metafields.json", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"metafields": []map[string]any{
				{"id": 8, "namespace": "loyalty", "key": "points", "value": "1500"},
			},
		})
	})
	svc := newTestClient(t, mux, time.Minute)
	customer := &service.LedgerCustomer{ID: "42"}

	for i := 0; i < 3; i++ {
		balance, err := svc.GetPointsBalance(context.Background(), customer)
		require.NoError(t, err)
		assert.Equal(t, int64(1500), balance)
	}
	assert.Equal(t, int64(1), calls.Load())
}

func TestClient_AddPoints_AdditiveWrite(t *testing.T) {
	var written metafieldPayload
	mux := http.NewServeMux()
	mux.HandleFunc("/customers/42/metafields.json", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"metafields": []map[string]any{
				{"id": 8, "namespace": "loyalty", "key": "points", "value": "1500"},
			},
		})
	})
	mux.HandleFunc("/customers/42/metafields/8.json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var body map[string]metafieldPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		written = body["metafield"]

		w.WriteHeader(http.StatusOK)
	})
	svc := newTestClient(t, mux, 0)

	newBalance, err := svc.AddPoints(context.Background(), &service.LedgerCustomer{ID: "42"}, 3000)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), newBalance)
	assert.Equal(t, "4500", written.Value)
	assert.Equal(t, "loyalty", written.Namespace)
	assert.Equal(t, "points", written.Key)
}

func TestClient_AddPoints_CreatesMetafieldWhenMissing(t *testing.T) {
	var created bool
	mux := http.NewServeMux()
	mux.HandleFunc("/customers/42/metafields.json", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			created = true

			var body map[string]metafieldPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "500", body["metafield"].Value)

			w.WriteHeader(http.StatusCreated)

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"metafields": []map[string]any{}})
	})
	svc := newTestClient(t, mux, 0)

	newBalance, err := svc.AddPoints(context.Background(), &service.LedgerCustomer{ID: "42"}, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), newBalance)
	assert.True(t, created)
}

func TestClient_StatusClassification(t *testing.T) {
	cases := []struct {
		code int
		want error
	}{
		{http.StatusUnauthorized, service.ErrLedgerAuth},
		{http.StatusForbidden, service.ErrLedgerAuth},
		{http.StatusNotFound, service.ErrLedgerCustomerNotFound},
		{http.StatusUnprocessableEntity, service.ErrLedgerValidation},
		{http.StatusTooManyRequests, service.ErrLedgerRateLimited},
	}

	for _, tc := range cases {
		svc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.code)
		}), 0)

		_, err := svc.GetPointsBalance(context.Background(), &service.LedgerCustomer{ID: "42"})
		assert.ErrorIs(t, err, tc.want, "status %d", tc.code)
	}
}

func TestClient_NonIntegerBalanceRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/customers/42/metafields.json", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"metafields": []map[string]any{
				{"id": 8, "namespace": "loyalty", "key": "points", "value": "12.5a"},
			},
		})
	})
	svc := newTestClient(t, mux, 0)

	_, err := svc.GetPointsBalance(context.Background(), &service.LedgerCustomer{ID: "42"})
	assert.ErrorIs(t, err, service.ErrLedgerValidation)
}
