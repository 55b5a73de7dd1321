// Package ledger talks to the commerce platform that owns the per-customer
// loyalty-points balance. The balance lives in a customer metafield whose
// value is a decimal string.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tradein/config"
	"tradein/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	headerAccessToken = "X-Access-Token"
	defaultTimeout    = 10 * time.Second
)

type client struct {
	baseURL    string
	token      string
	namespace  string
	key        string
	httpClient *http.Client
	cache      *ttlCache
	logger     *slog.Logger
}

// ClientParams holds dependencies for the ledger client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewLedgerService creates the REST ledger client.
func NewLedgerService(params ClientParams) (service.LedgerService, error) {
	cfg := params.Config.Ledger
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("ledger base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	namespace := cfg.MetafieldNamespace
	if namespace == "" {
		namespace = "loyalty"
	}
	key := cfg.MetafieldKey
	if key == "" {
		key = "points"
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.AccessToken,
		namespace:  namespace,
		key:        key,
		httpClient: &http.Client{Timeout: timeout},
		cache:      newTTLCache(cfg.CacheTTL, nil),
		logger:     params.Logger,
	}, nil
}

type customerPayload struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type metafieldPayload struct {
	ID        int64  `json:"id"`
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      string `json:"type,omitempty"`
}

func (c *client) FindCustomerByEmail(ctx context.Context, email string) (*service.LedgerCustomer, error) {
	cacheKey := "customer:" + email
	if cached, ok := c.cache.get(cacheKey); ok {
		return cached.(*service.LedgerCustomer), nil
	}

	endpoint := fmt.Sprintf("%s/customers/search.json?query=%s",
		c.baseURL, url.QueryEscape("email:"+email))

	var out struct {
		Customers []customerPayload `json:"customers"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}

	// The search endpoint matches loosely; require an exact email match.
	for _, candidate := range out.Customers {
		if strings.EqualFold(candidate.Email, email) {
			customer := &service.LedgerCustomer{
				ID:    strconv.FormatInt(candidate.ID, 10),
				Email: candidate.Email,
			}
			c.cache.set(cacheKey, customer)

			return customer, nil
		}
	}

	return nil, service.ErrLedgerCustomerNotFound
}

func (c *client) GetPointsBalance(ctx context.Context, customer *service.LedgerCustomer) (int64, error) {
	cacheKey := "balance:" + customer.ID
	if cached, ok := c.cache.get(cacheKey); ok {
		return cached.(int64), nil
	}

	balance, _, err := c.fetchBalance(ctx, customer)
	if err != nil {
		return 0, err
	}
	c.cache.set(cacheKey, balance)

	return balance, nil
}

func (c *client) AddPoints(ctx context.Context, customer *service.LedgerCustomer, delta int64) (int64, error) {
	// Always read through for the write path; a cached balance must never
	// feed a ledger mutation.
	balance, metafieldID, err := c.fetchBalance(ctx, customer)
	if err != nil {
		return 0, err
	}

	newBalance := balance + delta
	if err := c.writeBalance(ctx, customer, metafieldID, newBalance); err != nil {
		return 0, err
	}
	c.cache.set("balance:"+customer.ID, newBalance)

	return newBalance, nil
}

// fetchBalance reads the points metafield. A customer without the metafield
// has a zero balance; the returned metafield ID is 0 in that case.
func (c *client) fetchBalance(ctx context.Context, customer *service.LedgerCustomer) (int64, int64, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/metafields.json", c.baseURL, customer.ID)

	var out struct {
		Metafields []metafieldPayload `json:"metafields"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return 0, 0, err
	}

	for _, field := range out.Metafields {
		if field.Namespace != c.namespace || field.Key != c.key {
			continue
		}
		balance, err := strconv.ParseInt(strings.TrimSpace(field.Value), 10, 64)
		if err != nil {
			return 0, 0, errors.Wrapf(service.ErrLedgerValidation,
				"points metafield holds a non-integer value %q", field.Value)
		}

		return balance, field.ID, nil
	}

	return 0, 0, nil
}

func (c *client) writeBalance(ctx context.Context, customer *service.LedgerCustomer, metafieldID, balance int64) error {
	payload := map[string]metafieldPayload{
		"metafield": {
			ID:        metafieldID,
			Namespace: c.namespace,
			Key:       c.key,
			Value:     strconv.FormatInt(balance, 10),
			Type:      "number_integer",
		},
	}

	if metafieldID > 0 {
		endpoint := fmt.Sprintf("%s/customers/%s/metafields/%d.json", c.baseURL, customer.ID, metafieldID)

		return c.doJSON(ctx, http.MethodPut, endpoint, payload, nil)
	}

	endpoint := fmt.Sprintf("%s/customers/%s/metafields.json", c.baseURL, customer.ID)

	return c.doJSON(ctx, http.MethodPost, endpoint, payload, nil)
}

func (c *client) doJSON(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode ledger request")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build ledger request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(headerAccessToken, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "ledger request failed")
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode ledger response")
	}

	return nil
}

func classifyStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return service.ErrLedgerAuth
	case code == http.StatusNotFound:
		return service.ErrLedgerCustomerNotFound
	case code == http.StatusUnprocessableEntity:
		return service.ErrLedgerValidation
	case code == http.StatusTooManyRequests:
		return service.ErrLedgerRateLimited
	default:
		return errors.Errorf("ledger returned unexpected status %d", code)
	}
}
