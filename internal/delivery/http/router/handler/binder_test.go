package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradein/internal/delivery/http/validator"
	"tradein/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBindContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindStrict_ValidBody(t *testing.T) {
	c := newBindContext(t, `{"carrier":"UPS","tracking_number":"1Z999","shipping_date":"2026-08-20"}`)

	var input usecase.SubmitShippingInput
	require.NoError(t, bindStrict(c, &input))
	assert.Equal(t, "UPS", input.Carrier)
	assert.Equal(t, "1Z999", input.TrackingNumber)
}

func TestBindStrict_UnknownFieldRejected(t *testing.T) {
	c := newBindContext(t, `{"carrier":"UPS","tracking_number":"1Z999","shipping_date":"2026-08-20","trackingnumber":"typo"}`)

	var input usecase.SubmitShippingInput
	err := bindStrict(c, &input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestBindStrict_TrailingContentRejected(t *testing.T) {
	c := newBindContext(t, `{"carrier":"UPS","tracking_number":"1Z999","shipping_date":"2026-08-20"}{"carrier":"FedEx"}`)

	var input usecase.SubmitShippingInput
	assert.Error(t, bindStrict(c, &input))
}

func TestBindStrict_EmptyBodyRejected(t *testing.T) {
	c := newBindContext(t, "")

	var input usecase.SubmitShippingInput
	assert.Error(t, bindStrict(c, &input))
}

func TestBindStrict_ValidationFailureSurfaces(t *testing.T) {
	c := newBindContext(t, `{"carrier":"UPS"}`)

	var input usecase.SubmitShippingInput
	assert.Error(t, bindStrict(c, &input))
}
