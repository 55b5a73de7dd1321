package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindStrict decodes the JSON request body into v, rejecting unknown fields,
// then runs struct-tag validation. Unknown fields are a client error, not
// silently dropped input.
func bindStrict(c echo.Context, v any) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return errors.New("request body is empty")
	}

	contentType := req.Header.Get(echo.HeaderContentType)
	if contentType != "" && !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return errors.Errorf("unsupported content type: %s", contentType)
	}

	decoder := json.NewDecoder(req.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return errors.Wrap(err, "decode request body")
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return errors.New("request body must contain a single JSON object")
	}

	if err := c.Validate(v); err != nil {
		return err
	}

	return nil
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
