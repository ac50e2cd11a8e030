//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody mirrors httperr.Response as clients see it.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		MessageCode string `json:"message_code"`
	} `json:"detail"`
}

// AssertSuccessResponse checks the status and decodes a 2xx body into target when given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, status int, target any) {
	t.Helper()

	if !assert.Equalf(t, status, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target != nil && status >= 200 && status < 300 {
		assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains msg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) ErrorBody {
	t.Helper()

	assert.Equalf(t, status, w.Code, "unexpected status, body: %s", w.Body.String())

	var body ErrorBody
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "undecodable error body: %s", w.Body.String())
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
	return body
}

// AssertMessageCode checks a coupon-style error carrying a client message code.
func AssertMessageCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	body := AssertErrorResponse(t, w, status, "")
	assert.Equal(t, code, body.Detail.MessageCode)
}
