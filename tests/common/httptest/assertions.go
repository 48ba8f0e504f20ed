//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"foody/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// decodes the body into target when the response has the expected 2xx status
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
	}
}

// checks the status and that the error message contains expectedMsg (skipped when empty)
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()
	assertError(t, w, expectedStatus, func(resp httperr.Response) {
		if expectedMsg != "" {
			assert.Contains(t, resp.Error.Message, expectedMsg, "error message mismatch")
		}
	})
}

// checks the status and the machine-readable error code
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	t.Helper()
	assertError(t, w, expectedStatus, func(resp httperr.Response) {
		assert.Equal(t, expectedCode, resp.Error.Code, "error code mismatch")
	})
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, check func(httperr.Response)) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	if assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "undecodable error body: %s", w.Body.String()) {
		check(resp)
	}
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
