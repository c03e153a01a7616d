//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	assert.False(t, errorResponse.Success, "error responses must carry success=false")

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// DecodeData unwraps the `data` member of a success envelope into target.
func DecodeData(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()

	envelope := struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{}
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String()) {
		return
	}
	assert.True(t, envelope.Success, "expected success=true: %s", w.Body.String())
	assert.NoError(t, json.Unmarshal(envelope.Data, target), w.Body.String())
}
