package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postPromo(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/promo/validate", ValidatePromoHandler)

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/promo/validate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidatePromo_Success(t *testing.T) {
	w := postPromo(t, gin.H{"code": "WELCOME10", "amount": 6000})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid    bool    `json:"valid"`
		Code     string  `json:"code"`
		Discount float64 `json:"discount"`
		Message  string  `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, "WELCOME10", resp.Code)
	assert.Equal(t, 600.0, resp.Discount)
	assert.Contains(t, resp.Message, "600")
}

func TestValidatePromo_InvalidCode(t *testing.T) {
	w := postPromo(t, gin.H{"code": "XYZ", "amount": 5000})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["valid"])
	assert.NotEmpty(t, resp["error"])
}

func TestValidatePromo_BelowMinimum(t *testing.T) {
	w := postPromo(t, gin.H{"code": "SAVE500", "amount": 9000})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["valid"])
	assert.Contains(t, resp["error"], "minimum")
}

func TestValidatePromo_MissingFields(t *testing.T) {
	w := postPromo(t, gin.H{"code": "WELCOME10"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
