package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonzofleet/internal/config"
	"gonzofleet/internal/controllers"
	"gonzofleet/internal/models"
	"gonzofleet/internal/services"
)

// fakeOpenPhone points the SMS client at a local server for the
// duration of one test.
func fakeOpenPhone(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	controllers.SMSClient = &services.OpenPhoneClient{
		APIKey:  "test-key",
		From:    "+13125550000",
		BaseURL: server.URL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSendSMSSuccessIsLogged(t *testing.T) {
	r := setupRouter(t)
	token := authToken(t, r)

	fakeOpenPhone(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/v1/messages", req.URL.Path)
		assert.Equal(t, "test-key", req.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"data":{"id":"MSG123"}}`))
	})

	w := doJSON(r, http.MethodPost, "/sms/send", gin.H{
		"phone":   "+15555550100",
		"message": "Your application has been approved.",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "MSG123", body["message_id"])

	var logs []models.SmsLog
	require.NoError(t, config.DB.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, models.SmsSent, logs[0].Status)
	assert.Equal(t, "+15555550100", logs[0].Phone)
	assert.JSONEq(t, `{"data":{"id":"MSG123"}}`, string(logs[0].Response))
}

func TestSendSMSProviderFailureStillLogsExactlyOnce(t *testing.T) {
	r := setupRouter(t)
	token := authToken(t, r)

	fakeOpenPhone(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"carrier rejected"}`))
	})

	w := doJSON(r, http.MethodPost, "/sms/send", gin.H{
		"phone":   "+15555550101",
		"message": "hello",
	}, token)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "carrier rejected")

	var logs []models.SmsLog
	require.NoError(t, config.DB.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, models.SmsFailed, logs[0].Status)
	assert.JSONEq(t, `{"message":"carrier rejected"}`, string(logs[0].Response))
}

func TestSendSMSValidatesInput(t *testing.T) {
	r := setupRouter(t)
	token := authToken(t, r)

	w := doJSON(r, http.MethodPost, "/sms/send", gin.H{"phone": "+15555550102"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentsStubReturnsEmptyList(t *testing.T) {
	r := setupRouter(t)
	token := authToken(t, r)

	w := doJSON(r, http.MethodGet, "/payments/unrecognized", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
