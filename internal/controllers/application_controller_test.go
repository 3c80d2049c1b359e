package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonzofleet/internal/config"
	"gonzofleet/internal/models"
)

func TestWebhookStoresJSONPayloadVerbatim(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook/fluent-forms", strings.NewReader(`{"name":"Jane"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "received", body["status"])
	require.NotNil(t, body["application_id"])

	var application models.Application
	require.NoError(t, config.DB.First(&application, uint(body["application_id"].(float64))).Error)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.JSONEq(t, `{"name":"Jane"}`, string(application.FormData))
}

func TestWebhookAcceptsFormEncodedBodies(t *testing.T) {
	r := setupRouter(t)

	form := url.Values{}
	form.Set("names_first_name", "Jane")
	form.Set("phone", "555-0100")

	req := httptest.NewRequest(http.MethodPost, "/webhook/fluent-forms", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	var application models.Application
	require.NoError(t, config.DB.First(&application, uint(body["application_id"].(float64))).Error)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.JSONEq(t, `{"names_first_name":"Jane","phone":"555-0100"}`, string(application.FormData))
}

func TestWebhookAcceptsMultipartBodies(t *testing.T) {
	r := setupRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("names_first_name", "Jane"))
	require.NoError(t, mw.WriteField("phone", "555-0100"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/webhook/fluent-forms", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	var application models.Application
	require.NoError(t, config.DB.First(&application, uint(body["application_id"].(float64))).Error)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.JSONEq(t, `{"names_first_name":"Jane","phone":"555-0100"}`, string(application.FormData))
}

func TestWebhookRejectsInvalidJSON(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook/fluent-forms", strings.NewReader(`{broken`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestListApplicationsFilteredByStatus(t *testing.T) {
	r := setupRouter(t)
	token := authToken(t, r)

	require.NoError(t, config.DB.Create(&models.Application{Status: models.ApplicationPending}).Error)
	require.NoError(t, config.DB.Create(&models.Application{Status: models.ApplicationApproved}).Error)

	w := doJSON(r, http.MethodGet, "/applications?status=pending", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	applications := decodeList(t, w)
	require.Len(t, applications, 1)
	assert.Equal(t, models.ApplicationPending, applications[0]["status"])
}

func TestUpdateApplicationStatusAndDriverLink(t *testing.T) {
	r := setupRouter(t)
	token := authToken(t, r)

	driver := models.Driver{FirstName: "Link", BillingType: models.BillingFlat}
	createDriver(t, &driver)

	application := models.Application{Status: models.ApplicationPending}
	require.NoError(t, config.DB.Create(&application).Error)

	w := doJSON(r, http.MethodPatch, "/applications/"+uintString(application.ID), gin.H{
		"status":    models.ApplicationApproved,
		"driver_id": driver.ID,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, models.ApplicationApproved, got["status"])
	assert.EqualValues(t, driver.ID, got["driver_id"])

	// Linking to a driver that does not exist fails.
	w = doJSON(r, http.MethodPatch, "/applications/"+uintString(application.ID), gin.H{
		"driver_id": 9999,
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateApplicationRejectsUnknownStatus(t *testing.T) {
	r := setupRouter(t)
	token := authToken(t, r)

	application := models.Application{Status: models.ApplicationPending}
	require.NoError(t, config.DB.Create(&application).Error)

	w := doJSON(r, http.MethodPatch, "/applications/"+uintString(application.ID), gin.H{
		"status": "archived",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
