package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rescuesim/responder-service/internal/models"
	"github.com/rescuesim/responder-service/internal/service"
	"github.com/rescuesim/responder-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockResponderService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockResponderService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	handler := NewHandler(serviceMock, logger)
	router := gin.New()
	handler.RegisterRoutes(router.Group(""))
	return router, serviceMock
}

func makeRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetStats(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		GetResponderStats(gomock.Any()).
		Return(&models.ResponderStats{Active: 3, Enrolled: 10}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"active": 3, "enrolled": 10}`, w.Body.String())
}

func TestGetResponder(t *testing.T) {
	router, serviceMock := newTestRouter(t)
	responder := &models.Responder{
		ID:        64,
		Name:      ptr("Sean Bailey"),
		Latitude:  dec("34.16877"),
		Longitude: dec("-77.87045"),
		Available: ptr(true),
		Version:   7,
	}

	serviceMock.EXPECT().
		GetResponder(gomock.Any(), int64(64)).
		Return(responder, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/responder/64", "")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// the id serializes as a string, the version not at all
	assert.Equal(t, "64", body["id"])
	assert.Equal(t, "Sean Bailey", body["name"])
	assert.InDelta(t, 34.16877, body["latitude"], 0.000001)
	assert.NotContains(t, body, "version")
}

func TestGetResponderNotFound(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		GetResponder(gomock.Any(), int64(99)).
		Return(nil, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/responder/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetResponderBadID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := makeRequest(router, http.MethodGet, "/responder/sixty-four", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetResponderByName(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		GetResponderByName(gomock.Any(), "Sean Bailey").
		Return(&models.Responder{ID: 64, Name: ptr("Sean Bailey")}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/responders/byname/Sean%20Bailey", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetResponderByNameMultipleMatches(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		GetResponderByName(gomock.Any(), "Sean Bailey").
		Return(nil, fmt.Errorf("found 2 responders with name 'Sean Bailey': %w", service.ErrMultipleMatches)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/responders/byname/Sean%20Bailey", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "multiple responders share this name")
}

func TestListRespondersWithPagination(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		AllResponders(gomock.Any(), 10, 20).
		Return([]*models.Responder{{ID: 1}, {ID: 2}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/responders?limit=10&offset=20", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAvailableResponders(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		AvailableResponders(gomock.Any(), 0, 0).
		Return([]*models.Responder{}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/responders/available", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPersonResponders(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		PersonResponders(gomock.Any(), 0, 0).
		Return([]*models.Responder{{ID: 1, Person: ptr(true)}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/responders/person", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateResponder(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		CreateResponder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, responder *models.Responder) error {
			assert.Equal(t, "Sean Bailey", *responder.Name)
			assert.Equal(t, 4, *responder.BoatCapacity)
			responder.ID = 64
			return nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/responder", `{
		"name": "Sean Bailey",
		"phoneNumber": "555-0199",
		"boatCapacity": 4,
		"medicalKit": true,
		"available": true
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"64"`)
}

func TestCreateResponderValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	// name is required and must be at least two characters
	w := makeRequest(router, http.MethodPost, "/responder", `{"boatCapacity": 4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodPost, "/responder", `{"name": "X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateResponderBadJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	w := makeRequest(router, http.MethodPost, "/responder", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateResponders(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		CreateResponders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []*models.Responder) error {
			assert.Len(t, batch, 2)
			return nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/responders", `[
		{"name": "Unit 1"},
		{"name": "Unit 2"}
	]`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateResponder(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		UpdateResponder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, patch *models.Responder) (*service.UpdateResult, error) {
			assert.Equal(t, int64(64), patch.ID)
			require.NotNil(t, patch.Available)
			assert.False(t, *patch.Available)
			assert.Nil(t, patch.Name)
			return &service.UpdateResult{Success: true, Message: "Responder updated"}, nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPut, "/responder", `{"id": "64", "available": false}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateResponderRejectionStillNoContent(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		UpdateResponder(gomock.Any(), gomock.Any()).
		Return(&service.UpdateResult{Success: false, Message: "Responder state not changed"}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPut, "/responder", `{"id": "64", "available": false}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateResponderRequiresID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := makeRequest(router, http.MethodPut, "/responder", `{"available": false}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodPut, "/responder", `{"id": "abc", "available": false}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateResponderServiceFailure(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		UpdateResponder(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(1)

	w := makeRequest(router, http.MethodPut, "/responder", `{"id": "64", "available": false}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResetResponders(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		Reset(gomock.Any()).
		Return(nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/responders/reset", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClearResponders(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		Clear(gomock.Any()).
		Return(nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/responders/clear", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClearRespondersDeleteAll(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		DeleteAll(gomock.Any()).
		Return(nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/responders/clear?delete=all", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	w := makeRequest(router, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
