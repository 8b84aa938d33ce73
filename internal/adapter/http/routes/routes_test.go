package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"measure_service/internal/adapter/http/handlers"
	"measure_service/internal/adapter/persistence/repository"
	"measure_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecase.NewMeasureUseCase(repository.NewMeasureMemoryRepository(), nil, nil, nil, nil, usecase.MeasureUseCaseConfig{})
	return NewRouter(zap.NewNop(), handlers.NewMeasureHandler(uc, nil))
}

func TestNewRouter_RoutesAreMountedAtRootAndV1(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{method: http.MethodGet, path: "/v1/ping", status: http.StatusOK},
		{method: http.MethodGet, path: "/measures/cust-1", status: http.StatusNotFound},
		{method: http.MethodGet, path: "/v1/measures/cust-1?measure_type=GAS", status: http.StatusNotFound},
		{method: http.MethodPost, path: "/upload", body: `{}`, status: http.StatusBadRequest},
		{method: http.MethodPost, path: "/v1/upload", body: `{"customer_code":"c","measure_datetime":"2024-03-01","measure_type":"SOLAR","image":"x"}`, status: http.StatusBadRequest},
		{method: http.MethodPatch, path: "/confirm", body: `{"measure_uuid":"nope","confirmed_value":"1"}`, status: http.StatusNotFound},
		{method: http.MethodPost, path: "/v1/confirm", body: `{"measure_uuid":"nope","confirmed_value":"1"}`, status: http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d (%s)", tc.method, tc.path, tc.status, w.Code, w.Body.String())
		}
	}
}

func TestNewRouter_RecoversFromPanics(t *testing.T) {
	r := newTestRouter()
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError || !bytes.Contains(w.Body.Bytes(), []byte("INTERNAL_ERROR")) {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}
