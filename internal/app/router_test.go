package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/you-humble/material-catalog/platform/logger"
	"github.com/you-humble/material-catalog/platform/metrics"
)

const allowedOrigin = "http://localhost:5173"

type stubMaterials struct{}

func (stubMaterials) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("handler exploded")
	})
	return r
}

func newTestRouter() *chi.Mux {
	healthCheck := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return NewRouter(stubMaterials{}, healthCheck, allowedOrigin)
}

func TestRouterCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		header map[string]string
		assert func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "allowed origin",
			method: http.MethodGet,
			header: map[string]string{"Origin": allowedOrigin},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			},
		},
		{
			name:   "other origin gets no allow header",
			method: http.MethodGet,
			header: map[string]string{"Origin": "http://evil.example"},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:   "preflight from allowed origin",
			method: http.MethodOptions,
			header: map[string]string{
				"Origin":                         allowedOrigin,
				"Access-Control-Request-Method":  http.MethodPut,
				"Access-Control-Request-Headers": "Content-Type",
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, http.MethodPut, rec.Header().Get("Access-Control-Allow-Methods"))
			},
		},
		{
			name:   "preflight from other origin",
			method: http.MethodOptions,
			header: map[string]string{
				"Origin":                        "http://evil.example",
				"Access-Control-Request-Method": http.MethodDelete,
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/materials/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			newTestRouter().ServeHTTP(rec, req)

			tt.assert(t, rec)
		})
	}
}

// Not parallel: swaps the global logger.
func TestRouterPanicIsLoggedAndCounted(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.SetCore(core)
	t.Cleanup(logger.SetNopLogger)

	const route = "/materials/boom"
	counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, route, "500")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, route, nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())

	assert.Equal(t, 1, logs.FilterMessage("Recovered from panic in request handling").Len())

	access := logs.FilterMessage("HTTP request").FilterField(zap.String("route", route)).All()
	require.Len(t, access, 1)
	assert.Equal(t, int64(http.StatusInternalServerError), access[0].ContextMap()["status"])

	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0)
}
