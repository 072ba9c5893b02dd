package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		pattern    string
		path       string
		handler    http.HandlerFunc
		wantRoute  string
		wantStatus string
	}{
		{
			name:       "route pattern label, implicit 200",
			method:     http.MethodGet,
			pattern:    "/items/{id}",
			path:       "/items/665f1c2e9b1d4a0012345678",
			handler:    func(http.ResponseWriter, *http.Request) {},
			wantRoute:  "/items/{id}",
			wantStatus: "200",
		},
		{
			name:    "explicit status",
			method:  http.MethodPost,
			pattern: "/items",
			path:    "/items",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
			},
			wantRoute:  "/items",
			wantStatus: "201",
		},
		{
			name:       "unmatched path",
			method:     http.MethodDelete,
			pattern:    "/items",
			path:       "/nowhere",
			handler:    func(http.ResponseWriter, *http.Request) {},
			wantRoute:  "unmatched",
			wantStatus: "404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := chi.NewRouter()
			r.Use(Middleware)
			r.Method(tt.method, tt.pattern, tt.handler)

			counter := RequestsTotal.WithLabelValues(tt.method, tt.wantRoute, tt.wantStatus)
			before := testutil.ToFloat64(counter)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0)
		})
	}
}

// Not parallel: TestHandler records uploads too.
func TestRecordImageUpload(t *testing.T) {
	success := ImageUploadsTotal.WithLabelValues("success")
	failure := ImageUploadsTotal.WithLabelValues("error")
	successBefore := testutil.ToFloat64(success)
	failureBefore := testutil.ToFloat64(failure)

	RecordImageUpload(nil)
	RecordImageUpload(nil)
	RecordImageUpload(errors.New("image host timeout"))

	assert.InDelta(t, successBefore+2, testutil.ToFloat64(success), 0)
	assert.InDelta(t, failureBefore+1, testutil.ToFloat64(failure), 0)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	RecordImageUpload(nil)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `image_uploads_total{status="success"}`)
}
