package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type entry struct {
	msg    string
	fields map[string]any
}

type recorder struct {
	mu      sync.Mutex
	entries []entry
}

func (r *recorder) record(msg string, fields []zap.Field) {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{msg: msg, fields: enc.Fields})
}

func (r *recorder) Info(_ context.Context, msg string, fields ...zap.Field)  { r.record(msg, fields) }
func (r *recorder) Error(_ context.Context, msg string, fields ...zap.Field) { r.record(msg, fields) }

func TestLogging(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	r := chi.NewRouter()
	r.Use(Logging(rec))
	r.Get("/materials/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/materials/abc", nil))

	require.Len(t, rec.entries, 1)
	fields := rec.entries[0].fields
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/materials/abc", fields["path"])
	assert.Equal(t, "/materials/{id}", fields["route"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	h := Recovery(rec)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map write")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
	require.Len(t, rec.entries, 1)
	assert.Equal(t, "nil map write", rec.entries[0].fields["error"])
}
