package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ping error
		want string
	}{
		{name: "database up", want: `{"status":"SERVING","database":"up"}`},
		{name: "database down still serving", ping: errors.New("no reachable servers"), want: `{"status":"SERVING","database":"down"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(PingFunc(func(context.Context) error { return tt.ping }))

			rec := httptest.NewRecorder()
			h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
