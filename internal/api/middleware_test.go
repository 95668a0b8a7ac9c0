package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		trustProxy bool
		want       string
	}{
		{name: "x-forwarded-for trusted", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, trustProxy: true, want: "1.2.3.4"},
		{name: "x-real-ip trusted", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, trustProxy: true, want: "9.8.7.6"},
		{name: "x-forwarded-for ignored", headers: map[string]string{"X-Forwarded-For": "1.2.3.4"}, remoteAddr: "10.0.0.2:80", want: "10.0.0.2"},
		{name: "x-real-ip ignored", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, remoteAddr: "10.0.0.3:80", want: "10.0.0.3"},
		{name: "remote addr", remoteAddr: "10.0.0.1:12345", trustProxy: true, want: "10.0.0.1"},
		{name: "invalid remote addr", remoteAddr: "not-an-addr", want: "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}

			assert.Equal(t, tt.want, ClientIP(req, tt.trustProxy))
		})
	}
}

func TestWithLoggerPassesStatusAndRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo", RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	WithLogger(false)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Echo"))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusOf(errPasswordMismatch))
	assert.Equal(t, http.StatusRequestEntityTooLarge, statusOf(errBodyTooLarge))
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError))
}
