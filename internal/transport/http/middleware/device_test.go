package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pkgdevice "github.com/portal360/admin-api/internal/pkg/device"
	"github.com/stretchr/testify/assert"
)

func TestDeviceID_KeepsClientValue(t *testing.T) {
	var got string
	h := DeviceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = DeviceIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(pkgdevice.Header, "browser-abc")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "browser-abc", got)
	assert.Equal(t, "browser-abc", rr.Header().Get(pkgdevice.Header))
}

func TestDeviceID_AssignsWhenMissing(t *testing.T) {
	var got string
	h := DeviceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = DeviceIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.NotEmpty(t, got)
	assert.Equal(t, got, rr.Header().Get(pkgdevice.Header))
}
