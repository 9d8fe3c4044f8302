package middleware

import (
	"context"
	"net/http"

	pkgdevice "github.com/portal360/admin-api/internal/pkg/device"
)

const deviceKey contextKey = "device"

// DeviceID captures the per-browser identifier the portal sends with every
// request. Requests without one get a fresh UUID, echoed back so the client
// can persist it.
func DeviceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pkgdevice.Resolve(r.Header.Get(pkgdevice.Header))
		w.Header().Set(pkgdevice.Header, id)
		ctx := context.WithValue(r.Context(), deviceKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DeviceIDFromContext extracts the device identifier set by DeviceID.
func DeviceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(deviceKey).(string)
	return id
}
