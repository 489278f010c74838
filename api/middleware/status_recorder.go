package middleware

import "net/http"

// statusRecorder captures the status code a downstream handler writes. A zero
// status means WriteHeader was never called and the response defaulted to 200.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
