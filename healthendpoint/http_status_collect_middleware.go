package healthendpoint

import (
	"net/http"
)

// HTTPStatusCollectMiddleware counts in-flight API requests through an
// HTTPStatusCollector.
type HTTPStatusCollectMiddleware struct {
	collector HTTPStatusCollector
}

func NewHTTPStatusCollectMiddleware(collector HTTPStatusCollector) *HTTPStatusCollectMiddleware {
	return &HTTPStatusCollectMiddleware{collector: collector}
}

func (m *HTTPStatusCollectMiddleware) Collect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.collector.IncConcurrentHTTPRequest()
		defer m.collector.DecConcurrentHTTPRequest()
		next.ServeHTTP(w, r)
	})
}
