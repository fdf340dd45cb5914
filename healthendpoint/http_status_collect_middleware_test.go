package healthendpoint_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"autoscale/healthendpoint"
)

var _ = Describe("HTTPStatusCollectMiddleware", func() {
	var (
		collector  healthendpoint.HTTPStatusCollector
		middleware *healthendpoint.HTTPStatusCollectMiddleware
	)

	BeforeEach(func() {
		collector = healthendpoint.NewHTTPStatusCollector("autoscale", "api")
		middleware = healthendpoint.NewHTTPStatusCollectMiddleware(collector)
	})

	concurrent := func() float64 {
		return testutil.ToFloat64(collector)
	}

	It("tracks the number of requests in flight", func() {
		handler := middleware.Collect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(concurrent()).To(Equal(float64(1)))
			w.WriteHeader(http.StatusOK)
		}))

		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, httptest.NewRequest("GET", "/v1.0/tenant-1/groups", nil))

		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(concurrent()).To(BeZero())
	})
})
