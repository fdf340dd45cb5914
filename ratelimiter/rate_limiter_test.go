package ratelimiter_test

import (
	. "time"

	. "autoscale/ratelimiter"

	. "code.cloudfoundry.org/lager"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("RateLimiter", func() {

	var (
		limitPerMinute int
		expireDuration Duration
		limiter        *RateLimiter
	)

	Describe("ExceedsLimit", func() {

		BeforeEach(func() {
			limitPerMinute = 5
			expireDuration = 10 * Minute
			limiter = NewRateLimiter(limitPerMinute, expireDuration, NewLogger("autoscale-ratelimiter"))
		})

		It("reports if rate exceeded", func() {
			tenant := "test-tenant-id"
			for i := 0; i < limitPerMinute; i++ {
				Expect(limiter.ExceedsLimit(tenant)).To(BeFalse())
			}
			Expect(limiter.ExceedsLimit(tenant)).To(BeTrue())
		})

		It("tracks keys independently", func() {
			for i := 0; i < limitPerMinute; i++ {
				Expect(limiter.ExceedsLimit("tenant-a")).To(BeFalse())
			}
			Expect(limiter.ExceedsLimit("tenant-a")).To(BeTrue())
			Expect(limiter.ExceedsLimit("tenant-b")).To(BeFalse())
		})
	})

	Describe("Stats", func() {
		BeforeEach(func() {
			limitPerMinute = 10
			expireDuration = 10 * Minute
			limiter = NewRateLimiter(limitPerMinute, expireDuration, NewLogger("autoscale-ratelimiter"))
		})

		It("reports stats ", func() {
			for i := 5; i < limitPerMinute; i++ {
				tenant := "tenant-one"
				Expect(limiter.ExceedsLimit(tenant)).To(BeFalse())
			}
			for i := 7; i < limitPerMinute; i++ {
				tenant := "tenant-two"
				Expect(limiter.ExceedsLimit(tenant)).To(BeFalse())
			}

			stats := limiter.GetStats()
			Expect(len(stats)).To(Equal(2))
		})

	})

})
