package ratelimiter

import (
	"net/http"
	"strings"

	"autoscale/models"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"
)

// RateLimiterMiddlewareIPBased throttles by caller address; used on the
// anonymous webhook execute route where no tenant is on the path.
type RateLimiterMiddlewareIPBased struct {
	logger      lager.Logger
	RateLimiter Limiter
}

func NewRateLimiterMiddlewareIPBased(rateLimiter Limiter, logger lager.Logger) *RateLimiterMiddlewareIPBased {
	return &RateLimiterMiddlewareIPBased{
		logger:      logger,
		RateLimiter: rateLimiter,
	}
}

func (mw *RateLimiterMiddlewareIPBased) CheckRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remoteIP := strings.Split(r.RemoteAddr, ":")[0]
		if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
			remoteIP = strings.Split(forwardedFor, ", ")[0]
		}
		if mw.RateLimiter.ExceedsLimit(remoteIP) {
			mw.logger.Info("error-exceed-rate-limit", lager.Data{"RemoteIP": remoteIP, "URL": r.URL.String()})
			handlers.WriteJSONResponse(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Code:    "Rate-Limit-Exceeded",
				Message: "Too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
