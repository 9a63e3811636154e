package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

// TooManyRequestsMessage is the plain text body of a rate limited response.
const TooManyRequestsMessage = "Too many requests from this IP"

// withRateLimit counts the request against the client key. Store failures
// let the request through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		key := h.keyFunc(r)

		decision, err := h.limiter.Allow(r.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limit store failed, allowing request")
			next.ServeHTTP(w, r)
			return
		}

		header := w.Header()
		header.Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
		header.Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		header.Set("RateLimit-Reset", strconv.Itoa(ceilSeconds(time.Until(decision.ResetAt))))

		if !decision.Allowed {
			if h.metrics != nil {
				h.metrics.RateLimitRejections.Inc()
			}
			log.Debug().Str("key", key).Time("reset_at", decision.ResetAt).Msg("rate limit exceeded")

			header.Set("Retry-After", strconv.Itoa(ceilSeconds(decision.RetryAfter)))
			utils.WriteText(w, TooManyRequestsMessage, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
