package ratelimit

// NopLimiter allows every request. Used when rate limiting is disabled.
type NopLimiter struct{}

// Allow always returns true.
func (NopLimiter) Allow(string) bool { return true }

var _ Limiter = NopLimiter{}
