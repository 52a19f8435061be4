package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "bagami",
	Pass: "bagami",
	Name: "bagami_notify",
}

var defaultKafka = Kafka{
	Topic:   "delivery.created",
	GroupID: "bagami-notify",
}

var defaultReminder = Reminder{
	Interval: 5 * time.Minute,
	LockTTL:  4 * time.Minute,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

const defaultLocale = "en"

// DefaultPort returns the default HTTP port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default delivery-events consumer settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRedis returns the default run-lock settings (disabled).
func DefaultRedis() Redis {
	return Redis{}
}

// DefaultReminder returns the default reminder scheduler settings.
func DefaultReminder() Reminder {
	return defaultReminder
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default pprof settings (disabled).
func DefaultPprof() Pprof {
	return Pprof{}
}

// DefaultLocale returns the fallback locale tag for notification texts.
func DefaultLocale() string {
	return defaultLocale
}
