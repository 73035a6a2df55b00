package form

import "time"

// Config holds holder and draft store lifetimes.
type Config struct {
	RedisPrefix string        `env:"FORM_REDIS_PREFIX" envDefault:"itopia:draft:"`
	IdleTTL     time.Duration `env:"FORM_IDLE_TTL" envDefault:"30m"`
	DraftTTL    time.Duration `env:"FORM_DRAFT_TTL" envDefault:"24h"`
}
