package config

import "time"

// Submission policy
type SubmissionPolicyConfig struct {
	LateGraceWindow time.Duration // Window after endAt during which a late submit is accepted
}

var DefaultSubmissionPolicy = SubmissionPolicyConfig{
	LateGraceWindow: 24 * time.Hour,
}

// Rubric bounds for judge scores
type RubricConfig struct {
	MinValue int
	MaxValue int
}

var DefaultRubric = RubricConfig{
	MinValue: 1,
	MaxValue: 10,
}

// Join code generation
type JoinCodeConfig struct {
	Length     int // Number of characters in a team join code
	MaxRetries int // Collision retries before giving up
}

var DefaultJoinCode = JoinCodeConfig{
	Length:     6,
	MaxRetries: 5,
}

// Request throttling tiers, per client IP per minute. Mutating requests get
// a tighter bucket than reads since deadline rushes arrive as write bursts.
type RateLimitConfig struct {
	ReadPerMinute  int
	ReadBurst      int
	WritePerMinute int
	WriteBurst     int
}

var DefaultRateLimit = RateLimitConfig{
	ReadPerMinute:  10000,
	ReadBurst:      1500,
	WritePerMinute: 1200,
	WriteBurst:     300,
}
