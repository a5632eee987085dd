package i

import (
	"time"
)

// Claims is what a decoded token says about its bearer.
type Claims struct {
	Subject string
	Scopes  []string
}

// Tokenizer defines methods for generating and decoding tokens.
type Tokenizer interface {
	// Generate creates a token for subject carrying scopes, valid for expTime.
	Generate(subject string, scopes []string, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (*Claims, error)
}
