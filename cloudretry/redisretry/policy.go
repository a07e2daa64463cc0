// Package redisretry classifies Redis server replies for the retry wrapper.
//
// Redis reports failure causes as an upper-case prefix on the error reply
// (LOADING, CLUSTERDOWN, ...). The policy recognizes go-redis server errors
// and retries the prefixes that indicate a temporarily unavailable node.
package redisretry

import (
	"errors"
	"strings"

	"github.com/LerianStudio/lib-cloudretry/cloudretry"
	"github.com/redis/go-redis/v9"
)

// retryablePrefixes are reply prefixes for states a node leaves on its own:
// dataset loading, cluster reconfiguration, script execution, failover.
var retryablePrefixes = map[string]bool{
	"LOADING":     true,
	"TRYAGAIN":    true,
	"CLUSTERDOWN": true,
	"MASTERDOWN":  true,
	"READONLY":    true,
	"BUSY":        true,
}

// Policy classifies go-redis server errors.
type Policy struct{}

var _ cloudretry.Policy = Policy{}

// New returns the Redis retry policy.
func New() Policy {
	return Policy{}
}

// Recognizes reports whether err carries a Redis server error anywhere in
// its chain.
func (Policy) Recognizes(err error) bool {
	var redisErr redis.Error

	return errors.As(err, &redisErr)
}

// StatusCode extracts the reply prefix from err. Replies whose first token
// is not an upper-case prefix carry no code; plain "ERR ..." replies parse
// as "ERR", which is never on the retryable list.
func (Policy) StatusCode(err error) (string, bool) {
	var redisErr redis.Error
	if !errors.As(err, &redisErr) {
		return "", false
	}

	prefix, _, _ := strings.Cut(redisErr.Error(), " ")
	if !isReplyPrefix(prefix) {
		return "", false
	}

	return prefix, true
}

// Found reports whether prefix is a retryable reply prefix.
func (Policy) Found(code string) bool {
	return retryablePrefixes[code]
}

// isReplyPrefix reports whether token looks like a Redis error prefix:
// non-empty and entirely upper-case ASCII letters.
func isReplyPrefix(token string) bool {
	if token == "" {
		return false
	}

	for _, r := range token {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
