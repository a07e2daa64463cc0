// Package mongoretry classifies MongoDB command failures for the retry
// wrapper.
//
// The policy recognizes mongo.CommandError values from the official driver
// and retries the server error codes MongoDB itself documents as retryable:
// stepdowns, shutdowns, and transient network conditions reported by the
// server.
package mongoretry

import (
	"errors"
	"strconv"

	"github.com/LerianStudio/lib-cloudretry/cloudretry"
	"go.mongodb.org/mongo-driver/mongo"
)

// retryableCodes is the standard retryable server error code set: host
// unreachable/not found, network timeout, shutdown in progress, stepdown,
// socket exception, and the not-primary family.
var retryableCodes = map[int32]bool{
	6:     true, // HostUnreachable
	7:     true, // HostNotFound
	89:    true, // NetworkTimeout
	91:    true, // ShutdownInProgress
	189:   true, // PrimarySteppedDown
	9001:  true, // SocketException
	10107: true, // NotWritablePrimary
	11600: true, // InterruptedAtShutdown
	11602: true, // InterruptedDueToReplStateChange
	13435: true, // NotPrimaryNoSecondaryOk
	13436: true, // NotPrimaryOrSecondary
}

// Policy classifies MongoDB driver errors.
type Policy struct{}

var _ cloudretry.Policy = Policy{}

// New returns the MongoDB retry policy.
func New() Policy {
	return Policy{}
}

// Recognizes reports whether err carries a MongoDB command error anywhere in
// its chain.
func (Policy) Recognizes(err error) bool {
	var cmdErr mongo.CommandError

	return errors.As(err, &cmdErr)
}

// StatusCode extracts the numeric server error code from err, formatted in
// decimal.
func (Policy) StatusCode(err error) (string, bool) {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return strconv.FormatInt(int64(cmdErr.Code), 10), true
	}

	return "", false
}

// Found reports whether code is a retryable MongoDB server error code.
func (Policy) Found(code string) bool {
	parsed, err := strconv.ParseInt(code, 10, 32)
	if err != nil {
		return false
	}

	return retryableCodes[int32(parsed)]
}
