package awsretry

import (
	"errors"

	"github.com/LerianStudio/lib-cloudretry/cloudretry"
	"github.com/aws/smithy-go"
)

// retryableCodes are the AWS error codes worth repeating: request-rate
// throttling plus transient server-side failures.
var retryableCodes = map[string]bool{
	"RequestLimitExceeded":      true,
	"Throttling":                true,
	"ThrottlingException":       true,
	"ThrottledException":        true,
	"RequestThrottled":          true,
	"RequestThrottledException": true,
	"TooManyRequestsException":  true,
	"SlowDown":                  true,
	"Unavailable":               true,
	"ServiceUnavailable":        true,
	"InternalFailure":           true,
	"InternalError":             true,
}

// Policy classifies AWS SDK errors.
type Policy struct{}

var _ cloudretry.Policy = Policy{}

// New returns the AWS retry policy.
func New() Policy {
	return Policy{}
}

// Recognizes reports whether err carries a smithy API error anywhere in its
// chain.
func (Policy) Recognizes(err error) bool {
	var apiErr smithy.APIError

	return errors.As(err, &apiErr)
}

// StatusCode extracts the AWS error code from err.
func (Policy) StatusCode(err error) (string, bool) {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode(), true
	}

	return "", false
}

// Found reports whether code is a retryable AWS error code.
func (Policy) Found(code string) bool {
	return retryableCodes[code]
}
