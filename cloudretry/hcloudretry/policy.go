package hcloudretry

import (
	"errors"

	"github.com/LerianStudio/lib-cloudretry/cloudretry"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// retryableCodes covers rate limiting and the transient lock states hcloud
// reports while another action holds a resource.
var retryableCodes = map[hcloud.ErrorCode]bool{
	hcloud.ErrorCodeRateLimitExceeded:   true,
	hcloud.ErrorCodeLocked:              true,
	hcloud.ErrorCodeConflict:            true,
	hcloud.ErrorCodeResourceLocked:      true,
	hcloud.ErrorCodeResourceUnavailable: true,
}

// Policy classifies hcloud-go errors.
type Policy struct{}

var _ cloudretry.Policy = Policy{}

// New returns the Hetzner Cloud retry policy.
func New() Policy {
	return Policy{}
}

// Recognizes reports whether err carries an hcloud API error anywhere in its
// chain.
func (Policy) Recognizes(err error) bool {
	var hcloudErr hcloud.Error

	return errors.As(err, &hcloudErr)
}

// StatusCode extracts the hcloud error code from err.
func (Policy) StatusCode(err error) (string, bool) {
	var hcloudErr hcloud.Error
	if errors.As(err, &hcloudErr) {
		return string(hcloudErr.Code), true
	}

	return "", false
}

// Found reports whether code is a retryable hcloud error code.
func (Policy) Found(code string) bool {
	return retryableCodes[hcloud.ErrorCode(code)]
}
