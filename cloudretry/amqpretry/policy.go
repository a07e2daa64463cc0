// Package amqpretry classifies RabbitMQ (AMQP 0-9-1) failures for the retry
// wrapper.
//
// The policy recognizes *amqp091.Error values and retries the broker-side
// codes that resolve on their own: forced connection closes during broker
// restarts, locked resources, and transient resource or internal errors.
package amqpretry

import (
	"errors"
	"strconv"

	"github.com/LerianStudio/lib-cloudretry/cloudretry"
	amqp "github.com/rabbitmq/amqp091-go"
)

var retryableCodes = map[int]bool{
	amqp.ConnectionForced: true,
	amqp.ResourceLocked:   true,
	amqp.ResourceError:    true,
	amqp.InternalError:    true,
}

// Policy classifies amqp091-go errors.
type Policy struct{}

var _ cloudretry.Policy = Policy{}

// New returns the RabbitMQ retry policy.
func New() Policy {
	return Policy{}
}

// Recognizes reports whether err carries an AMQP error anywhere in its chain.
func (Policy) Recognizes(err error) bool {
	var amqpErr *amqp.Error

	return errors.As(err, &amqpErr)
}

// StatusCode extracts the AMQP reply code from err, formatted in decimal.
func (Policy) StatusCode(err error) (string, bool) {
	var amqpErr *amqp.Error
	if errors.As(err, &amqpErr) {
		return strconv.Itoa(amqpErr.Code), true
	}

	return "", false
}

// Found reports whether code is a retryable AMQP reply code.
func (Policy) Found(code string) bool {
	parsed, err := strconv.Atoi(code)
	if err != nil {
		return false
	}

	return retryableCodes[parsed]
}
