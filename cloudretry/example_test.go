package cloudretry_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LerianStudio/lib-cloudretry/cloudretry"
	"github.com/LerianStudio/lib-cloudretry/cloudretry/backoff"
)

// quotaError plays the role of a provider SDK error type.
type quotaError struct {
	code string
}

func (e *quotaError) Error() string { return "quota: " + e.code }

// quotaPolicy retries only quota-exceeded responses.
type quotaPolicy struct{}

func (quotaPolicy) Recognizes(err error) bool {
	var qe *quotaError

	return errors.As(err, &qe)
}

func (quotaPolicy) StatusCode(err error) (string, bool) {
	var qe *quotaError
	if errors.As(err, &qe) {
		return qe.code, true
	}

	return "", false
}

func (quotaPolicy) Found(code string) bool { return code == "QuotaExceeded" }

func ExampleWithBackoff() {
	wrap := cloudretry.WithBackoff[string](quotaPolicy{},
		cloudretry.WithStrategy(backoff.NewExponential(3, time.Microsecond, 2)))

	calls := 0
	describe := wrap(func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", &quotaError{code: "QuotaExceeded"}
		}

		return "instance-a3f9", nil
	})

	result, err := describe(context.Background())

	fmt.Println(result)
	fmt.Println(err)
	fmt.Println(calls)

	// Output:
	// instance-a3f9
	// <nil>
	// 3
}

func ExampleDo() {
	_, err := cloudretry.Do(context.Background(), quotaPolicy{},
		func(context.Context) (string, error) {
			return "", &quotaError{code: "AccessDenied"}
		})

	fmt.Println(err)

	// Output:
	// quota: AccessDenied
}
