// Package awsretry classifies AWS API failures for the retry wrapper.
//
// The policy recognizes any error implementing smithy.APIError, which covers
// the aws-sdk-go-v2 service clients, and retries the standard throttling and
// transient server-side error codes.
package awsretry
