// Package cloudretry retries provider API calls that fail transiently.
//
// A Policy decides which failures from a given provider are worth repeating;
// WithBackoff wraps an operation so recognized transient failures are retried
// on a delay schedule produced by a backoff.Strategy, while every other
// failure propagates immediately and unchanged.
//
// Typical usage with one of the provider subpackages:
//
//	wrap := cloudretry.WithBackoff[*s3.GetObjectOutput](awsretry.New())
//	getObject := wrap(func(ctx context.Context) (*s3.GetObjectOutput, error) {
//		return client.GetObject(ctx, input)
//	})
//	out, err := getObject(ctx)
//
// The core performs no network I/O and owns no provider vocabularies;
// status-code tables live in the provider subpackages (awsretry, hcloudretry,
// redisretry, mongoretry, amqpretry), and delay generation lives in backoff.
package cloudretry
