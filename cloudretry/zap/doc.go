// Package zap provides a zap-backed implementation of the log.Logger
// interface consumed by the retry packages.
//
// New builds a JSON logger profiled by environment, optionally teeing
// records into an OpenTelemetry bridge so retry notifications correlate
// with traces.
package zap
