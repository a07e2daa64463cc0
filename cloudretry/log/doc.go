// Package log defines the logging interface and typed fields used by the
// retry packages.
//
// Adapters (such as the zap package) implement Logger so applications can
// route retry notifications into their existing logging backend. NewNop
// returns the default silent sink.
package log
