// Package service orchestrates a translation request: authenticate the
// caller, fetch their vocabulary, rewrite known terms, then translate with
// the first backend that succeeds.
package service
