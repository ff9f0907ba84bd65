// Package vocabulary provides the per-user English/Spanish vocabulary used
// to rewrite text before machine translation. It contains the term matcher
// that substitutes known terms with their definitions, an HTTP client for
// the vocabulary service and the SQLite store behind that service.
package vocabulary
