// Package server exposes the translation, vocabulary and user services
// over HTTP using gin.
package server
