// Package models lists the OpenAI chat models an API key can use as the
// primary translation backend.
package models
