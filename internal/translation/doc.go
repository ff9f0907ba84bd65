// Package translation provides English to Spanish translation backends.
// Primary backends call an LLM API (OpenAI or Gemini) and may fail; the
// dictionary backend is a deterministic word-by-word fallback that never
// fails. Decorators add circuit breaking, chunking and load-once semantics
// around a primary backend.
package translation
