// Package translation calls the local model service to translate file
// content into a target language. It wraps the OpenAI-compatible chat
// endpoint with retries and a circuit breaker, and sanitizes model
// output before it is written to disk.
package translation
