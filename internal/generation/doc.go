// Package generation defines the boundary between the application core and
// the external generative AI service that produces quiz content.
//
// It contains the Generator interface implemented by concrete clients (see
// internal/platform/gemini), the error taxonomy that separates transient
// service failures from permanent ones, and the retry machinery: a pure
// backoff policy composed with a driver that takes an injectable sleep
// function so retry behavior is unit-testable without real time passing.
package generation
