// Package gemini implements the generation.Generator interface using
// Google's Gemini API. Requests carry a trivia-specialist system
// instruction, a Google Search grounding directive and a formal response
// schema, so the service is constrained to emit conforming JSON whenever
// possible. Transient API failures are retried with exponential backoff;
// schema validation of the returned records stays with the caller.
package gemini
