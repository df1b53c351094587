// Package service orchestrates the quiz pipeline: the generation service
// turns candidate content from the generative AI into validated, persisted
// quiz records, and the transfer service re-validates the persisted
// collection and forwards it to the remote ingestion endpoint.
//
// Both services isolate per-record failures: one rejected or undeliverable
// record never discards the rest of its batch, and every rejection is
// reported with the record identity and the violated invariant.
package service
