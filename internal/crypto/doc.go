// Package crypto exposes the content hashing used by gallerysync.
//
// Contents
//
//   - BLAKE2b-256 digests of document bytes (Digest)
//   - Short digest fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Digests identify document contents only. They let a run tell whether the
// regenerated page differs from the one on disk and let logs show which
// revision was read and written.
package crypto
