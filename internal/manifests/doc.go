// Package manifests is the cache-accelerated read client over the manifest
// archive.
//
// # Overview
//
// Client exposes four reads:
//
//   - ListManifests: list.json, loaded once per Client and retained
//   - GetManifestByVersion: lookup in the retained list
//   - GetDefinitionTable: definition table, cache store first, then remote
//   - GetDiffPayload: diff payload, cache store first, then remote
//
// # Error Handling
//
// Only the manifest list may fail loudly: nothing is usable without it, so
// its errors propagate (matchable with errors.Is(err, common.ErrUnavailable)).
// An unknown version is a normal outcome reported through the boolean result
// of GetManifestByVersion. Tables and diff payloads collapse every fetch or
// decode failure into a Result with StatusUnavailable; the cause is kept in
// Result.Err for logging.
//
// # Concurrency
//
// Client is safe for concurrent use. Concurrent reads of the same uncached
// table may each fetch it and each write it to the store; archived data is
// immutable so the last write wins without changing anything.
package manifests
