// Package cachestore persists archive documents locally so that repeated
// runs do not fetch them again.
//
// # Overview
//
// Entries are addressed by a Key (kind, version, definition). Archived data
// never changes after discovery, so an entry is trusted for as long as it
// exists: there is no expiry and no eviction. Three backends implement Store:
//
//   - FileStore: plain JSON files under a root folder (default)
//   - BadgerStore: embedded key-value database
//   - SQLiteStore: single SQLite file, schema managed by goose
//
// Typical Usage
//
//	store, err := cachestore.Open(ctx, "fs", "/var/cache/manifest-report")
//	defer store.Close()
//	data, err := store.Get(ctx, cachestore.DiffKey(version, "InventoryItem"))
//	if errors.Is(err, cachestore.ErrNotFound) { ... }
package cachestore
