package cachestore

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var (
	// ErrNotFound is returned when an entry does not exist.
	ErrNotFound = errors.New("cache entry not found")

	// ErrInvalidKey is returned for keys that cannot be mapped to a path.
	ErrInvalidKey = errors.New("invalid cache key")
)

// Kind separates definition tables from diff payloads.
type Kind string

const (
	KindDefinitions Kind = "definitions"
	KindDiffs       Kind = "diffs"
)

// Key identifies one cached document.
type Key struct {
	Kind       Kind
	Version    string
	Definition string
}

// DefinitionKey is the key of a cached definition table.
func DefinitionKey(version, definition string) Key {
	return Key{Kind: KindDefinitions, Version: version, Definition: definition}
}

// DiffKey is the key of a cached diff payload.
func DiffKey(version, definition string) Key {
	return Key{Kind: KindDiffs, Version: version, Definition: definition}
}

// Validate rejects keys whose parts are empty or could escape the cache root.
func (k Key) Validate() error {
	switch k.Kind {
	case KindDefinitions, KindDiffs:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidKey, k.Kind)
	}
	for _, part := range []string{k.Version, k.Definition} {
		if part == "" || part == "." || part == ".." || strings.ContainsAny(part, `/\`) {
			return fmt.Errorf("%w: %q", ErrInvalidKey, part)
		}
	}
	return nil
}

// Path is the slash-separated location of the entry relative to the cache
// root. It depends only on the key.
func (k Key) Path() string {
	var file string
	switch k.Kind {
	case KindDefinitions:
		file = k.Definition + "Definition.json"
	case KindDiffs:
		file = k.Definition + "Diff.json"
	}
	return path.Join(string(k.Kind), "version-"+k.Version, file)
}

func (k Key) String() string {
	return k.Path()
}
