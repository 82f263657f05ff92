// Package common defines shared constants and sentinel errors used across
// the manifest report packages. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrorNotFound reports that a well-formed lookup matched nothing, such as
	// a missing object key in the archive bucket.
	ErrorNotFound = errors.New("not found")

	// ErrUnavailable reports that the remote archive could not be reached or
	// returned something unusable.
	ErrUnavailable = errors.New("archive unavailable")

	// ErrorMalformedPayload reports that a fetched or cached document is not
	// valid JSON of the expected shape.
	ErrorMalformedPayload = errors.New("malformed payload")
)
