// Package blobstore reads archive documents from the S3-compatible manifest
// store.
//
// Keys
//
//	list.json                                          manifest list
//	versions/{version}/tables/Destiny{def}Definition.json     definition table
//	versions/{version}/diffFiles/Destiny{def}Definition.json  diff payload
//
// # Error Handling
//
// Every failed Get wraps common.ErrUnavailable. A missing key additionally
// wraps common.ErrorNotFound so callers that care can tell the two apart with
// errors.Is.
package blobstore
