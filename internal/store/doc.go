// Package store contains the persistence layer: the MongoDB gateway, the
// note repository backed by the "notes" collection, and the GridFS-backed
// image blob storage.
//
// Absence is signalled with sentinel errors (ErrNoteNotFound,
// ErrImageNotFound) rather than driver errors, and a malformed external id
// is deliberately indistinguishable from a well-formed but absent one.
package store
