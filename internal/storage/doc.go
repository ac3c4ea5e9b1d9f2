// Package storage reads and writes the task list file.
//
// The file (tasks.json) is a bare JSON array with one object per task:
//
//	[
//	  {
//	    "id": "7d9f0c3e-2b1a-4c55-9a0e-1f3b6c2d8e41",
//	    "name": "Buy milk",
//	    "description": "2%",
//	    "date": "2024-01-01T00:00:00Z",
//	    "isCompleted": false
//	  }
//	]
//
// There is no version field. Dates are RFC 3339 text; fractional seconds are
// written when present and accepted on read.
//
// # Writes
//
// Every Save rewrites the whole file. With atomic writes enabled (the
// default) the data goes to a temporary file in the same directory which is
// then renamed over the target, so a crash leaves either the old or the new
// file. With atomic writes disabled the file is truncated and written in
// place.
//
// # Errors
//
// A missing file is an empty list, not an error. Everything else is returned
// as an *Error whose Kind is one of ErrEncode, ErrDecode, ErrRead or ErrWrite,
// so callers can use errors.Is against the kind.
//
// # Validation
//
// Validate checks the file on disk against the embedded JSON Schema
// (tasks.schema.json). Load runs the same check first when schema
// validation is enabled.
package storage
