package persist

import "errors"

var (
	// ErrFormat is returned for a missing/unrecognised tag line, or a
	// recognised-but-unreadable legacy tag (spec §6: the predecessor tag
	// "denotes a legacy binary stream preserved for backward-compat reads
	// only" — this module never implements reading it).
	ErrFormat = errors.New("persist: unrecognised or unsupported envelope tag")

	// ErrTruncated is returned when a length-prefixed section's declared
	// length exceeds the remaining stream.
	ErrTruncated = errors.New("persist: truncated section")
)
