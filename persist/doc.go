// Package persist implements the stable binary envelope (spec §6,
// "Persisted format"): an ASCII tag line identifying the format
// version, followed by three length-prefixed sections holding the
// input parameters, the template-point vector, and the arrangement.
//
// The spec's reference format serialises sections with msgpack; no
// example repo in the retrieval pack imports a msgpack (or any other
// third-party serialization) library, so sections here are
// length-prefixed encoding/gob streams instead — the stdlib substitute
// recorded in SPEC_FULL §3. The envelope shape (tag line, length
// prefixes, legacy-tag-is-unreadable) is preserved exactly; only the
// section codec differs. Framing follows core/methods_clone.go's
// self-contained-copy spirit: every persisted value must be readable
// without the matrix/DCEL arenas it was built from still resident.
package persist
