package mod2

import "errors"

// ErrNotFinalized indicates AddPopped was called with a source column that
// has not been finalized (pruned); its entries are not guaranteed unique
// and sorted, so the "skip the pivot" fast path cannot be trusted.
var ErrNotFinalized = errors.New("mod2: source column is not finalized")
