package barcode

import "errors"

// ErrBadQuery is returned when a query angle is outside [0, 90] degrees
// (spec §4.5: "0 ≤ θ ≤ 90").
var ErrBadQuery = errors.New("barcode: theta degrees must be within [0, 90]")
