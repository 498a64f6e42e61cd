package pathplan

import "errors"

var (
	// ErrDisconnected is returned by MST when the dual graph's faces do
	// not form a single connected component.
	ErrDisconnected = errors.New("pathplan: dual graph is disconnected")

	// ErrRootOutOfRange is returned by Traverse when root is not a valid
	// face index.
	ErrRootOutOfRange = errors.New("pathplan: root face index out of range")
)
