//go:build !(js && wasm)

package backend

// NewWebCanvas is only available in js/wasm builds
func NewWebCanvas(Options) (Backend, error) {
	return nil, newError(UnsupportedBackend, nil, "web canvas requires a js/wasm build")
}
