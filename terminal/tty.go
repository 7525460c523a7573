package terminal

// tty is the platform device under a Terminal
type tty interface {
	Init() error
	Fini()

	Size() (width, height int)

	// Write sends raw bytes to the device
	Write(p []byte) error

	// Read blocks until input arrives, stopCh closes, or a poll interval passes
	// An empty result with a nil error means the interval passed without input
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback run on every size change
	SetResizeHandler(handler func(width, height int))
}
