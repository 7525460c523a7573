//go:build !unix

package terminal

import "errors"

var errUnsupported = errors.New("terminal: raw tty access is not supported on this platform")

type unsupportedTTY struct{}

func newTTY() tty { return unsupportedTTY{} }

func (unsupportedTTY) Init() error                              { return errUnsupported }
func (unsupportedTTY) Fini()                                    {}
func (unsupportedTTY) Size() (int, int)                         { return 80, 24 }
func (unsupportedTTY) Write([]byte) error                       { return errUnsupported }
func (unsupportedTTY) Read(<-chan struct{}) ([]byte, error)     { return nil, errUnsupported }
func (unsupportedTTY) SetResizeHandler(func(width, height int)) {}
