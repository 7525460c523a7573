//go:build unix

package terminal

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// pollInterval bounds how long Read blocks before checking stopCh, in milliseconds
const pollInterval = 50

type unixTTY struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	resizeStopCh chan struct{}
	resizeDoneCh chan struct{}
}

func newTTY() tty {
	return &unixTTY{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (t *unixTTY) Init() error {
	if !term.IsTerminal(t.inFd) {
		return errors.New("stdin is not a terminal")
	}
	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		return err
	}
	t.oldTerm = old
	return nil
}

func (t *unixTTY) Fini() {
	if t.resizeStopCh != nil {
		close(t.resizeStopCh)
		<-t.resizeDoneCh
		t.resizeStopCh = nil
	}
	if t.oldTerm != nil {
		term.Restore(t.inFd, t.oldTerm)
		t.oldTerm = nil
	}
}

func (t *unixTTY) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

func (t *unixTTY) Write(p []byte) error {
	_, err := t.out.Write(p)
	return err
}

func (t *unixTTY) Read(stopCh <-chan struct{}) ([]byte, error) {
	var buf [256]byte
	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, pollInterval)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}
		if n == 0 {
			return nil, nil
		}

		rn, err := unix.Read(t.inFd, buf[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}
		if rn == 0 {
			return nil, errors.New("stdin closed")
		}
		out := make([]byte, rn)
		copy(out, buf[:rn])
		return out, nil
	}
}

func (t *unixTTY) SetResizeHandler(handler func(width, height int)) {
	t.resizeStopCh = make(chan struct{})
	t.resizeDoneCh = make(chan struct{})

	go func() {
		defer close(t.resizeDoneCh)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGWINCH)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-t.resizeStopCh:
				return
			case <-sigCh:
				handler(t.Size())
			}
		}
	}()
}
