//go:build unix

package terminal

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const backgroundQueryTimeout = 200 * time.Millisecond

// DetectBackground queries the terminal background color via OSC 11.
// Must run before Init takes ownership of the tty. Talks to /dev/tty
// directly so it works even with redirected stdin. Best-effort: returns
// false on any failure or timeout.
func DetectBackground() (RGB, bool) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return RGBBlack, false
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return RGBBlack, false
	}

	// Raw mode so the reply is not echoed or line-buffered
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RGBBlack, false
	}
	defer term.Restore(fd, oldState)

	if _, err := tty.WriteString("\x1b]11;?\x07"); err != nil {
		return RGBBlack, false
	}

	deadline := time.Now().Add(backgroundQueryTimeout)
	reply := make([]byte, 0, 64)
	buf := make([]byte, 32)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return RGBBlack, false
		}
		pfd := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(pfd, int(remaining/time.Millisecond)+1)
		if err != nil || n == 0 {
			return RGBBlack, false
		}
		m, err := tty.Read(buf)
		if err != nil || m == 0 {
			return RGBBlack, false
		}
		reply = append(reply, buf[:m]...)
		if c, ok := parseOSC11(reply); ok {
			return c, true
		}
		if len(reply) > 128 {
			// Not an OSC 11 reply, stop collecting
			return RGBBlack, false
		}
	}
}
