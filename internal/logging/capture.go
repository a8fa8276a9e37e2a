package logging

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// OutputCapture redirects file descriptors 1 and 2 into the logger so output
// written by C libraries (GTK, WebKit) lands in the session log.
type OutputCapture struct {
	mu      sync.Mutex
	started bool

	savedStdout *os.File
	savedStderr *os.File
	goStdout    *os.File
	goStderr    *os.File

	pipes []*os.File
	wg    sync.WaitGroup

	logger   atomic.Pointer[zerolog.Logger]
	fallback atomic.Pointer[os.File]
}

// NewOutputCapture creates an inactive capture.
func NewOutputCapture() *OutputCapture {
	return &OutputCapture{}
}

// Attach sets the logger captured lines are written to. Lines read before a
// logger is attached go to the original stderr.
func (c *OutputCapture) Attach(logger zerolog.Logger) {
	c.logger.Store(&logger)
}

// Stderr returns a writer to the terminal's stderr, bypassing the capture.
// Before Start it is os.Stderr.
func (c *OutputCapture) Stderr() io.Writer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.savedStderr != nil {
		return c.savedStderr
	}
	return os.Stderr
}

// Start begins capturing. It is a no-op when already started.
func (c *OutputCapture) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return nil
	}

	savedOut, err := dupFile(1, "stdout")
	if err != nil {
		return err
	}
	savedErr, err := dupFile(2, "stderr")
	if err != nil {
		_ = savedOut.Close()
		return err
	}

	outR, outW, err := os.Pipe()
	if err != nil {
		_ = savedOut.Close()
		_ = savedErr.Close()
		return fmt.Errorf("create stdout pipe: %w", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		for _, f := range []*os.File{savedOut, savedErr, outR, outW} {
			_ = f.Close()
		}
		return fmt.Errorf("create stderr pipe: %w", err)
	}

	if err := unix.Dup3(int(outW.Fd()), 1, 0); err != nil {
		return fmt.Errorf("redirect stdout: %w", err)
	}
	if err := unix.Dup3(int(errW.Fd()), 2, 0); err != nil {
		_ = unix.Dup3(int(savedOut.Fd()), 1, 0)
		return fmt.Errorf("redirect stderr: %w", err)
	}

	c.savedStdout, c.savedStderr = savedOut, savedErr
	c.fallback.Store(savedErr)
	c.goStdout, c.goStderr = os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	c.pipes = []*os.File{outR, outW, errR, errW}

	c.wg.Add(2)
	go func() { defer c.wg.Done(); c.pipeToLogger(outR, "stdout") }()
	go func() { defer c.wg.Done(); c.pipeToLogger(errR, "stderr") }()

	c.started = true
	return nil
}

// Stop restores the original descriptors and waits for pending lines.
func (c *OutputCapture) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return
	}

	_ = unix.Dup3(int(c.savedStdout.Fd()), 1, 0)
	_ = unix.Dup3(int(c.savedStderr.Fd()), 2, 0)
	os.Stdout, os.Stderr = c.goStdout, c.goStderr

	// Closing the write ends lets the readers drain and exit.
	_ = c.pipes[1].Close()
	_ = c.pipes[3].Close()
	c.wg.Wait()
	c.fallback.Store(nil)
	_ = c.pipes[0].Close()
	_ = c.pipes[2].Close()

	_ = c.savedStdout.Close()
	_ = c.savedStderr.Close()
	c.savedStdout, c.savedStderr = nil, nil
	c.pipes = nil
	c.started = false
}

func (c *OutputCapture) pipeToLogger(r io.Reader, stream string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if logger := c.logger.Load(); logger != nil {
			logger.Info().Str("stream", stream).Msg(line)
			continue
		}
		if fallback := c.fallback.Load(); fallback != nil {
			_, _ = fmt.Fprintln(fallback, line)
		}
	}
}

func dupFile(fd int, name string) (*os.File, error) {
	dup, err := unix.Dup(fd)
	if err != nil {
		return nil, fmt.Errorf("duplicate %s: %w", name, err)
	}
	return os.NewFile(uintptr(dup), name), nil
}
