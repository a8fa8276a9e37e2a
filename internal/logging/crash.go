package logging

import (
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"
)

// SetupCrashHandler logs fatal signals with a stack trace before exiting.
// flush runs before exit and may be nil.
func SetupCrashHandler(logger zerolog.Logger, flush func()) (stop func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c,
		syscall.SIGABRT, // Abort signal
		syscall.SIGBUS,  // Bus error
		syscall.SIGFPE,  // Floating point exception
		syscall.SIGILL,  // Illegal instruction
		syscall.SIGSEGV, // Segmentation violation
	)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-c:
			logCrash(logger, sig)
			// Force flush logs
			if flush != nil {
				flush()
			}
			// Exit with error code
			code := 1
			if s, ok := sig.(syscall.Signal); ok {
				code = 128 + int(s)
			}
			os.Exit(code)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(c)
		close(done)
	}
}

func logCrash(logger zerolog.Logger, sig os.Signal) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.WithLevel(zerolog.FatalLevel).
		Str("signal", sig.String()).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Uint32("num_gc", m.NumGC).
		Bytes("stack", debug.Stack()).
		Msg("caught fatal signal")
}

// RecoverPanic logs a panic with its stack and re-panics.
// Use it as `defer logging.RecoverPanic(logger)`.
func RecoverPanic(logger zerolog.Logger) {
	if r := recover(); r != nil {
		logger.WithLevel(zerolog.PanicLevel).
			Interface("panic", r).
			Bytes("stack", debug.Stack()).
			Msg("unrecovered panic")
		// Re-panic to maintain normal panic behavior
		panic(r)
	}
}
