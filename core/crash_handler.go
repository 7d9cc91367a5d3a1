package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()

	// Replaced in tests
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashHandler registers the cleanup run before a crash report, typically screen finalization
// Pass nil to clear
func SetCrashHandler(cleanup func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashCleanup = cleanup
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashCleanup = nil
	crashMu.Unlock()

	// Restore terminal to sane state before writing
	if cleanup != nil {
		cleanup()
	}

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
