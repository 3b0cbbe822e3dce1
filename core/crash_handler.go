package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashCleanup restores the viewport (tcell Fini) before the stack is printed
var crashCleanup atomic.Pointer[func()]

// exitFunc is swapped in tests
var exitFunc = os.Exit

// SetCrashCleanup registers the hook run once by HandleCrash before exiting
// Passing nil clears it
func SetCrashCleanup(fn func()) {
	if fn == nil {
		crashCleanup.Store(nil)
		return
	}
	crashCleanup.Store(&fn)
}

// HandleCrash is the unified panic handler: restores the screen, logs and prints the stack, exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashCleanup.Swap(nil); fn != nil {
		(*fn)()
	}

	stack := debug.Stack()
	Logger().Error("crash", "panic", fmt.Sprint(r), "stack", string(stack))

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mAURA CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	exitFunc(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use instead of the 'go' keyword so the screen is restored on crash
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
