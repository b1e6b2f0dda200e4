package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/tinyrange/learnedgl/internal/cli"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cmd := cli.InitCLI(nil)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "learnedgl:", err)
		os.Exit(1)
	}
}
