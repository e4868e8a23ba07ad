//go:build !unix

package main

import "os"

// attachStdIO swaps the os.Stdout/os.Stderr handles. Output the runtime
// writes straight to fd 2 is not captured.
func attachStdIO(f *os.File) error {
	os.Stdout = f
	os.Stderr = f
	return nil
}
