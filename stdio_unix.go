//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// attachStdIO dups f over fds 1 and 2 so runtime panics land in the file too.
func attachStdIO(f *os.File) error {
	defer f.Close()
	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			return err
		}
	}
	return nil
}
