package main

import "os"

// redirectStdIO sends stdout and stderr to the file at path, appending.
// An empty path leaves them untouched.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return attachStdIO(f)
}
