package config

import (
	"fmt"
	"os"
)

// Exitf prints a formatted startup failure to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
