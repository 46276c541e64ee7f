// Package version provides version information and display utilities for
// ECat.
package version

import (
	"fmt"
	"os"
)

const (
	// Name of ECat.
	Name string = "ECat"
	// Version of ECat.
	Version string = "1.0.0"
	// Additional information for ECat
	Additional string = "Have a lot of fun!"
)

// String returns the version as a single line.
func String() string {
	return fmt.Sprintf("%s %s %s", Name, Version, Additional)
}

// Print the version.
func Print() {
	fmt.Println(String())
}

// PrintAndExit prints the program version and exits.
func PrintAndExit() {
	Print()
	os.Exit(0)
}
