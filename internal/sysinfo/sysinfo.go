package sysinfo

import (
	"fmt"
	"runtime"
)

// Lines returns the platform identification lines prepended to report output
// when identification is enabled.
func Lines() []string {
	return []string{
		fmt.Sprintf("GOMAXPROCS=%d, CPUS=%d", runtime.GOMAXPROCS(0), runtime.NumCPU()),
		fmt.Sprintf("Platform: %s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
