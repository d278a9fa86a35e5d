// Package sysinfo reports facts about the running binary and its host.
package sysinfo

import (
	"os"
	"runtime"
	"runtime/debug"
)

// ContainerMarker is the file Docker creates at the root of every container.
const ContainerMarker = "/.dockerenv"

// maxModulePaths caps how many module paths Info reports.
const maxModulePaths = 3

// Info describes the running process. Every field is fixed for the process lifetime.
type Info struct {
	GoVersion  string
	Platform   string
	Executable string
	// ModulePaths holds up to three module paths from the build info,
	// main module first.
	ModulePaths []string
}

// Collect gathers Info for the current process.
func Collect() Info {
	exe, err := os.Executable()
	if err != nil {
		exe = ""
	}

	var paths []string
	if bi, ok := debug.ReadBuildInfo(); ok {
		paths = modulePaths(bi)
	}

	return Info{
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS,
		Executable:  exe,
		ModulePaths: paths,
	}
}

func modulePaths(bi *debug.BuildInfo) []string {
	paths := make([]string, 0, maxModulePaths)
	if bi.Main.Path != "" {
		paths = append(paths, bi.Main.Path)
	}
	for _, dep := range bi.Deps {
		if len(paths) == maxModulePaths {
			break
		}
		paths = append(paths, dep.Path)
	}
	return paths
}

// InContainer reports whether the marker file at path exists.
func InContainer(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
