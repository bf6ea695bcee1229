package platform

import (
	"fmt"

	"github.com/dmitrymomot/useragents/pkg/useragent"
)

// OS identifies one of the operating systems the builders know how to render.
type OS string

const (
	Windows OS = "windows"
	MacOS   OS = "macos"
	Linux   OS = "linux"
	Android OS = "android"
)

// SupportedOSes lists every OS in a fixed order, used for random selection.
var SupportedOSes = []OS{Windows, MacOS, Linux, Android}

// ParseOS converts a textual OS name into an OS value.
func ParseOS(s string) (OS, error) {
	switch os := OS(s); os {
	case Windows, MacOS, Linux, Android:
		return os, nil
	case "":
		return "", fmt.Errorf("%w: os is required", useragent.ErrInvalidArgument)
	default:
		return "", fmt.Errorf("%w: unsupported os: value (%q)", useragent.ErrInvalidArgument, s)
	}
}

// Arches returns the architecture table for os, or nil for an unknown OS.
func Arches(os OS) *Table {
	switch os {
	case Windows:
		return WindowsArches
	case MacOS:
		return MacOSArches
	case Linux:
		return LinuxArches
	case Android:
		return AndroidArches
	}
	return nil
}

// KnownVersions returns sample OS versions for os. Linux has none.
func KnownVersions(os OS) []string {
	switch os {
	case Windows:
		return WindowsVersions.Keys()
	case MacOS:
		return append([]string(nil), MacOSVersionList...)
	case Android:
		return append([]string(nil), AndroidVersions...)
	}
	return nil
}
