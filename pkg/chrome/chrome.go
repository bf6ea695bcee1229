package chrome

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/useragents/data"
	"github.com/dmitrymomot/useragents/pkg/platform"
	"github.com/dmitrymomot/useragents/pkg/useragent"
)

// Options describes the User-Agent to build. Empty strings mean "absent".
type Options struct {
	// Version is the Chrome version, e.g. "100.0.4896.127".
	Version string
	// OS is the operating system to impersonate.
	OS platform.OS
	// OSVersion is required for Windows, macOS and Android.
	OSVersion string
	// LinuxDistro is an optional distro token, Linux only.
	LinuxDistro string
	// Arch is the architecture key of the OS's arch table. Required for Linux.
	Arch string
	// AndroidDevice is an optional device model, Android only.
	AndroidDevice string
}

const (
	webKit = "AppleWebKit/537.36 (KHTML, like Gecko)"
	safari = "Safari/537.36"
)

// Build assembles a Chrome User-Agent string.
// Invalid or missing parameters fail with useragent.ErrInvalidArgument.
func Build(opts Options) (string, error) {
	ext, err := extensions(opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Mozilla/5.0 (")
	b.WriteString(ext)
	b.WriteString(") ")
	b.WriteString(webKit)
	b.WriteString(" Chrome/")
	b.WriteString(opts.Version)
	b.WriteString(" ")
	if opts.OS == platform.Android {
		b.WriteString("Mobile ")
	}
	b.WriteString(safari)
	return b.String(), nil
}

func extensions(opts Options) (string, error) {
	switch opts.OS {
	case platform.Windows:
		return windows(opts)
	case platform.MacOS:
		return macOS(opts)
	case platform.Linux:
		return linux(opts)
	case platform.Android:
		return android(opts)
	default:
		return "", fmt.Errorf("%w: unsupported os: value (%q)", useragent.ErrInvalidArgument, opts.OS)
	}
}

func requireOSVersion(opts Options) error {
	if opts.OSVersion == "" {
		return fmt.Errorf("%w: os: %q also requires an os_version: value", useragent.ErrInvalidArgument, opts.OS)
	}
	return nil
}

func windows(opts Options) (string, error) {
	if err := requireOSVersion(opts); err != nil {
		return "", err
	}
	version, err := platform.WindowsVersions.Resolve(opts.OSVersion)
	if err != nil {
		return "", err
	}
	arch, err := platform.WindowsArches.Resolve(opts.Arch)
	if err != nil {
		return "", err
	}
	return platform.Join("Windows NT "+version, arch), nil
}

func macOS(opts Options) (string, error) {
	if err := requireOSVersion(opts); err != nil {
		return "", err
	}
	archKey := opts.Arch
	if archKey == "" {
		archKey = platform.DefaultMacOSArch
	}
	arch, err := platform.MacOSArches.Resolve(archKey)
	if err != nil {
		return "", err
	}
	version, err := platform.MacOSVersions.Resolve(opts.OSVersion)
	if err != nil {
		return "", err
	}
	return "Macintosh; " + arch + " Mac OS X " + version, nil
}

func linux(opts Options) (string, error) {
	if opts.Arch == "" {
		return "", fmt.Errorf("%w: os: linux also requires an arch: value", useragent.ErrInvalidArgument)
	}
	arch, err := platform.LinuxArches.Resolve(opts.Arch)
	if err != nil {
		return "", err
	}
	distro, err := platform.LinuxDistros.Resolve(opts.LinuxDistro)
	if err != nil {
		return "", err
	}
	return platform.Join("X11", distro, "Linux "+arch), nil
}

func android(opts Options) (string, error) {
	if err := requireOSVersion(opts); err != nil {
		return "", err
	}
	arch, err := platform.AndroidArches.Resolve(opts.Arch)
	if err != nil {
		return "", err
	}
	return platform.Join("Linux", arch, "Android "+opts.OSVersion, opts.AndroidDevice), nil
}

// KnownVersions returns the Chrome versions Random samples from.
func KnownVersions() []string {
	return data.ChromeVersions()
}
