package firefox

import (
	"fmt"

	"github.com/dmitrymomot/useragents/data"
	"github.com/dmitrymomot/useragents/pkg/platform"
	"github.com/dmitrymomot/useragents/pkg/useragent"
)

// Options describes the User-Agent to build. Empty strings mean "absent".
type Options struct {
	Version string
	// Lang is a language tag, rendered on Linux only.
	Lang string
	// Encryption is a key of the Encryption table, rendered on Linux only.
	Encryption string
	OS         platform.OS
	// OSVersion is required for Windows and macOS, ignored elsewhere.
	OSVersion   string
	LinuxDistro string
	Arch        string
	// DeviceType is a key of the DeviceTypes table, Android only.
	DeviceType string
}

// Build assembles a Firefox User-Agent string.
// Invalid or missing parameters fail with useragent.ErrInvalidArgument.
func Build(opts Options) (string, error) {
	var (
		ext   string
		gecko = DesktopGeckoVersion
		err   error
	)

	switch opts.OS {
	case platform.Windows:
		ext, err = windows(opts)
	case platform.MacOS:
		ext, err = macOS(opts)
	case platform.Linux:
		ext, err = linux(opts)
	case platform.Android:
		ext, err = android(opts)
		gecko = opts.Version
	default:
		err = fmt.Errorf("%w: unsupported os: value (%q)", useragent.ErrInvalidArgument, opts.OS)
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Mozilla/5.0 (%s; rv:%s) Gecko/%s Firefox/%s", ext, opts.Version, gecko, opts.Version), nil
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
	return "Macintosh; " + arch + " Mac OS X " + opts.OSVersion, nil
}

func linux(opts Options) (string, error) {
	encryption, err := Encryption.Resolve(opts.Encryption)
	if err != nil {
		return "", err
	}
	distro, err := platform.LinuxDistros.Resolve(opts.LinuxDistro)
	if err != nil {
		return "", err
	}
	arch, err := platform.LinuxArches.Resolve(opts.Arch)
	if err != nil {
		return "", err
	}

	kernel := "Linux"
	if arch != "" {
		kernel += " " + arch
	}
	return platform.Join("X11", encryption, distro, kernel, opts.Lang), nil
}

func android(opts Options) (string, error) {
	key := opts.DeviceType
	if key == "" {
		key = DefaultDeviceType
	}
	deviceType, err := DeviceTypes.Resolve(key)
	if err != nil {
		return "", err
	}
	return "Android; " + deviceType, nil
}

// KnownVersions returns the Firefox versions Random samples from.
func KnownVersions() []string {
	return data.FirefoxVersions()
}

// KnownLangs returns the language tags Random samples from.
func KnownLangs() []string {
	return data.FirefoxLangs()
}
