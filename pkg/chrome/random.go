package chrome

import (
	"github.com/dmitrymomot/useragents/pkg/platform"
	"github.com/dmitrymomot/useragents/pkg/random"
)

// Random builds a Chrome User-Agent, sampling every field left empty in opts.
// OS-dependent fields are sampled for the chosen OS only.
func Random(opts Options) (string, error) {
	return Build(Fill(opts))
}

// Fill returns opts with every empty field replaced by a uniform sample.
func Fill(opts Options) Options {
	if opts.Version == "" {
		opts.Version = random.Pick(KnownVersions())
	}
	if opts.OS == "" {
		opts.OS = random.Pick(platform.SupportedOSes)
	}
	if opts.OSVersion == "" {
		if versions := platform.KnownVersions(opts.OS); len(versions) > 0 {
			opts.OSVersion = random.Pick(versions)
		}
	}
	if opts.Arch == "" {
		if arches := platform.Arches(opts.OS); arches != nil {
			opts.Arch = random.Pick(arches.SampleKeys())
		}
	}

	switch opts.OS {
	case platform.Linux:
		if opts.LinuxDistro == "" {
			opts.LinuxDistro = random.Pick(platform.LinuxDistros.SampleKeys())
		}
	case platform.Android:
		if opts.AndroidDevice == "" {
			opts.AndroidDevice = random.Pick(platform.AndroidDevices())
		}
	}
	return opts
}
