package firefox

import (
	"github.com/dmitrymomot/useragents/pkg/platform"
	"github.com/dmitrymomot/useragents/pkg/random"
)

// Random builds a Firefox User-Agent, sampling every field left empty in opts.
func Random(opts Options) (string, error) {
	return Build(Fill(opts))
}

// Fill returns opts with every empty field relevant to its OS replaced by a
// uniform sample. Optional tables may sample "absent".
func Fill(opts Options) Options {
	if opts.Version == "" {
		opts.Version = random.Pick(KnownVersions())
	}
	if opts.Encryption == "" {
		opts.Encryption = random.Pick(Encryption.SampleKeys())
	}
	if opts.Lang == "" {
		opts.Lang = random.Pick(KnownLangs())
	}
	if opts.OS == "" {
		opts.OS = random.Pick(platform.SupportedOSes)
	}

	switch opts.OS {
	case platform.Windows, platform.MacOS:
		if opts.OSVersion == "" {
			opts.OSVersion = random.Pick(platform.KnownVersions(opts.OS))
		}
		if opts.Arch == "" {
			opts.Arch = random.Pick(platform.Arches(opts.OS).SampleKeys())
		}
	case platform.Linux:
		if opts.LinuxDistro == "" {
			opts.LinuxDistro = random.Pick(platform.LinuxDistros.SampleKeys())
		}
		if opts.Arch == "" {
			opts.Arch = random.PickOptional(platform.LinuxArches.Keys())
		}
	case platform.Android:
		if opts.DeviceType == "" {
			opts.DeviceType = random.Pick(DeviceTypes.SampleKeys())
		}
	}
	return opts
}
