package useragent

import (
	"regexp"
	"strings"
)

// Version is a dotted version as recorded in a corpus row.
// Components are kept verbatim since real-world values are not always numeric.
type Version struct {
	Raw        string `json:"string" yaml:"string"`
	Major      string `json:"major" yaml:"major"`
	Minor      string `json:"minor" yaml:"minor"`
	Patch      string `json:"patch,omitempty" yaml:"patch,omitempty"`
	PatchMinor string `json:"patch_minor,omitempty" yaml:"patch_minor,omitempty"`
}

// String returns the raw version string.
func (v Version) String() string { return v.Raw }

// NewVersion splits a dotted version string into its components.
// It returns nil for an empty string so an absent version stays absent.
func NewVersion(raw string) *Version {
	if raw == "" {
		return nil
	}

	parts := strings.SplitN(raw, ".", 4)
	v := &Version{Raw: raw, Major: parts[0]}
	if len(parts) > 1 {
		v.Minor = parts[1]
	}
	if len(parts) > 2 {
		v.Patch = parts[2]
	}
	if len(parts) > 3 {
		v.PatchMinor = parts[3]
	}
	return v
}

// OS is the operating system a User-Agent reports.
type OS struct {
	Family  string   `json:"family" yaml:"family"`
	Version *Version `json:"version,omitempty" yaml:"version,omitempty"`
}

// String renders "family" or "family version".
func (o OS) String() string {
	if o.Version != nil {
		return o.Family + " " + o.Version.String()
	}
	return o.Family
}

// Device is the hardware a User-Agent reports.
type Device struct {
	Family string `json:"family" yaml:"family"`
	Model  string `json:"model,omitempty" yaml:"model,omitempty"`
	Brand  string `json:"brand,omitempty" yaml:"brand,omitempty"`
}

// String returns the device family.
func (d Device) String() string { return d.Family }

// UserAgent is one observed User-Agent string together with its parsed fields.
// Records are immutable once loaded; Version is nil when the corpus row has no
// browser version.
type UserAgent struct {
	Raw     string   `json:"string" yaml:"string"`
	Family  string   `json:"family" yaml:"family"`
	Version *Version `json:"version,omitempty" yaml:"version,omitempty"`
	OS      OS       `json:"os" yaml:"os"`
	Device  Device   `json:"device" yaml:"device"`
}

// String returns the raw User-Agent string.
func (ua UserAgent) String() string { return ua.Raw }

// Contains reports whether substr occurs in the raw string.
func (ua UserAgent) Contains(substr string) bool {
	return strings.Contains(ua.Raw, substr)
}

// Matches reports whether re matches the raw string.
func (ua UserAgent) Matches(re *regexp.Regexp) bool {
	return re.MatchString(ua.Raw)
}

// DeviceType classifies the raw string into one of the DeviceType constants.
func (ua UserAgent) DeviceType() string {
	return ParseDeviceType(strings.ToLower(ua.Raw))
}
