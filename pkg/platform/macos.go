package platform

import "strings"

// MacOSVersionList are macOS releases seen in the wild.
var MacOSVersionList = []string{
	"10.10",
	"10.10.3",
	"10.10.4",
	"10.11.6",
	"10.12.0",
	"10.12.1",
	"10.12.6",
	"10.13.4",
	"10.13.6",
	"10.14.0",
	"10.14.1",
	"10.14.2",
	"10.14.5",
	"10.14.6",
	"10.14.8",
	"10.15.1",
	"10.15.2",
	"10.15.4",
	"10.15.6",
	"10.15.7",
	"10.16",
	"10.16.0",
	"10.31.7",
	"10.4",
	"10.55",
	"10.7.0",
	"11.0.0",
	"11.15",
	"11.55",
	"11.6.3",
	"12.2.0",
	"16.55",
}

// MacOSVersions maps macOS versions to the underscored form Chrome and
// Safari report. Unknown versions get every "." replaced with "_".
var MacOSVersions = NewTable("macos version", underscoredEntries(MacOSVersionList), WithFallback(Underscore))

// MacOSArches are the architecture tokens macOS browsers report.
var MacOSArches = NewTable("arch", []Entry{
	{"intel", "Intel"},
	{"x86_64", "Intel"},
})

// DefaultMacOSArch is used when no macOS arch is given.
const DefaultMacOSArch = "intel"

// Underscore rewrites a dotted version into underscore notation.
func Underscore(version string) string {
	return strings.ReplaceAll(version, ".", "_")
}

func underscoredEntries(versions []string) []Entry {
	entries := make([]Entry, 0, len(versions))
	for _, v := range versions {
		entries = append(entries, Entry{Key: v, Value: Underscore(v)})
	}
	return entries
}
