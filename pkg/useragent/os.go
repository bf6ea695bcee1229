package useragent

import (
	"regexp"
	"strings"
)

// OS detection keyword sets optimized for common traffic patterns
var (
	windowsPhoneKeywords = newKeywordSet("windows phone")
	windowsKeywords      = newKeywordSet("windows")
	iOSKeywords          = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords        = newKeywordSet("macintosh", "mac os x")
	androidKeywords      = newKeywordSet("android")
	chromeOSKeywords     = newKeywordSet("cros", "chromeos")
	linuxKeywords        = newKeywordSet("linux", "ubuntu", "debian", "fedora", "x11")
)

var (
	windowsNTVersion = regexp.MustCompile(`windows nt ([\d.]+)`)
	windowsPhoneVer  = regexp.MustCompile(`windows phone(?: os)? ([\d.]+)`)
	macOSVersion     = regexp.MustCompile(`mac os x ([\d_.]+)`)
	iOSVersion       = regexp.MustCompile(`(?:iphone|cpu) os ([\d_]+)`)
	androidVersion   = regexp.MustCompile(`android ([\d.]+)`)
)

// Windows NT kernel versions mapped to their marketing names.
var windowsNTNames = map[string]string{
	"10.0": "10",
	"6.3":  "8.1",
	"6.2":  "8",
	"6.1":  "7",
	"6.0":  "Vista",
	"5.2":  "XP",
	"5.1":  "XP",
}

// ParseOS identifies operating systems using keyword matching.
// Order reflects typical web traffic patterns: Windows first, then mobile OSes.
func ParseOS(lowerUA string) string {
	if lowerUA == "" {
		return OSUnknown
	}

	// Windows dominates desktop traffic, check it first
	if windowsKeywords.contains(lowerUA) {
		if windowsPhoneKeywords.contains(lowerUA) {
			return OSWindowsPhone
		}
		return OSWindows
	}

	if iOSKeywords.contains(lowerUA) {
		return OSiOS
	}

	if macOSKeywords.contains(lowerUA) {
		return OSMacOS
	}

	// Android reports "Linux" as well, so it must win over the Linux check
	if androidKeywords.contains(lowerUA) {
		return OSAndroid
	}

	if chromeOSKeywords.contains(lowerUA) {
		return OSChromeOS
	}

	if linuxKeywords.contains(lowerUA) {
		return OSLinux
	}

	return OSUnknown
}

// parseOSInfo resolves the OS family name and version for a record.
func parseOSInfo(lowerUA, osID string) OS {
	family, ok := osFamilies[osID]
	if !ok {
		return OS{Family: FamilyOther}
	}

	switch osID {
	case OSWindows:
		if m := windowsNTVersion.FindStringSubmatch(lowerUA); len(m) > 1 {
			if name, ok := windowsNTNames[m[1]]; ok {
				return OS{Family: family, Version: NewVersion(name)}
			}
			return OS{Family: family, Version: NewVersion(m[1])}
		}
	case OSWindowsPhone:
		if m := windowsPhoneVer.FindStringSubmatch(lowerUA); len(m) > 1 {
			return OS{Family: family, Version: NewVersion(m[1])}
		}
	case OSMacOS:
		if m := macOSVersion.FindStringSubmatch(lowerUA); len(m) > 1 {
			return OS{Family: family, Version: NewVersion(strings.ReplaceAll(m[1], "_", "."))}
		}
	case OSiOS:
		if m := iOSVersion.FindStringSubmatch(lowerUA); len(m) > 1 {
			return OS{Family: family, Version: NewVersion(strings.ReplaceAll(m[1], "_", "."))}
		}
	case OSAndroid:
		if m := androidVersion.FindStringSubmatch(lowerUA); len(m) > 1 {
			return OS{Family: family, Version: NewVersion(m[1])}
		}
	case OSLinux:
		// Distro tokens are reported as the family, e.g. "Ubuntu".
		for _, distro := range []string{"ubuntu", "fedora", "debian"} {
			if strings.Contains(lowerUA, distro) {
				return OS{Family: strings.ToUpper(distro[:1]) + distro[1:]}
			}
		}
	}

	return OS{Family: family}
}
