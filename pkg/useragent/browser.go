package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Browser is the browser identifier and version detected in a User-Agent.
type Browser struct {
	Name    string
	Version string
}

// BrowserPattern defines a pattern for detecting a browser
type BrowserPattern struct {
	Name      string
	Keywords  []string
	Excludes  []string
	Regex     *regexp.Regexp
	OrderHint int
}

// Extract version from a user agent string using a regex
func extractVersion(ua string, regex *regexp.Regexp) string {
	if regex == nil {
		return ""
	}
	matches := regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		version := matches[1]
		// Limit version length to avoid excessively long versions
		if len(version) > 20 {
			version = version[:20]
		}
		return strings.TrimSuffix(version, ".")
	}
	return ""
}

// matchPattern checks if the UA string matches a browser pattern
func matchPattern(ua string, pattern BrowserPattern) bool {
	// Edge ships either "Edge/" (legacy) or "Edg/" (Chromium), any one is enough
	if pattern.Name == BrowserEdge {
		for _, keyword := range pattern.Keywords {
			if strings.Contains(ua, keyword) {
				return true
			}
		}
		return false
	}

	for _, keyword := range pattern.Keywords {
		if !strings.Contains(ua, keyword) {
			return false
		}
	}
	for _, exclude := range pattern.Excludes {
		if strings.Contains(ua, exclude) {
			return false
		}
	}
	return true
}

// Browser detection patterns in order of checking priority
var browserPatterns = []BrowserPattern{
	{
		Name:      BrowserEdge,
		Keywords:  []string{"edg/", "edge/", "edga/", "edgios/"},
		Regex:     regexp.MustCompile(`(?i)(?:edge|edga|edgios|edg)/([\d.]+)`),
		OrderHint: 10,
	},
	{
		Name:      BrowserSamsung,
		Keywords:  []string{"samsungbrowser"},
		Regex:     regexp.MustCompile(`(?i)samsungbrowser/([\d.]+)`),
		OrderHint: 20,
	},
	{
		Name:      BrowserUC,
		Keywords:  []string{"ucbrowser"},
		Regex:     regexp.MustCompile(`(?i)ucbrowser/([\d.]+)`),
		OrderHint: 30,
	},
	{
		Name:      BrowserYandex,
		Keywords:  []string{"yabrowser"},
		Regex:     regexp.MustCompile(`(?i)yabrowser/([\d.]+)`),
		OrderHint: 40,
	},
	{
		Name:      BrowserVivaldi,
		Keywords:  []string{"vivaldi"},
		Regex:     regexp.MustCompile(`(?i)vivaldi/([\d.]+)`),
		OrderHint: 50,
	},
	{
		Name:      BrowserOpera,
		Keywords:  []string{"opr/"},
		Regex:     regexp.MustCompile(`(?i)opr/([\d.]+)`),
		OrderHint: 60,
	},
	{
		Name:      BrowserOpera, // Presto-era Opera
		Keywords:  []string{"opera"},
		Regex:     regexp.MustCompile(`(?i)version/([\d.]+)`),
		OrderHint: 65,
	},
	{
		Name:      BrowserChrome, // Chrome on iOS
		Keywords:  []string{"crios/"},
		Regex:     regexp.MustCompile(`(?i)crios/([\d.]+)`),
		OrderHint: 70,
	},
	{
		Name:      BrowserChrome,
		Keywords:  []string{"chrome/"},
		Regex:     regexp.MustCompile(`(?i)chrome/([\d.]+)`),
		OrderHint: 80,
	},
	{
		Name:      BrowserFirefox, // Firefox on iOS
		Keywords:  []string{"fxios/"},
		Regex:     regexp.MustCompile(`(?i)fxios/([\d.]+)`),
		OrderHint: 85,
	},
	{
		Name:      BrowserFirefox,
		Keywords:  []string{"firefox/"},
		Regex:     regexp.MustCompile(`(?i)firefox/([\d.]+)`),
		OrderHint: 90,
	},
	{
		Name:      BrowserSafari,
		Keywords:  []string{"safari"},
		Excludes:  []string{"chrome", "android"},
		Regex:     regexp.MustCompile(`(?i)version/([\d.]+)`),
		OrderHint: 100,
	},
	{
		Name:      BrowserIE,
		Keywords:  []string{"msie"},
		Regex:     regexp.MustCompile(`(?i)msie ([\d.]+)`),
		OrderHint: 110,
	},
	{
		Name:      BrowserIE,
		Keywords:  []string{"trident/"},
		Regex:     regexp.MustCompile(`(?i)rv:([\d.]+)`),
		OrderHint: 120,
	},
}

// ParseBrowser parses the browser information from a lower-cased user agent string
func ParseBrowser(lowerUA string) Browser {
	for _, pattern := range browserPatterns {
		if matchPattern(lowerUA, pattern) {
			return Browser{
				Name:    pattern.Name,
				Version: extractVersion(lowerUA, pattern.Regex),
			}
		}
	}

	return Browser{Name: BrowserUnknown}
}

// Bot name extraction keywords - direct mapping for common bots
var botNameMap = map[string]string{
	"googlebot-image":     "Googlebot-Image",
	"googlebot-video":     "Googlebot-Video",
	"bingbot":             "bingbot",
	"yandexbot":           "YandexBot",
	"baiduspider":         "Baiduspider",
	"duckduckbot":         "DuckDuckBot",
	"twitterbot":          "Twitterbot",
	"facebookexternalhit": "FacebookBot",
	"linkedinbot":         "LinkedInBot",
	"applebot":            "Applebot",
	"slurp":               "Yahoo! Slurp",
}

// Common bot name patterns compiled only once for efficiency
var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

var botVersion = regexp.MustCompile(`(?i)(?:bot|spider|crawler|slurp)[a-z\-]*/([\d.]+)`)

// extractBotName extracts the bot name from a user agent string
func extractBotName(userAgent string) string {
	lowerUA := strings.ToLower(userAgent)

	// Googlebot-Image and friends must be checked before plain Googlebot
	for _, keyword := range []string{"googlebot-image", "googlebot-video"} {
		if strings.Contains(lowerUA, keyword) {
			return botNameMap[keyword]
		}
	}
	if strings.Contains(lowerUA, "googlebot") {
		return "Googlebot"
	}

	for keyword, name := range botNameMap {
		if strings.Contains(lowerUA, keyword) {
			return name
		}
	}

	// Slower path: regex matching for dynamic extraction
	title := cases.Title(language.English)
	for _, pattern := range botNamePatterns {
		if matches := pattern.FindStringSubmatch(userAgent); len(matches) > 1 {
			return title.String(strings.ToLower(matches[1]))
		}
	}

	return FamilySpider
}

// browserFamily maps a detected browser to the family name stored in records.
func browserFamily(name, deviceType string) string {
	if deviceType == DeviceTypeMobile || deviceType == DeviceTypeTablet {
		if family, ok := mobileBrowserFamilies[name]; ok {
			return family
		}
	}
	if family, ok := browserFamilies[name]; ok {
		return family
	}
	return FamilyOther
}
