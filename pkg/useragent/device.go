package useragent

import (
	"regexp"
	"strings"
)

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Keyword sets organized by device type.
// Bot detection includes social media crawlers and monitoring tools.
var (
	botKeywords     = newKeywordSet("bot", "spider", "crawler", "archiver", "slurp", "yeti", "facebookexternalhit", "fetcher", "scraper", "mediapartners")
	tvKeywords      = newKeywordSet("smarttv", "smart-tv", "googletv", "appletv", "android tv", "webos", "tizen")
	consoleKeywords = newKeywordSet("playstation", "xbox", "nintendo")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk")
	mobileKeywords  = newKeywordSet("mobile", "iphone", "android", "windows phone", "iemobile", "blackberry", "nokia")
	desktopKeywords = newKeywordSet("windows", "macintosh", "mac os x", "linux", "x11", "ubuntu", "fedora", "debian", "cros")
)

// Brand detection, ordered by market share for the common case.
var deviceBrands = []struct {
	brand    string
	keywords keywordSet
}{
	{"Samsung", newKeywordSet("samsung", "sm-g", "sm-a", "sm-n", "sm-s", "sm-t", "gt-", "sm-p")},
	{"Google", newKeywordSet("pixel", "nexus")},
	{"Huawei", newKeywordSet("huawei", "hwa-", "honor", "mediapad")},
	{"XiaoMi", newKeywordSet("xiaomi", "redmi", "miui", "mi ")},
	{"Oppo", newKeywordSet("oppo", "cph1", "cph2")},
	{"vivo", newKeywordSet("vivo", "viv-", "v1730", "v1731")},
	{"Motorola", newKeywordSet("moto ", "motorola", "xt1")},
	{"LG", newKeywordSet("lg-", "lm-")},
	{"Amazon", newKeywordSet("kindle", "kftt", "kfjwi", "kfmawi")},
}

// androidModel captures the model token in "Android 11; Pixel 5 Build/...".
var androidModel = regexp.MustCompile(`(?i)android [\d.]+;\s*(?:[a-z]{2}[-_][a-z]{2};\s*)?([^;)]+?)(?:\s+build/[^;)]*)?[;)]`)

// ParseDeviceType classifies devices using fast string matching.
// Order matters: iOS devices first (common), then Android logic, then fallbacks.
func ParseDeviceType(lowerUA string) string {
	if lowerUA == "" {
		return DeviceTypeUnknown
	}

	// iOS devices have unambiguous identifiers
	if strings.Contains(lowerUA, "ipad") {
		return DeviceTypeTablet
	}

	if strings.Contains(lowerUA, "iphone") {
		return DeviceTypeMobile
	}

	if botKeywords.contains(lowerUA) {
		return DeviceTypeBot
	}

	if tvKeywords.contains(lowerUA) {
		return DeviceTypeTV
	}

	// Android tablets omit 'Mobile' keyword, unlike phones
	if strings.Contains(lowerUA, "android") {
		if !strings.Contains(lowerUA, "mobile") {
			return DeviceTypeTablet
		}
		return DeviceTypeMobile
	}

	if tabletKeywords.contains(lowerUA) {
		return DeviceTypeTablet
	}

	if mobileKeywords.contains(lowerUA) {
		return DeviceTypeMobile
	}

	if consoleKeywords.contains(lowerUA) {
		return DeviceTypeConsole
	}

	if desktopKeywords.contains(lowerUA) {
		return DeviceTypeDesktop
	}

	return DeviceTypeUnknown
}

// parseDevice builds the device fields for a record. Desktops and unknown
// devices are reported as "Other", crawlers as "Spider".
func parseDevice(ua, lowerUA, deviceType string) Device {
	switch deviceType {
	case DeviceTypeBot:
		return Device{Family: FamilySpider}
	case DeviceTypeMobile, DeviceTypeTablet:
	default:
		return Device{Family: FamilyOther}
	}

	switch {
	case strings.Contains(lowerUA, "iphone"):
		return Device{Family: "iPhone", Brand: "Apple", Model: "iPhone"}
	case strings.Contains(lowerUA, "ipad"):
		return Device{Family: "iPad", Brand: "Apple", Model: "iPad"}
	case strings.Contains(lowerUA, "ipod"):
		return Device{Family: "iPod", Brand: "Apple", Model: "iPod"}
	}

	model := ""
	if m := androidModel.FindStringSubmatch(ua); len(m) > 1 {
		model = strings.TrimSpace(m[1])
	}

	brand := ""
	for _, b := range deviceBrands {
		if b.keywords.contains(lowerUA) {
			brand = b.brand
			break
		}
	}

	switch {
	case model == "" && brand == "":
		return Device{Family: "Generic Smartphone"}
	case model == "":
		return Device{Family: brand, Brand: brand}
	case brand == "":
		return Device{Family: model, Model: model}
	default:
		return Device{Family: brand + " " + model, Model: model, Brand: brand}
	}
}
