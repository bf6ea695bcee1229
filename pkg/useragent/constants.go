package useragent

// Device types represent the category of device that sent a User-Agent
const (
	// DeviceTypeBot identifies automated crawlers, bots, and spiders
	DeviceTypeBot = "bot"

	// DeviceTypeMobile identifies smartphones and feature phones
	DeviceTypeMobile = "mobile"

	// DeviceTypeTablet identifies tablet devices (iPad, Android tablets, etc.)
	DeviceTypeTablet = "tablet"

	// DeviceTypeDesktop identifies desktop computers and laptops
	DeviceTypeDesktop = "desktop"

	// DeviceTypeTV identifies smart TVs and streaming devices
	DeviceTypeTV = "tv"

	// DeviceTypeConsole identifies gaming consoles
	DeviceTypeConsole = "console"

	// DeviceTypeUnknown is used when the device type cannot be determined
	DeviceTypeUnknown = "unknown"
)

// Browser identifiers used while classifying a User-Agent string.
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
	BrowserIE      = "ie"
	BrowserSamsung = "samsung"
	BrowserUC      = "uc"
	BrowserYandex  = "yandex"
	BrowserVivaldi = "vivaldi"
	BrowserUnknown = "unknown"
)

// Operating system identifiers used while classifying a User-Agent string.
const (
	OSWindows      = "windows"
	OSWindowsPhone = "windows phone"
	OSMacOS        = "macos"
	OSiOS          = "ios"
	OSAndroid      = "android"
	OSLinux        = "linux"
	OSChromeOS     = "chromeos"
	OSUnknown      = "unknown"
)

// Family names written into corpus records. They follow the naming used by
// the published User-Agent corpora so parsed and imported rows line up.
const (
	FamilyOther  = "Other"
	FamilySpider = "Spider"
)

var browserFamilies = map[string]string{
	BrowserChrome:  "Chrome",
	BrowserFirefox: "Firefox",
	BrowserSafari:  "Safari",
	BrowserEdge:    "Edge",
	BrowserOpera:   "Opera",
	BrowserIE:      "IE",
	BrowserSamsung: "Samsung Internet",
	BrowserUC:      "UC Browser",
	BrowserYandex:  "Yandex Browser",
	BrowserVivaldi: "Vivaldi",
}

// Mobile builds of the big three report a different family name.
var mobileBrowserFamilies = map[string]string{
	BrowserChrome:  "Chrome Mobile",
	BrowserFirefox: "Firefox Mobile",
	BrowserSafari:  "Mobile Safari",
}

var osFamilies = map[string]string{
	OSWindows:      "Windows",
	OSWindowsPhone: "Windows Phone",
	OSMacOS:        "Mac OS X",
	OSiOS:          "iOS",
	OSAndroid:      "Android",
	OSLinux:        "Linux",
	OSChromeOS:     "Chrome OS",
}
