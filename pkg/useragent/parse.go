package useragent

import "strings"

// Parse classifies a raw User-Agent string into a record. It is used when
// importing raw strings into a corpus, not by the builders.
//
// An empty string yields ErrEmptyUserAgent. A string that matches no known
// browser, OS or device yields ErrMalformedUserAgent together with a record
// whose fields are all "Other", so importers can decide whether to keep it.
func Parse(ua string) (UserAgent, error) {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return UserAgent{}, ErrEmptyUserAgent
	}

	// Convert to lowercase for consistency in string matching
	lowerUA := strings.ToLower(ua)

	deviceType := ParseDeviceType(lowerUA)
	osID := ParseOS(lowerUA)

	record := UserAgent{
		Raw:    ua,
		OS:     parseOSInfo(lowerUA, osID),
		Device: parseDevice(ua, lowerUA, deviceType),
	}

	if deviceType == DeviceTypeBot {
		record.Family = extractBotName(ua)
		if m := botVersion.FindStringSubmatch(ua); len(m) > 1 {
			record.Version = NewVersion(m[1])
		}
		return record, nil
	}

	browser := ParseBrowser(lowerUA)
	record.Family = browserFamily(browser.Name, deviceType)
	record.Version = NewVersion(browser.Version)

	if browser.Name == BrowserUnknown && osID == OSUnknown && deviceType == DeviceTypeUnknown {
		return record, ErrMalformedUserAgent
	}

	return record, nil
}
