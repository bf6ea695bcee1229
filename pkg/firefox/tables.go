package firefox

import "github.com/dmitrymomot/useragents/pkg/platform"

// Encryption maps encryption strength names to the legacy Netscape flag.
var Encryption = platform.NewTable("encryption", []platform.Entry{
	{Key: "usa", Value: "U"},
	{Key: "international", Value: "I"},
	{Key: "none", Value: "N"},
	{Key: "no", Value: "N"},
}, platform.Optional())

// DeviceTypes maps Android form factors to the token Firefox reports.
var DeviceTypes = platform.NewTable("device type", []platform.Entry{
	{Key: "mobile", Value: "Mobile"},
	{Key: "tablet", Value: "Tablet"},
}, platform.Optional())

// DefaultDeviceType is used on Android when no device type is given.
const DefaultDeviceType = "mobile"

// DesktopGeckoVersion is the frozen Gecko build date of desktop Firefox.
// Firefox for Android reports its own version instead.
const DesktopGeckoVersion = "20100101"
