package platform

import (
	"github.com/dmitrymomot/useragents/data"
)

// AndroidVersions are Android releases seen in the wild.
var AndroidVersions = []string{
	"10",
	"10.0",
	"11",
	"11.0",
	"12",
	"12.1",
	"4.0.4",
	"4.1.2",
	"4.2.2",
	"4.4.2",
	"4.4.4",
	"5.0",
	"5.0.2",
	"5.1",
	"5.1.1",
	"6.0",
	"6.0.1",
	"7.0",
	"7.1.1",
	"7.1.2",
	"8.0",
	"8.0.0",
	"8.1",
	"8.1.0",
	"9",
	"9.0",
}

// AndroidArches are the architecture tokens Android browsers report.
var AndroidArches = NewTable("arch", []Entry{
	{"arm", "arm"},
	{"arm64", "arm_64"},
}, Optional())

// AndroidDevices returns known Android device names.
func AndroidDevices() []string {
	return data.AndroidDevices()
}
