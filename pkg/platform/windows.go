package platform

// WindowsVersions maps marketing names to "Windows NT" kernel versions.
// Unknown versions are used verbatim.
var WindowsVersions = NewTable("windows version", []Entry{
	{"xp", "5.2"},
	{"vista", "6.0"},
	{"7", "6.1"},
	{"8", "6.2"},
	{"8.1", "6.3"},
	{"10", "10.0"},
}, WithPassthrough())

// WindowsArches are the architecture tokens Windows browsers report.
var WindowsArches = NewTable("arch", []Entry{
	{"wow64", "WOW64"},
	{"win64", "Win64; x64"},
	{"x86_64", "Win64; x64"},
}, Optional())
