package platform

// LinuxDistros are the distro tokens some browsers add after "X11".
// Unknown distros are used verbatim.
var LinuxDistros = NewTable("linux distro", []Entry{
	{"ubuntu", "Ubuntu"},
	{"fedora", "Fedora"},
	{"arch", "Arch"},
}, WithPassthrough(), Optional())

// LinuxArches are the machine names reported after "Linux".
var LinuxArches = NewTable("arch", []Entry{
	{"x86_64", "x86_64"},
	{"aarch64", "aarch64"},
	{"arm64", "aarch64"},
	{"i686", "i686"},
	{"x86", "i686"},
})
