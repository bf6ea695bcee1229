// Package firefox builds Mozilla Firefox User-Agent strings.
//
// The output shape is
//
//	Mozilla/5.0 (<extensions>; rv:<version>) Gecko/<gecko> Firefox/<version>
//
// where gecko is DesktopGeckoVersion on Windows, macOS and Linux and the
// Firefox version itself on Android. Extensions per OS:
//
//	windows  Windows NT <nt version>[; <arch>]
//	macos    Macintosh; <arch, default Intel> Mac OS X <version>
//	linux    X11[; <encryption>][; <distro>]; Linux[ <arch>][; <lang>]
//	android  Android; <device type, default Mobile>
//
// Encryption, DeviceTypes and the arch tables are strict: unknown keys fail
// with useragent.ErrInvalidArgument. Distros and Windows versions pass
// unknown values through.
package firefox
