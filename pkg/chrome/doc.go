// Package chrome builds Google Chrome User-Agent strings for Windows, macOS,
// Linux and Android.
//
// Build renders a fixed per-OS template:
//
//	Mozilla/5.0 (<extensions>) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/<version> [Mobile ]Safari/537.36
//
// where the extensions are
//
//	windows  Windows NT <nt version>[; <arch>]
//	macos    Macintosh; <arch, default Intel> Mac OS X <version with "_" for ".">
//	linux    X11[; <distro>]; Linux <arch>
//	android  Linux[; <arch>]; Android <version>[; <device>]
//
// Random fills empty Options fields from the embedded version lists and the
// platform tables before calling Build.
//
//	ua, err := chrome.Build(chrome.Options{
//	    Version:   "100.0.4758.80",
//	    OS:        platform.Windows,
//	    OSVersion: "10",
//	})
//	// Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4758.80 Safari/537.36
package chrome
