// Package platform holds the lookup tables that translate symbolic operating
// system parameters (versions, architectures, Linux distros) into the exact
// fragments browsers put in their User-Agent strings.
//
// Every table is tagged with a Mode:
//
//   - Strict tables (architectures) reject unknown keys with
//     useragent.ErrInvalidArgument.
//   - Fallback tables (Windows versions, macOS versions, Linux distros) map
//     unknown keys through a fallback function: verbatim for Windows versions
//     and distros, dot-to-underscore for macOS versions.
//
// The empty key always means "absent" and resolves to an empty fragment, which
// builders omit from the output entirely. Tables marked Optional include the
// absent key among the choices returned by SampleKeys.
package platform
