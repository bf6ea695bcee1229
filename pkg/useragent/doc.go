// Package useragent holds the User-Agent record model shared by the builders,
// the corpus categories and the dispatcher.
//
// A record (UserAgent) carries the raw header value together with the browser
// family and version, the operating system and the device, exactly as stored
// in a corpus row. Records are immutable values; an absent browser or OS
// version is a nil *Version rather than a zero struct.
//
// The package also provides:
//   - Sentinel errors shared across the module: ErrInvalidArgument for
//     unsupported builder parameters and ErrDataNotFound for unknown corpora.
//   - Predicates (IsBot, IsMobile, FamilyIs, OSIs, And, Not, …) for filtering
//     records when sampling from a category.
//   - Parse, a keyword-based classifier used by the corpus import tooling to
//     turn raw strings into records. It relies on curated keyword sets and a
//     handful of pre-compiled regular expressions and is not meant as a
//     general-purpose User-Agent parser.
//
// # Usage
//
//	rec, err := useragent.Parse("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4758.80 Safari/537.36")
//	if err != nil {
//	    // ErrEmptyUserAgent or ErrMalformedUserAgent
//	}
//	fmt.Println(rec.Family, rec.Version, rec.OS) // Chrome 100.0.4758.80 Windows 10
//
//	ok := useragent.And(useragent.IsMobile, useragent.OSIs("Android"))(rec)
//
// # Error Handling
//
// Builders and categories wrap ErrInvalidArgument and ErrDataNotFound, so
// callers check them with errors.Is.
package useragent
