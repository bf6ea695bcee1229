// Package category provides corpus-backed groups of real-world User-Agent
// strings, such as "chrome", "googlebot" or "ios".
//
// A Category is loaded once from a Provider and then only read: it can be
// sampled uniformly (Random), sampled after filtering by a regular expression
// (RandomMatching, RandomRegexp) or a predicate (RandomFunc), iterated in load
// order (Each, All) and combined with another category (Concat).
//
// Filtering that leaves nothing to sample is not an error: the sampling
// methods report ok == false.
//
// # Corpora
//
// The default provider reads the CSV files embedded in the data package. Each
// file has a header row followed by rows in the column layout listed in
// Columns. An empty version column means the record has no version (nil), not
// a zero-valued one. NewCSVProvider accepts any fs.FS, e.g. os.DirFS, to
// serve corpora from disk.
//
// # Usage
//
//	cat, err := category.Load("chrome")
//	if err != nil {
//	    // errors.Is(err, useragent.ErrDataNotFound)
//	}
//
//	ua, ok := cat.Random()
//	ua, ok = cat.RandomFunc(useragent.IsMobile)
//	ua, ok, err = cat.RandomMatching(`Windows NT 10\.0`)
//
//	browsers := cat.Concat(firefox)
//	for rec := range browsers.All() {
//	    fmt.Println(rec.Family, rec.OS)
//	}
package category
