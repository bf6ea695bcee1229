// Package useragents is the entry point for generating User-Agent strings.
//
// A Registry exposes one accessor per family. Chrome, Firefox and GoogleBot
// return Generators that assemble strings from templates; the other families
// (Safari, Opera, InternetExplorer, BingBot, Android, IOS) return categories
// of observed strings, loaded from their corpus on first access and reused
// afterwards. Edge has no corpus of its own and serves Safari's.
//
// Random picks a family uniformly and delegates to it. With a predicate,
// categories filter their records, while generators parse what they build and
// retry a bounded number of times:
//
//	ua, ok, err := useragents.Random(useragent.IsMobile)
//
// The package-level functions use a lazily created default registry. Create
// your own with New to inject a logger or a different corpus provider:
//
//	reg := useragents.New(
//	    useragents.WithLogger(log),
//	    useragents.WithProvider(category.NewCSVProvider(os.DirFS("corpora"))),
//	)
package useragents
