package googlebot

import (
	"github.com/dmitrymomot/useragents/pkg/chrome"
	"github.com/dmitrymomot/useragents/pkg/random"
)

// Random builds a Googlebot User-Agent, sampling every field left empty in
// opts. An empty Compatible is sampled too, so None is one of the outcomes.
func Random(opts Options) (string, error) {
	if opts.Crawler == "" {
		opts.Crawler = random.Pick(Crawlers)
	}
	if opts.Compatible == None {
		opts.Compatible = random.Pick(CompatibleModes)
	}
	if opts.ChromeVersion == "" {
		opts.ChromeVersion = random.Pick(chrome.KnownVersions())
	}
	return Build(opts)
}
