package googlebot

import (
	"fmt"

	"github.com/dmitrymomot/useragents/pkg/useragent"
)

// Crawler selects which Google crawler to impersonate.
type Crawler string

const (
	Search Crawler = "search"
	Image  Crawler = "image"
	Video  Crawler = "video"
)

// Crawlers lists every crawler in a fixed order.
var Crawlers = []Crawler{Search, Image, Video}

// Compatible selects the browser-compatible variant of the search crawler.
type Compatible string

const (
	// None renders the bare crawler token.
	None    Compatible = ""
	Desktop Compatible = "desktop"
	Mobile  Compatible = "mobile"
)

// CompatibleModes lists every compatible mode, None included.
var CompatibleModes = []Compatible{Desktop, Mobile, None}

const (
	Version        = "2.1"
	URL            = "http://www.google.com/bot.html"
	AndroidVersion = "6.0.1"
	AndroidDevice  = "Nexus 5X Build/MMB29P"
)

// Options describes the crawler User-Agent to build.
type Options struct {
	// Crawler defaults to Search.
	Crawler Crawler
	// Compatible is only meaningful for the Search crawler.
	Compatible Compatible
	// ChromeVersion is required for Mobile and optional for Desktop.
	ChromeVersion string
}

// Build assembles a Googlebot User-Agent string.
// Invalid combinations fail with useragent.ErrInvalidArgument.
func Build(opts Options) (string, error) {
	switch opts.Crawler {
	case Image:
		return "Googlebot-Image/1.0", nil
	case Video:
		return "Googlebot-Video/1.0", nil
	case Search, "":
		return search(opts)
	default:
		return "", fmt.Errorf("%w: unsupported crawler: value (%q)", useragent.ErrInvalidArgument, opts.Crawler)
	}
}

func search(opts Options) (string, error) {
	switch opts.Compatible {
	case None:
		return fmt.Sprintf("GoogleBot/%s (+%s)", Version, URL), nil
	case Desktop:
		if opts.ChromeVersion == "" {
			return fmt.Sprintf("Mozilla/5.0 (compatible; GoogleBot/%s)", Version), nil
		}
		return fmt.Sprintf(
			"Mozilla/5.0 AppleWebKit/537.36 (KHTML, like Gecko; compatible; GoogleBot/%s; +%s) Chrome/%s Safari/537.36",
			Version, URL, opts.ChromeVersion,
		), nil
	case Mobile:
		if opts.ChromeVersion == "" {
			return "", fmt.Errorf("%w: compatible: mobile also requires a chrome_version: value", useragent.ErrInvalidArgument)
		}
		return fmt.Sprintf(
			"Mozilla/5.0 (Linux; Android %s; %s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Mobile Safari/537.36 (compatible; GoogleBot/%s; +%s)",
			AndroidVersion, AndroidDevice, opts.ChromeVersion, Version, URL,
		), nil
	default:
		return "", fmt.Errorf("%w: unsupported compatible: value (%q)", useragent.ErrInvalidArgument, opts.Compatible)
	}
}
