package useragent

import (
	"regexp"
	"strings"
)

// Predicate selects User-Agent records, e.g. when sampling from a category.
type Predicate func(UserAgent) bool

// IsBot reports whether ua belongs to an automated crawler.
func IsBot(ua UserAgent) bool { return ua.DeviceType() == DeviceTypeBot }

// IsMobile reports whether ua was sent by a phone.
func IsMobile(ua UserAgent) bool { return ua.DeviceType() == DeviceTypeMobile }

// IsTablet reports whether ua was sent by a tablet.
func IsTablet(ua UserAgent) bool { return ua.DeviceType() == DeviceTypeTablet }

// IsDesktop reports whether ua was sent by a desktop or laptop.
func IsDesktop(ua UserAgent) bool { return ua.DeviceType() == DeviceTypeDesktop }

// FamilyIs matches records whose browser family equals family, ignoring case.
func FamilyIs(family string) Predicate {
	return func(ua UserAgent) bool {
		return strings.EqualFold(ua.Family, family)
	}
}

// OSIs matches records whose OS family equals family, ignoring case.
func OSIs(family string) Predicate {
	return func(ua UserAgent) bool {
		return strings.EqualFold(ua.OS.Family, family)
	}
}

// MajorVersionIs matches records with the given browser major version.
func MajorVersionIs(major string) Predicate {
	return func(ua UserAgent) bool {
		return ua.Version != nil && ua.Version.Major == major
	}
}

// MatchRegexp matches records whose raw string matches re.
func MatchRegexp(re *regexp.Regexp) Predicate {
	return func(ua UserAgent) bool {
		return ua.Matches(re)
	}
}

// And matches records accepted by every predicate. Nil predicates are skipped.
func And(preds ...Predicate) Predicate {
	return func(ua UserAgent) bool {
		for _, p := range preds {
			if p != nil && !p(ua) {
				return false
			}
		}
		return true
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(ua UserAgent) bool { return !p(ua) }
}
