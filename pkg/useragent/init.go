package useragent

import "sort"

func init() {
	// Detection order matters: Edge and friends embed "Chrome/" too.
	sort.Slice(browserPatterns, func(i, j int) bool {
		return browserPatterns[i].OrderHint < browserPatterns[j].OrderHint
	})
}
