package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/useragents/pkg/useragent"
)

var (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	safariMobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	botUA           = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

// Helper variables to avoid compiler optimizations removing the function call
var (
	result useragent.UserAgent
	err    error
)

func BenchmarkParse_ChromeDesktop(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err = useragent.Parse(chromeDesktopUA)
	}
}

func BenchmarkParse_SafariMobile(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err = useragent.Parse(safariMobileUA)
	}
}

func BenchmarkParse_Bot(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err = useragent.Parse(botUA)
	}
}
