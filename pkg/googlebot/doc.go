// Package googlebot builds User-Agent strings of Google's crawlers.
//
//	googlebot.Build(googlebot.Options{})
//	// GoogleBot/2.1 (+http://www.google.com/bot.html)
//
//	googlebot.Build(googlebot.Options{Compatible: googlebot.Mobile, ChromeVersion: "100.0.4896.127"})
//	// Mozilla/5.0 (Linux; Android 6.0.1; Nexus 5X Build/MMB29P) AppleWebKit/537.36 (KHTML, like Gecko)
//	// Chrome/100.0.4896.127 Mobile Safari/537.36 (compatible; GoogleBot/2.1; +http://www.google.com/bot.html)
package googlebot
