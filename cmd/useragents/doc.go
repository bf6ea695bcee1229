// Command useragents prints generated and real-world User-Agent strings.
//
//	useragents random [-n N] [--family NAME] [--mobile|--desktop|--bot] [--os FAMILY] [--match REGEX]
//	useragents chrome [--version V] [--os OS] [--os-version V] [--distro D] [--arch A] [--device M]
//	useragents firefox [--version V] [--os OS] [--os-version V] [--lang L] [--encryption E] [--device-type T]
//	useragents googlebot [--crawler C] [--compatible M] [--chrome-version V]
//	useragents category NAME [--match REGEX] [--all] [--output text|yaml]
//	useragents categories
//	useragents import [--input FILE] [--output FILE] [--keep-malformed]
//
// Generated strings go to stdout, diagnostics to stderr.
package main
