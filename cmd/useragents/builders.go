package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/useragents/pkg/chrome"
	"github.com/dmitrymomot/useragents/pkg/firefox"
	"github.com/dmitrymomot/useragents/pkg/googlebot"
	"github.com/dmitrymomot/useragents/pkg/logger"
	"github.com/dmitrymomot/useragents/pkg/platform"
)

// parseOptionalOS accepts an empty value, leaving the OS to be sampled.
func parseOptionalOS(s string) (platform.OS, error) {
	if s == "" {
		return "", nil
	}
	return platform.ParseOS(s)
}

func chromeCmd(a *app) *cobra.Command {
	var (
		count  int
		osName string
		opts   chrome.Options
	)

	cmd := &cobra.Command{
		Use:   "chrome",
		Short: "Build Chrome User-Agent strings",
		Long: `Build Chrome User-Agent strings. Flags that are not given are sampled.

Example:
  useragents chrome --os windows --os-version 10 --version 100.0.4758.80
  useragents chrome --os linux --arch x86_64 --distro ubuntu -n 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseOptionalOS(osName)
			if err != nil {
				return err
			}
			opts.OS = target

			a.log.DebugContext(cmd.Context(), "building", logger.Family("chrome"), logger.Count(count))
			return repeat(cmd.OutOrStdout(), count, func() (string, error) {
				return chrome.Random(opts)
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of user agents to print")
	cmd.Flags().StringVar(&opts.Version, "version", "", "Chrome version")
	cmd.Flags().StringVar(&osName, "os", "", "windows, macos, linux or android")
	cmd.Flags().StringVar(&opts.OSVersion, "os-version", "", "OS version, e.g. 10, 10.15.7, 12")
	cmd.Flags().StringVar(&opts.LinuxDistro, "distro", "", "Linux distro, e.g. ubuntu")
	cmd.Flags().StringVar(&opts.Arch, "arch", "", "architecture key of the chosen OS")
	cmd.Flags().StringVar(&opts.AndroidDevice, "device", "", "Android device model")

	return cmd
}

func firefoxCmd(a *app) *cobra.Command {
	var (
		count  int
		osName string
		opts   firefox.Options
	)

	cmd := &cobra.Command{
		Use:   "firefox",
		Short: "Build Firefox User-Agent strings",
		Long: `Build Firefox User-Agent strings. Flags that are not given are sampled.

Example:
  useragents firefox --os android --version 91.3.0
  useragents firefox --os linux --encryption usa --lang en-US`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseOptionalOS(osName)
			if err != nil {
				return err
			}
			opts.OS = target

			a.log.DebugContext(cmd.Context(), "building", logger.Family("firefox"), logger.Count(count))
			return repeat(cmd.OutOrStdout(), count, func() (string, error) {
				return firefox.Random(opts)
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of user agents to print")
	cmd.Flags().StringVar(&opts.Version, "version", "", "Firefox version")
	cmd.Flags().StringVar(&opts.Lang, "lang", "", "language tag (Linux only)")
	cmd.Flags().StringVar(&opts.Encryption, "encryption", "", "usa, international, none or no (Linux only)")
	cmd.Flags().StringVar(&osName, "os", "", "windows, macos, linux or android")
	cmd.Flags().StringVar(&opts.OSVersion, "os-version", "", "OS version (Windows and macOS)")
	cmd.Flags().StringVar(&opts.LinuxDistro, "distro", "", "Linux distro, e.g. ubuntu")
	cmd.Flags().StringVar(&opts.Arch, "arch", "", "architecture key of the chosen OS")
	cmd.Flags().StringVar(&opts.DeviceType, "device-type", "", "mobile or tablet (Android only)")

	return cmd
}

func googlebotCmd(a *app) *cobra.Command {
	var (
		count      int
		crawler    string
		compatible string
		chromeVer  string
	)

	cmd := &cobra.Command{
		Use:   "googlebot",
		Short: "Build Googlebot User-Agent strings",
		Long: `Build Googlebot User-Agent strings. Without flags every field is sampled;
with any flag the string is built exactly as requested.

Example:
  useragents googlebot --crawler search
  useragents googlebot --compatible mobile --chrome-version 100.0.4896.127`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := googlebot.Options{
				Crawler:       googlebot.Crawler(crawler),
				Compatible:    googlebot.Compatible(compatible),
				ChromeVersion: chromeVer,
			}
			sample := !cmd.Flags().Changed("crawler") &&
				!cmd.Flags().Changed("compatible") &&
				!cmd.Flags().Changed("chrome-version")

			a.log.DebugContext(cmd.Context(), "building", logger.Family("googlebot"), logger.Count(count))
			return repeat(cmd.OutOrStdout(), count, func() (string, error) {
				if sample {
					return googlebot.Random(opts)
				}
				return googlebot.Build(opts)
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of user agents to print")
	cmd.Flags().StringVar(&crawler, "crawler", "", "search, image or video")
	cmd.Flags().StringVar(&compatible, "compatible", "", "desktop or mobile (search crawler only)")
	cmd.Flags().StringVar(&chromeVer, "chrome-version", "", "Chrome version of the compatible variants")

	return cmd
}
