package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/useragents/pkg/useragent"
)

func randomCmd(a *app) *cobra.Command {
	var (
		count   int
		family  string
		osName  string
		match   string
		mobile  bool
		desktop bool
		bot     bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a User-Agent from a randomly chosen family",
		Long: `Print a User-Agent from a randomly chosen family (bots, browsers and
mobile operating systems). Filters narrow the pick; when the chosen family has
nothing matching, nothing is printed for that draw.

Example:
  useragents random -n 5
  useragents random --mobile
  useragents random --family chrome --os android`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var preds []useragent.Predicate
			if mobile {
				preds = append(preds, useragent.IsMobile)
			}
			if desktop {
				preds = append(preds, useragent.IsDesktop)
			}
			if bot {
				preds = append(preds, useragent.IsBot)
			}
			if osName != "" {
				preds = append(preds, useragent.OSIs(osName))
			}
			if match != "" {
				re, err := regexp.Compile(match)
				if err != nil {
					return fmt.Errorf("%w: --match: %v", useragent.ErrInvalidArgument, err)
				}
				preds = append(preds, useragent.MatchRegexp(re))
			}

			var pred useragent.Predicate
			if len(preds) > 0 {
				pred = useragent.And(preds...)
			}

			missed := 0
			err := repeat(cmd.OutOrStdout(), count, func() (string, error) {
				var (
					s   string
					ok  bool
					err error
				)
				if family != "" {
					s, ok, err = a.registry.Family(family, pred)
				} else {
					s, ok, err = a.registry.Random(pred)
				}
				if err != nil {
					return "", err
				}
				if !ok {
					missed++
				}
				return s, nil
			})
			if err != nil {
				return err
			}
			if missed > 0 {
				a.log.WarnContext(cmd.Context(), "no matching user agent", "misses", missed)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of user agents to print")
	cmd.Flags().StringVarP(&family, "family", "f", "", "restrict to one family (chrome, firefox, googlebot, safari, ...)")
	cmd.Flags().StringVar(&osName, "os", "", "OS family of the parsed user agent, e.g. Windows, Android, iOS")
	cmd.Flags().StringVar(&match, "match", "", "regular expression the user agent must match")
	cmd.Flags().BoolVar(&mobile, "mobile", false, "only phones")
	cmd.Flags().BoolVar(&desktop, "desktop", false, "only desktops")
	cmd.Flags().BoolVar(&bot, "bot", false, "only crawlers")

	return cmd
}
