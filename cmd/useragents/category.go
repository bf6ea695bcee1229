package main

import (
	"fmt"
	"io"
	"regexp"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/useragents/pkg/category"
	"github.com/dmitrymomot/useragents/pkg/random"
	"github.com/dmitrymomot/useragents/pkg/useragent"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

func categoryCmd(a *app) *cobra.Command {
	var (
		count  int
		match  string
		all    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "category NAME",
		Short: "Sample real-world User-Agent strings from a corpus",
		Long: `Sample real-world User-Agent strings from a corpus. Run "useragents
categories" to list the available corpora.

Example:
  useragents category chrome
  useragents category ios --match 'iPad' -n 3
  useragents category googlebot --all --output yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputText && output != outputYAML {
				return fmt.Errorf("%w: --output must be %q or %q", useragent.ErrInvalidArgument, outputText, outputYAML)
			}
			if err := checkCount(count); err != nil {
				return err
			}

			re, err := compileOptional(match)
			if err != nil {
				return err
			}

			cat, err := a.registry.Category(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if all {
				return writeRecords(w, output, filterRecords(cat, re))
			}

			if output == outputYAML {
				return writeRecords(w, output, sampleRecords(cat, re, count))
			}

			missed := 0
			err = repeat(w, count, func() (string, error) {
				s, ok, err := cat.RandomMatching(match)
				if !ok {
					missed++
				}
				return s, err
			})
			if err != nil {
				return err
			}
			if missed > 0 {
				a.log.WarnContext(cmd.Context(), "no matching user agent", "pattern", match, "misses", missed)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of user agents to print")
	cmd.Flags().StringVar(&match, "match", "", "regular expression the user agent must match")
	cmd.Flags().BoolVar(&all, "all", false, "print every (matching) record in corpus order")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text or yaml")

	return cmd
}

func categoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the available corpora",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.provider.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// compileOptional compiles pattern, returning nil for an empty pattern.
func compileOptional(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: --match: %v", useragent.ErrInvalidArgument, err)
	}
	return re, nil
}

// filterRecords returns the records matching re (all for nil), in corpus order.
func filterRecords(cat *category.Category, re *regexp.Regexp) []useragent.UserAgent {
	var out []useragent.UserAgent
	for rec := range cat.All() {
		if re == nil || rec.Matches(re) {
			out = append(out, rec)
		}
	}
	return out
}

// sampleRecords draws count records matching re, with replacement.
func sampleRecords(cat *category.Category, re *regexp.Regexp, count int) []useragent.UserAgent {
	matching := filterRecords(cat, re)
	if len(matching) == 0 {
		return nil
	}

	out := make([]useragent.UserAgent, 0, count)
	for range count {
		out = append(out, random.Pick(matching))
	}
	return out
}

func writeRecords(w io.Writer, output string, records []useragent.UserAgent) error {
	if output == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, rec := range records {
		if _, err := fmt.Fprintln(w, rec.Raw); err != nil {
			return err
		}
	}
	return nil
}
