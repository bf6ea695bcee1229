package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/useragents/pkg/category"
	"github.com/dmitrymomot/useragents/pkg/logger"
	"github.com/dmitrymomot/useragents/pkg/useragent"
)

func importCmd(a *app) *cobra.Command {
	var (
		input         string
		output        string
		keepMalformed bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert raw User-Agent strings into a corpus file",
		Long: `Read raw User-Agent strings, one per line, classify each one and write a
corpus CSV file in the layout the category command reads.

Example:
  useragents import --input access-agents.txt --output corpora/mixed.csv
  USERAGENTS_DATA_DIR=corpora useragents category mixed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			records, skipped, err := parseLines(r, keepMalformed)
			if err != nil {
				return err
			}

			if err := writeCorpus(output, cmd.OutOrStdout(), records); err != nil {
				return err
			}

			a.log.InfoContext(cmd.Context(), "corpus written",
				logger.Path(output),
				logger.Count(len(records)),
				"skipped", skipped,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "file of raw user agents (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "corpus file to write (default stdout)")
	cmd.Flags().BoolVar(&keepMalformed, "keep-malformed", false, "keep strings no browser, OS or device was recognized in")

	return cmd
}

// writeCorpus writes records to path, or to stdout for "" and "-".
// The file is closed before returning so a failed flush is reported.
func writeCorpus(path string, stdout io.Writer, records []useragent.UserAgent) error {
	if path == "" || path == "-" {
		return category.WriteCSV(stdout, records)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := category.WriteCSV(f, records); err != nil {
		return errors.Join(err, f.Close())
	}
	return f.Close()
}

// parseLines classifies every non-empty line. Unrecognized strings are
// dropped unless keepMalformed is set.
func parseLines(r io.Reader, keepMalformed bool) ([]useragent.UserAgent, int, error) {
	var (
		records []useragent.UserAgent
		skipped int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		rec, err := useragent.Parse(normalizeLine(sc.Text()))
		switch {
		case errors.Is(err, useragent.ErrEmptyUserAgent):
			continue
		case errors.Is(err, useragent.ErrMalformedUserAgent) && !keepMalformed:
			skipped++
			continue
		case err != nil && !errors.Is(err, useragent.ErrMalformedUserAgent):
			return nil, skipped, err
		}
		records = append(records, rec)
	}
	return records, skipped, sc.Err()
}

// normalizeLine drops control characters and collapses whitespace runs, as
// found in log-extracted User-Agent values.
func normalizeLine(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
