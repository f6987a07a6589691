package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cognicore/artikel/internal/app"
	"github.com/cognicore/artikel/internal/textsource"
	"github.com/cognicore/artikel/pkg/artikel"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var (
		text      string
		inputFile string
		cache     string
		cachePath string
	)

	cmd := &cobra.Command{
		Use:   "check [text]",
		Short: "Check text for missing articles",
		Example: `  artikel check --text "It's beautiful city. He is actor."
  artikel check --input-file book.txt --cache file --cache-path hashes.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case inputFile != "":
				var err error
				if text, err = textsource.ReadFile(inputFile); err != nil {
					return err
				}
			case text == "" && len(args) > 0:
				text = strings.Join(args, " ")
			case text == "":
				return errors.New("either --text or --input-file is required")
			}

			s := *opts.settings
			if cache != "" {
				s.Cache.Type = cache
			}
			if cachePath != "" {
				s.Cache.Path = cachePath
			}
			if err := s.Validate(); err != nil {
				return err
			}

			checker, err := app.NewChecker(cmd.Context(), &s, opts.log)
			if err != nil {
				return err
			}
			defer checker.Close()

			results, err := checker.ProcessText(cmd.Context(), text)
			Report(cmd.OutOrStdout(), results)

			if failed := artikel.FailedSentences(err); len(failed) > 0 {
				for _, f := range failed {
					fmt.Fprintf(cmd.ErrOrStderr(), "could not check '%s': %v\n", f.Text, f.Err)
				}
				return fmt.Errorf("%d sentences could not be checked", len(failed))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "text to check")
	cmd.Flags().StringVar(&inputFile, "input-file", "", "file to check (.html and .htm are reduced to visible text)")
	cmd.Flags().StringVar(&cache, "cache", "", "result cache: none|memory|file|sqlite|redis")
	cmd.Flags().StringVar(&cachePath, "cache-path", "", "cache file for the file and sqlite caches")

	return cmd
}

var (
	fine   = color.New(color.FgGreen)
	header = color.New(color.FgBlue)
	span   = color.New(color.FgRed)
	fix    = color.New(color.FgGreen)
)

// Report prints results the way a reader scans them: fine sentences in green,
// others with the suggested span in red and the replacements below.
func Report(w io.Writer, results []suggest.SentenceResult) {
	for _, res := range results {
		if strings.TrimSpace(res.Text) == "" {
			continue
		}
		if len(res.Suggestions) == 0 {
			fine.Fprintf(w, "Sentence '%s' is completely fine!\n", res.Text)
			continue
		}

		header.Fprintf(w, "Can suggest improvements for '%s'\n", res.Text)
		for _, s := range res.Suggestions {
			before, middle, after := cut(res.Text, s.Start, s.End)
			header.Fprintf(w, "Cause: '%s'\n", s.Cause)
			fmt.Fprint(w, before)
			span.Fprint(w, middle)
			fmt.Fprintln(w, after)
			fmt.Fprint(w, "Suggestions: ")
			fix.Fprintln(w, strings.Join(s.Replacements, "; "))
		}
		fmt.Fprintln(w)
	}
}

// cut splits text around the rune range [start, end).
func cut(text string, start, end int) (string, string, string) {
	n := utf8.RuneCountInString(text)
	start = min(max(start, 0), n)
	end = min(max(end, start), n)

	runes := []rune(text)
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}
