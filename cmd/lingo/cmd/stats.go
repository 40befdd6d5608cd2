package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/core/loader"
	"github.com/dmitrymomot/lingo/core/logger"
)

func newStatsCmd(flags *rootFlags) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report per-language coverage",
		Long: `Stats compares every language against the base language and reports how
many of the base keys it covers, which of them are missing and how many keys
it carries that the base language does not have.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}
			if base == "" {
				base = rt.base
			}

			files, err := loader.Files(os.DirFS(rt.dir))
			if err != nil {
				return err
			}
			rt.log.Debug("dictionaries loaded", logger.File(rt.dir), logger.Count("files", len(files)))

			byLang := keysByLanguage(files)
			baseKeys := byLang[base]
			if len(baseKeys) == 0 {
				return fmt.Errorf("base language %s has no keys in %s", base, rt.dir)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "base language: %s (%d keys)\n\n", base, len(baseKeys))

			for _, language := range slices.Sorted(maps.Keys(byLang)) {
				keys := byLang[language]

				present, extra := 0, 0
				for key := range keys {
					if _, ok := baseKeys[key]; ok {
						present++
					} else {
						extra++
					}
				}
				missing := len(baseKeys) - present
				coverage := 100 * float64(present) / float64(len(baseKeys))

				fmt.Fprintf(out, "  %-10s %6.1f%%  %4d missing  %4d extra\n",
					language, coverage, missing, extra)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", "", "base language to compare against (default $LINGO_BASE_LANG or en)")
	return cmd
}
