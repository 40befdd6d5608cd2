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

func newKeysCmd(flags *rootFlags) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List translation keys per language",
		Long: `Keys lists every namespace-qualified translation key in the locale
directory, one line per language and key, sorted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}

			files, err := loader.Files(os.DirFS(rt.dir))
			if err != nil {
				return err
			}
			rt.log.Debug("dictionaries loaded", logger.File(rt.dir), logger.Count("files", len(files)))

			byLang := keysByLanguage(files)
			for _, language := range slices.Sorted(maps.Keys(byLang)) {
				if lang != "" && language != lang {
					continue
				}
				for _, key := range slices.Sorted(maps.Keys(byLang[language])) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", language, key)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "only list keys for this language")
	return cmd
}
