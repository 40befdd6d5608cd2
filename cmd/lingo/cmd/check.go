package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/core/i18n"
	"github.com/dmitrymomot/lingo/core/loader"
	"github.com/dmitrymomot/lingo/core/logger"
	"github.com/dmitrymomot/lingo/core/messageformat"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate every dictionary template",
		Long: `Check parses every template in the locale directory and reports the ones
the formatting engine would reject, with their file, key and offset.

Templates in the legacy placeholder syntax are normalized first, exactly as a
bundle would normalize them, so check accepts what a bundle accepts.`,
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

			checked, findings := 0, 0
			for _, file := range files {
				leaves := flattenLeaves(i18n.FromMap(file.Data))
				for _, key := range slices.Sorted(maps.Keys(leaves)) {
					checked++
					src := i18n.NormalizeTemplate(leaves[key], "", "")
					if _, err := messageformat.Parse(src); err != nil {
						findings++
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s: %v\n", file.Path, key, err)
					}
				}
			}

			if findings > 0 {
				return fmt.Errorf("found %d malformed template(s)", findings)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked %d templates in %d files\n", checked, len(files))
			return nil
		},
	}
}
