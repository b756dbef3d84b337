package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/orienta/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show or check the area catalog",
	Long: `Print the areas, professions and question counts of the active catalog.

With --validate FILE, load FILE as a catalog and report whether it is valid.
With --yaml, dump the active catalog as YAML, ready to edit and pass back
with --catalog.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if file, _ := cmd.Flags().GetString("validate"); file != "" {
			cat, err := catalog.LoadFile(file)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: ok (%d áreas, %d preguntas)\n", file, len(cat.Areas()), cat.NumQuestions())
			return nil
		}

		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
			return cat.WriteYAML(out)
		}
		printCatalog(out, cat)
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("validate", "", "Validate a catalog file and exit")
	catalogCmd.Flags().Bool("yaml", false, "Dump the active catalog as YAML")
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	counts := cat.OptionCounts()
	for _, a := range cat.Areas() {
		fmt.Fprintf(w, "%s (%d opciones)\n", a, counts[a])
		fmt.Fprintf(w, "  %s\n", strings.Join(cat.Professions(a), ", "))
	}
	fmt.Fprintf(w, "\n%d preguntas, %d favoritas por defecto\n", cat.NumQuestions(), len(cat.SeedFavorites()))
}
