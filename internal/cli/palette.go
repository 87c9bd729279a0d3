package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	oerrors "github.com/ontouml/ontokit/pkg/errors"
	"github.com/ontouml/ontokit/pkg/model"
	"github.com/ontouml/ontokit/pkg/ontology"
)

// paletteRow is the JSON form of one palette entry.
type paletteRow struct {
	Category    string   `json:"category"`
	Base        string   `json:"base"`
	Derived     string   `json:"derived"`
	Stereotypes []string `json:"stereotypes"`
}

// paletteCommand creates the palette command.
func (c *CLI) paletteCommand() *cobra.Command {
	var (
		asJSON   bool
		category string
		check    string
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the colors assigned to each ontological category",
		Long: `Show the category color table used by paint. Sortal categories have a
base color for their kinds and a derived shade for subkinds, roles and
phases.

--category limits the table to one category, given by name or by a
kind-level stereotype. --check reports whether a fill color is a category
color that paint propagates to specializations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ontology.DefaultPalette()
			if check != "" {
				return checkColor(cmd, p, check)
			}
			entries := p.Entries()
			if category != "" {
				cat, err := parseCategoryFlag(category)
				if err != nil {
					return err
				}
				entries = filterEntries(entries, cat)
			}
			if asJSON {
				return writePaletteJSON(cmd, entries)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPalette(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the palette as JSON")
	cmd.Flags().StringVar(&category, "category", "", "show one category, by name or kind-level stereotype")
	cmd.Flags().StringVar(&check, "check", "", "check whether a hex color is a category color")
	return cmd
}

// parseCategoryFlag accepts a category name such as "relator" or a
// stereotype that fixes one, such as "relatorKind".
func parseCategoryFlag(s string) (ontology.Category, error) {
	if c, ok := ontology.ParseCategory(s); ok {
		return c, nil
	}
	if c, ok := ontology.CategoryOf(s); ok {
		return c, nil
	}
	names := make([]string, 0, len(ontology.Categories()))
	for _, c := range ontology.Categories() {
		names = append(names, c.String())
	}
	return 0, oerrors.New(oerrors.ErrCodeInvalidInput,
		"unknown category %q (expected one of %s, or a kind-level stereotype)", s, strings.Join(names, ", "))
}

func filterEntries(entries []ontology.Entry, c ontology.Category) []ontology.Entry {
	var out []ontology.Entry
	for _, e := range entries {
		if e.Name == c.String() {
			out = append(out, e)
		}
	}
	return out
}

func checkColor(cmd *cobra.Command, p ontology.Palette, hex string) error {
	c, err := model.ParseColor(hex)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrCodeInvalidInput, err, "invalid color %q", hex)
	}
	out := cmd.OutOrStdout()
	if !p.Recognized(c) {
		fmt.Fprintf(out, "%s is not a category color\n", c.Hex())
		return nil
	}
	d, _ := p.DerivedFor(c)
	fmt.Fprintf(out, "%s is a category color; specializations get %s\n", c.Hex(), d.Hex())
	return nil
}

func writePaletteJSON(cmd *cobra.Command, entries []ontology.Entry) error {
	rows := make([]paletteRow, len(entries))
	for i, e := range entries {
		rows[i] = paletteRow{
			Category:    e.Name,
			Base:        e.Base.Hex(),
			Derived:     e.Derived.Hex(),
			Stereotypes: e.Stereotypes,
		}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderPalette(entries []ontology.Entry) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Name,
			swatch(e.Base.Hex()),
			swatch(e.Derived.Hex()),
			strings.Join(e.Stereotypes, ", "),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Category", "Base", "Derived", "Stereotypes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return cellStyle.Foreground(colorWhite)
			}
			return cellStyle
		})

	return StyleTitle.Render("OntoUML category palette") + "\n" + t.Render()
}

// swatch renders a color block followed by its hex code.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " " + hex
}
