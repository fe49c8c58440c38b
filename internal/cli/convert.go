package cli

import (
	"fmt"
	"strings"

	"github.com/govalues/measure"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var withSymbol bool
	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between two units",
		Long: `Convert a value from one unit to another unit of the same category.

Examples:
    unitconv convert 1 m ft
    unitconv convert 3,000 feet km --decimals 3
    unitconv convert 1234.5 km m --locale de
    unitconv convert -- -40 degC degF --with-symbol`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.unit(args[1])
			if err != nil {
				return err
			}
			to, err := a.unit(args[2])
			if err != nil {
				return err
			}
			s, err := a.conv.Convert(args[0], from.ID, to.ID, a.options())
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), measure.Conversion{UnitID: to.ID, Value: s})
			}
			if withSymbol && to.Symbol != "" {
				s += " " + to.Symbol
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().BoolVarP(&withSymbol, "with-symbol", "s", false, "append the target unit symbol")
	return cmd
}

func newMultiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "multi <value> <from> [category]",
		Short: "Convert a value into every unit of a category",
		Long: `Convert a value into every unit of a category, in catalog order.
The category defaults to the category of the source unit.

Examples:
    unitconv multi 100 degC
    unitconv multi 1 GiB data --decimals 0`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.unit(args[1])
			if err != nil {
				return err
			}
			var categoryID string
			if len(args) == 3 {
				categoryID = args[2]
			}
			res, err := a.conv.MultiConvert(args[0], from.ID, categoryID, a.options())
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			tw := newTable(cmd.OutOrStdout())
			for _, c := range res {
				fmt.Fprintf(tw, "%s\t%s\n", c.UnitID, c.Value)
			}
			return tw.Flush()
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search units by name, symbol or alias",
		Long: `Search units by name, symbol or alias, ignoring case and diacritics.
Results are ranked by how early and how tightly the query matches.

Examples:
    unitconv search feet
    unitconv search "square meter"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			items := measure.NewIndex(a.conv.Registry()).Search(query)
			a.log.Debug("search finished", "query", query, "results", len(items))
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			tw := newTable(cmd.OutOrStdout())
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", it.ID, it.Label, it.Score)
			}
			return tw.Flush()
		},
	}
}

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <token>",
		Short: "Resolve a unit by identifier, symbol or alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.unit(args[0])
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), newUnitView(u))
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Label(), u.CategoryID)
			return tw.Flush()
		},
	}
}

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units [category]",
		Short: "List categories, or the units of a category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := a.conv.Registry()
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				cats := reg.Categories()
				if a.jsonOutput() {
					views := make([]categoryView, len(cats))
					for i, c := range cats {
						views[i] = newCategoryView(c)
					}
					return writeJSON(w, views)
				}
				tw := newTable(w)
				for _, c := range cats {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, c.BaseUnitID)
				}
				return tw.Flush()
			}

			if _, ok := reg.CategoryByID(args[0]); !ok {
				return fmt.Errorf("%w: %q", measure.ErrUnknownCategory, args[0])
			}
			units := reg.UnitsByCategory(args[0])
			if a.jsonOutput() {
				views := make([]unitView, len(units))
				for i, u := range units {
					views[i] = newUnitView(u)
				}
				return writeJSON(w, views)
			}
			tw := newTable(w)
			for _, u := range units {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Label(), u.Factor)
			}
			return tw.Flush()
		},
	}
}
