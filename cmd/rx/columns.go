package main

import (
	"fmt"
	"path/filepath"

	"github.com/groundswellhq/rolodex/internal/selection"
	"github.com/spf13/cobra"
)

// columnsPath returns the per-resource column visibility file under the
// state directory, e.g. ~/.local/state/rolodex/columns-contacts.toml.
func columnsPath(resource string) (string, error) {
	dir, err := stateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "columns-"+resource+".toml"), nil
}

func columnSetFor(resource string) (*selection.ColumnSet, string, error) {
	var defaults []selection.Column
	switch resource {
	case "contacts":
		defaults = selection.DefaultContactColumns
	case "companies":
		defaults = selection.DefaultCompanyColumns
	default:
		return nil, "", fmt.Errorf("unknown resource %q (must be contacts or companies)", resource)
	}
	path, err := columnsPath(resource)
	if err != nil {
		return nil, "", err
	}
	cs := selection.NewColumnSet(defaults)
	if err := cs.Load(path); err != nil {
		return nil, "", err
	}
	return cs, path, nil
}

var columnsCmd = &cobra.Command{
	Use:     "columns",
	Short:   "Manage list column visibility",
	GroupID: "system",
	// Column preferences are local files; skip the client setup.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

var columnsShowCmd = &cobra.Command{
	Use:   "show <contacts|companies>",
	Short: "Show column visibility for a resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, _, err := columnSetFor(args[0])
		if err != nil {
			return err
		}
		for _, id := range cs.All() {
			marker := " "
			if cs.IsVisible(id) {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, id)
		}
		return nil
	},
}

var columnsEnableCmd = &cobra.Command{
	Use:   "enable <contacts|companies> <column>...",
	Short: "Make columns visible",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setColumns(args[0], args[1:], true)
	},
}

var columnsDisableCmd = &cobra.Command{
	Use:   "disable <contacts|companies> <column>...",
	Short: "Hide columns",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setColumns(args[0], args[1:], false)
	},
}

var columnsResetCmd = &cobra.Command{
	Use:   "reset <contacts|companies>",
	Short: "Restore default column visibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var defaults []selection.Column
		switch args[0] {
		case "contacts":
			defaults = selection.DefaultContactColumns
		case "companies":
			defaults = selection.DefaultCompanyColumns
		default:
			return fmt.Errorf("unknown resource %q (must be contacts or companies)", args[0])
		}
		path, err := columnsPath(args[0])
		if err != nil {
			return err
		}
		if err := selection.NewColumnSet(defaults).Save(path); err != nil {
			return err
		}
		fmt.Printf("columns for %s reset to defaults\n", args[0])
		return nil
	},
}

func setColumns(resource string, ids []string, visible bool) error {
	cs, path, err := columnSetFor(resource)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := cs.Set(id, visible); err != nil {
			return err
		}
	}
	if err := cs.Save(path); err != nil {
		return err
	}
	verb := "hidden"
	if visible {
		verb = "visible"
	}
	fmt.Printf("%d column(s) now %s\n", len(ids), verb)
	return nil
}

func init() {
	columnsCmd.AddCommand(columnsShowCmd)
	columnsCmd.AddCommand(columnsEnableCmd)
	columnsCmd.AddCommand(columnsDisableCmd)
	columnsCmd.AddCommand(columnsResetCmd)
}
