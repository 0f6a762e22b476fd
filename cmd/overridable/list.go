package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vango-go/overridable/internal/preview"
	"github.com/vango-go/overridable/pkg/vdom"
)

// listEntry is one row of `overridable list`.
type listEntry struct {
	ID           string   `json:"id"`
	Status       string   `json:"status"`
	Replacements []string `json:"replacements,omitempty"`
}

func listCmd(configPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List extension points and their overrides",
		Long: `List every identifier on the demo page, and every identifier in the
manifest, with the override it resolves to.

Status is one of:
  default   no override, the original renders
  replace   a single replacement renders instead
  expand    every replacement in the list renders
  unused    the manifest names an identifier the page does not have`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			entries := listEntries(e)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTATUS\tREPLACEMENTS")
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.ID, entry.Status, strings.Join(entry.Replacements, ", "))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	return cmd
}

func listEntries(e *env) []listEntry {
	reg := e.store.GetAll()
	known := make(map[string]bool)
	var entries []listEntry

	add := func(id string, onPage bool) {
		entry := listEntry{ID: id, Status: "default"}
		if ov, ok := reg.Lookup(id); ok {
			entry.Status = "replace"
			if ov.IsList() {
				entry.Status = "expand"
			}
			for _, rep := range ov.Replacements() {
				entry.Replacements = append(entry.Replacements, vdom.DisplayName(rep))
			}
		}
		if !onPage {
			entry.Status = "unused"
		}
		entries = append(entries, entry)
	}

	for _, id := range preview.DemoIDs() {
		known[id] = true
		add(id, true)
	}
	for _, id := range reg.IDs() {
		if !known[id] {
			add(id, false)
		}
	}
	return entries
}
