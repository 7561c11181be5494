package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	listQuery string
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, optionally filtered by a search query",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		if err := a.Start(cmd.Context()); err != nil {
			return err
		}

		if strings.TrimSpace(listQuery) != "" {
			a.Search(strings.ToLower(listQuery))
		}
		displayed := a.Displayed()

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(displayed)
		}

		if len(displayed) == 0 {
			if a.SearchState().Active {
				fmt.Println("No notes found matching your search")
			} else {
				fmt.Println("No notes yet. Add one with 'notes add'.")
			}
			return nil
		}

		for _, n := range displayed {
			pin := " "
			if n.IsPinned {
				pin = "*"
			}
			line := fmt.Sprintf("%s %s  %s", pin, n.ID, n.Title)
			if len(n.Tags) > 0 {
				line += "  [" + strings.Join(n.Tags, ", ") + "]"
			}
			fmt.Println(line)
			fmt.Printf("    %s  %s\n", n.CreatedAt.Format("2006-01-02 15:04"), firstLine(n.Content))
		}
		return nil
	},
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "case-insensitive substring search over title and content")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}
