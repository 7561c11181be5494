package main

import (
	"github.com/spf13/cobra"

	"note-keep/internal/services/editor"
)

var (
	addTitle   string
	addContent string
	addTags    []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		if err := a.Start(cmd.Context()); err != nil {
			return err
		}

		a.OpenAdd()
		a.Editor().SetForm(editor.Form{
			Title:   addTitle,
			Content: addContent,
			Tags:    addTags,
		})
		return a.Submit(cmd.Context())
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "note title (required)")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "note content (required)")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "comma-separated tags")
}
