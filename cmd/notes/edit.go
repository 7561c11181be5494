package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
	editTags    []string
)

var editCmd = &cobra.Command{
	Use:   "edit <note-id>",
	Short: "Edit an existing note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		if err := a.Start(cmd.Context()); err != nil {
			return err
		}

		noteID := args[0]
		target, found := findNote(a.Store().Snapshot(), noteID)
		if !found {
			return fmt.Errorf("no local note with id %s", noteID)
		}

		// Seed the form from the note, then overlay only the flags the
		// user actually set.
		a.OpenEdit(target)
		form := a.Editor().Form()
		if cmd.Flags().Changed("title") {
			form.Title = editTitle
		}
		if cmd.Flags().Changed("content") {
			form.Content = editContent
		}
		if cmd.Flags().Changed("tags") {
			form.Tags = editTags
		}
		a.Editor().SetForm(form)
		return a.Submit(cmd.Context())
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "new content")
	editCmd.Flags().StringSliceVar(&editTags, "tags", nil, "new comma-separated tags")
}
