package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"note-keep/internal/services/notes"
)

var pinCmd = &cobra.Command{
	Use:   "pin <note-id>",
	Short: "Toggle a note's pinned flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		if err := a.Start(cmd.Context()); err != nil {
			return err
		}

		target, found := findNote(a.Store().Snapshot(), args[0])
		if !found {
			return fmt.Errorf("no local note with id %s", args[0])
		}
		return a.TogglePin(cmd.Context(), target)
	},
}

func findNote(collection []notes.Note, noteID string) (notes.Note, bool) {
	for _, n := range collection {
		if n.ID == noteID {
			return n, true
		}
	}
	return notes.Note{}, false
}
