package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cliento/cliento/internal/application/pages"
	"github.com/cliento/cliento/internal/domain/entities"
)

func notesCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage session notes",
	}
	cmd.AddCommand(
		notesListCmd(a),
		notesCreateCmd(a),
		notesUpdateCmd(a),
		notesDeleteCmd(a),
	)
	return cmd
}

func loadNotesPage(cmd *cobra.Command, a **app) (*pages.NotesPage, error) {
	ctx := cmd.Context()
	if err := requireAuth(ctx, *a); err != nil {
		return nil, err
	}
	page := pages.NewNotesPage((*a).api)
	if err := page.Load(ctx); err != nil {
		return nil, err
	}
	return page, nil
}

func notesListCmd(a **app) *cobra.Command {
	var search string
	var patient int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadNotesPage(cmd, a)
			if err != nil {
				return err
			}
			page.Query = search
			page.SelectedPatient = patient

			rows := [][]string{}
			for _, n := range page.Visible() {
				content := n.Content
				if len(content) > 60 {
					content = content[:57] + "..."
				}
				rows = append(rows, []string{
					fmt.Sprint(n.ID),
					page.PatientName(n),
					n.UpdatedAt.Format("2006-01-02 15:04"),
					content,
				})
			}
			printTable([]string{"ID", "PATIENT", "UPDATED", "CONTENT"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by content or patient name")
	cmd.Flags().Int64Var(&patient, "patient", 0, "show only one patient's notes")
	return cmd
}

func notesCreateCmd(a **app) *cobra.Command {
	var draft entities.Note

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadNotesPage(cmd, a)
			if err != nil {
				return err
			}
			if err := page.Form.OpenNew(draft); err != nil {
				return err
			}
			if err := page.Form.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Note created")
			return nil
		},
	}
	cmd.Flags().Int64Var(&draft.ConsultationID, "consultation", 0, "consultation id")
	cmd.Flags().StringVar(&draft.Content, "content", "", "note content")
	return cmd
}

func notesUpdateCmd(a **app) *cobra.Command {
	var id int64
	var content string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a note's content",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadNotesPage(cmd, a)
			if err != nil {
				return err
			}
			if err := page.Form.OpenEdit(id); err != nil {
				return err
			}

			edited := page.Form.Draft()
			edited.Content = content
			if err := page.Form.SetDraft(edited); err != nil {
				return err
			}
			if err := page.Form.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("Updated note %d\n", id)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "note id")
	cmd.Flags().StringVar(&content, "content", "", "new content")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("content")
	return cmd
}

func notesDeleteCmd(a **app) *cobra.Command {
	var id int64
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadNotesPage(cmd, a)
			if err != nil {
				return err
			}

			removed, err := page.Delete(cmd.Context(), id, confirm(
				fmt.Sprintf("Delete note %d?", id), yes))
			if err != nil {
				return err
			}
			if removed {
				fmt.Printf("Deleted note %d\n", id)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "note id")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation")
	cmd.MarkFlagRequired("id")
	return cmd
}
