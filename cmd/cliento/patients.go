package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cliento/cliento/internal/application/pages"
	"github.com/cliento/cliento/internal/domain/entities"
)

func patientsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Manage patients",
	}
	cmd.AddCommand(
		patientsListCmd(a),
		patientsCreateCmd(a),
		patientsUpdateCmd(a),
		patientsDeleteCmd(a),
	)
	return cmd
}

func patientsListCmd(a **app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx, *a); err != nil {
				return err
			}

			page := pages.NewPatientsPage((*a).api)
			if err := page.Load(ctx); err != nil {
				return err
			}
			page.Query = search

			rows := [][]string{}
			for _, p := range page.Visible() {
				rows = append(rows, []string{
					fmt.Sprint(p.ID), p.FullName(), p.DNI, p.Email, p.Phone, p.BirthDate,
				})
			}
			printTable([]string{"ID", "NAME", "DNI", "EMAIL", "PHONE", "BORN"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by name, dni or email")
	return cmd
}

func patientFlags(cmd *cobra.Command, draft *entities.Patient) {
	cmd.Flags().StringVar(&draft.FirstName, "first-name", draft.FirstName, "first name")
	cmd.Flags().StringVar(&draft.LastName, "last-name", draft.LastName, "last name")
	cmd.Flags().StringVar(&draft.DNI, "dni", draft.DNI, "national id")
	cmd.Flags().StringVar(&draft.Email, "email", draft.Email, "contact email")
	cmd.Flags().StringVar(&draft.Phone, "phone", draft.Phone, "contact phone")
	cmd.Flags().StringVar(&draft.BirthDate, "birth-date", draft.BirthDate, "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&draft.Address, "address", draft.Address, "address")
	cmd.Flags().Float64Var(&draft.HeightCm, "height", draft.HeightCm, "height in cm")
	cmd.Flags().Float64Var(&draft.WeightKg, "weight", draft.WeightKg, "weight in kg")
}

func patientsCreateCmd(a **app) *cobra.Command {
	var draft entities.Patient

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx, *a); err != nil {
				return err
			}

			page := pages.NewPatientsPage((*a).api)
			if err := page.Form.OpenNew(draft); err != nil {
				return err
			}
			if err := page.Form.Submit(ctx); err != nil {
				return err
			}

			created := page.Patients.Items()
			fmt.Printf("Created patient %d\n", created[len(created)-1].ID)
			return nil
		},
	}
	patientFlags(cmd, &draft)
	cmd.Flags().StringVar(&draft.Password, "patient-password", "", "portal password for the patient")
	return cmd
}

func patientsUpdateCmd(a **app) *cobra.Command {
	var id int64
	var draft entities.Patient

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx, *a); err != nil {
				return err
			}

			page := pages.NewPatientsPage((*a).api)
			if err := page.Load(ctx); err != nil {
				return err
			}
			if err := page.Form.OpenEdit(id); err != nil {
				return err
			}

			// Only flags the user actually set overwrite the fetched copy
			edited := page.Form.Draft()
			applyPatientFlags(cmd, &edited, draft)
			if err := page.Form.SetDraft(edited); err != nil {
				return err
			}
			if err := page.Form.Submit(ctx); err != nil {
				return err
			}

			fmt.Printf("Updated patient %d\n", id)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "patient id")
	cmd.MarkFlagRequired("id")
	patientFlags(cmd, &draft)
	return cmd
}

func applyPatientFlags(cmd *cobra.Command, target *entities.Patient, flags entities.Patient) {
	if cmd.Flags().Changed("first-name") {
		target.FirstName = flags.FirstName
	}
	if cmd.Flags().Changed("last-name") {
		target.LastName = flags.LastName
	}
	if cmd.Flags().Changed("dni") {
		target.DNI = flags.DNI
	}
	if cmd.Flags().Changed("email") {
		target.Email = flags.Email
	}
	if cmd.Flags().Changed("phone") {
		target.Phone = flags.Phone
	}
	if cmd.Flags().Changed("birth-date") {
		target.BirthDate = flags.BirthDate
	}
	if cmd.Flags().Changed("address") {
		target.Address = flags.Address
	}
	if cmd.Flags().Changed("height") {
		target.HeightCm = flags.HeightCm
	}
	if cmd.Flags().Changed("weight") {
		target.WeightKg = flags.WeightKg
	}
}

func patientsDeleteCmd(a **app) *cobra.Command {
	var id int64
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx, *a); err != nil {
				return err
			}

			page := pages.NewPatientsPage((*a).api)
			if err := page.Load(ctx); err != nil {
				return err
			}

			removed, err := page.Delete(ctx, id, confirm(
				fmt.Sprintf("Delete patient %d?", id), yes))
			if err != nil {
				return err
			}
			if removed {
				fmt.Printf("Deleted patient %d\n", id)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "patient id")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation")
	cmd.MarkFlagRequired("id")
	return cmd
}
