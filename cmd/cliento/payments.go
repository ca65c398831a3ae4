package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cliento/cliento/internal/application/pages"
	"github.com/cliento/cliento/internal/domain/entities"
)

func paymentsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Manage payments",
	}
	cmd.AddCommand(
		paymentsListCmd(a),
		paymentsCreateCmd(a),
		paymentsUpdateCmd(a),
		paymentsDeleteCmd(a),
	)
	return cmd
}

func loadPaymentsPage(cmd *cobra.Command, a **app) (*pages.PaymentsPage, error) {
	ctx := cmd.Context()
	if err := requireAuth(ctx, *a); err != nil {
		return nil, err
	}
	page := pages.NewPaymentsPage((*a).api)
	if err := page.Load(ctx); err != nil {
		return nil, err
	}
	return page, nil
}

func paymentsListCmd(a **app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadPaymentsPage(cmd, a)
			if err != nil {
				return err
			}
			page.Query = search

			rows := [][]string{}
			for _, pm := range page.Visible() {
				rows = append(rows, []string{
					fmt.Sprint(pm.ID),
					pm.InvoiceNumber,
					pm.PatientName,
					fmt.Sprintf("%.2f", pm.Amount),
					pm.Date,
					string(pm.Status),
					string(pm.Method),
					pm.Concept,
				})
			}
			printTable([]string{"ID", "INVOICE", "PATIENT", "AMOUNT", "DATE", "STATUS", "METHOD", "CONCEPT"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by patient, invoice or concept")
	return cmd
}

func paymentFlags(cmd *cobra.Command, draft *entities.Payment) {
	cmd.Flags().StringVar(&draft.PatientName, "patient-name", draft.PatientName, "patient name")
	cmd.Flags().Float64Var(&draft.Amount, "amount", draft.Amount, "amount")
	cmd.Flags().StringVar(&draft.Date, "date", draft.Date, "payment date (YYYY-MM-DD)")
	cmd.Flags().StringVar((*string)(&draft.Status), "status", string(draft.Status), "paid, pending or cancelled")
	cmd.Flags().StringVar((*string)(&draft.Method), "method", string(draft.Method), "cash, card or transfer")
	cmd.Flags().StringVar(&draft.Concept, "concept", draft.Concept, "concept")
	cmd.Flags().StringVar(&draft.InvoiceNumber, "invoice", draft.InvoiceNumber, "invoice number (generated when empty)")
}

func paymentsCreateCmd(a **app) *cobra.Command {
	var draft entities.Payment

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadPaymentsPage(cmd, a)
			if err != nil {
				return err
			}

			template := page.NewDraft()
			if cmd.Flags().Changed("status") {
				template.Status = draft.Status
			}
			if cmd.Flags().Changed("method") {
				template.Method = draft.Method
			}
			template.PatientName = draft.PatientName
			template.Amount = draft.Amount
			template.Date = draft.Date
			template.Concept = draft.Concept
			template.InvoiceNumber = draft.InvoiceNumber

			if err := page.Form.OpenNew(template); err != nil {
				return err
			}
			if err := page.Form.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Payment recorded")
			return nil
		},
	}
	paymentFlags(cmd, &draft)
	return cmd
}

func paymentsUpdateCmd(a **app) *cobra.Command {
	var id int64
	var flags entities.Payment

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadPaymentsPage(cmd, a)
			if err != nil {
				return err
			}
			if err := page.Form.OpenEdit(id); err != nil {
				return err
			}

			edited := page.Form.Draft()
			if cmd.Flags().Changed("patient-name") {
				edited.PatientName = flags.PatientName
			}
			if cmd.Flags().Changed("amount") {
				edited.Amount = flags.Amount
			}
			if cmd.Flags().Changed("date") {
				edited.Date = flags.Date
			}
			if cmd.Flags().Changed("status") {
				edited.Status = flags.Status
			}
			if cmd.Flags().Changed("method") {
				edited.Method = flags.Method
			}
			if cmd.Flags().Changed("concept") {
				edited.Concept = flags.Concept
			}
			if cmd.Flags().Changed("invoice") {
				edited.InvoiceNumber = flags.InvoiceNumber
			}
			if err := page.Form.SetDraft(edited); err != nil {
				return err
			}
			if err := page.Form.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("Updated payment %d\n", id)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "payment id")
	cmd.MarkFlagRequired("id")
	paymentFlags(cmd, &flags)
	return cmd
}

func paymentsDeleteCmd(a **app) *cobra.Command {
	var id int64
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadPaymentsPage(cmd, a)
			if err != nil {
				return err
			}

			removed, err := page.Delete(cmd.Context(), id, confirm(
				fmt.Sprintf("Delete payment %d?", id), yes))
			if err != nil {
				return err
			}
			if removed {
				fmt.Printf("Deleted payment %d\n", id)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "payment id")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation")
	cmd.MarkFlagRequired("id")
	return cmd
}
