package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cliento/cliento/internal/application/pages"
	"github.com/cliento/cliento/internal/application/view"
	"github.com/cliento/cliento/internal/domain/entities"
)

func appointmentsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"consultas"},
		Short:   "Manage appointments",
	}
	cmd.AddCommand(
		appointmentsListCmd(a),
		appointmentsCalendarCmd(a),
		appointmentsCreateCmd(a),
		appointmentsUpdateCmd(a),
		appointmentsDeleteCmd(a),
		appointmentsRoomsCmd(a),
		appointmentsProfessionalsCmd(a),
	)
	return cmd
}

// appointmentsRoomsCmd lists the ids accepted by --room
func appointmentsRoomsCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List consulting rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx, *a); err != nil {
				return err
			}
			rooms, err := (*a).api.ListRooms(ctx)
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, r := range rooms {
				rows = append(rows, []string{fmt.Sprint(r.ID), r.Address, r.Phone})
			}
			printTable([]string{"ID", "ADDRESS", "PHONE"}, rows)
			return nil
		},
	}
}

// appointmentsProfessionalsCmd lists the ids accepted by --professional
func appointmentsProfessionalsCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "professionals",
		Short: "List professionals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx, *a); err != nil {
				return err
			}
			professionals, err := (*a).api.ListProfessionals(ctx)
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, p := range professionals {
				rows = append(rows, []string{
					fmt.Sprint(p.ID),
					p.FirstName + " " + p.LastName,
					p.License,
					p.Email,
				})
			}
			printTable([]string{"ID", "NAME", "LICENSE", "EMAIL"}, rows)
			return nil
		},
	}
}

func loadAppointmentsPage(cmd *cobra.Command, a **app, search string) (*pages.AppointmentsPage, error) {
	ctx := cmd.Context()
	if err := requireAuth(ctx, *a); err != nil {
		return nil, err
	}
	page := pages.NewAppointmentsPage((*a).api)
	if err := page.Load(ctx); err != nil {
		return nil, err
	}
	page.Query = search
	return page, nil
}

func appointmentsListCmd(a **app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadAppointmentsPage(cmd, a, search)
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, c := range page.Visible() {
				kind := "Presencial"
				if c.Virtual {
					kind = "Online"
				}
				rows = append(rows, []string{
					fmt.Sprint(c.ID),
					c.Date.Format("2006-01-02 15:04"),
					c.PatientName,
					c.RoomAddress,
					kind,
				})
			}
			printTable([]string{"ID", "DATE", "PATIENT", "ROOM", "TYPE"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by patient name or room")
	return cmd
}

func appointmentsCalendarCmd(a **app) *cobra.Command {
	var search, month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the month calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadAppointmentsPage(cmd, a, search)
			if err != nil {
				return err
			}
			if month != "" {
				m, err := view.ParseMonth(month)
				if err != nil {
					return err
				}
				page.Month = m
			}

			fmt.Println(page.Month)
			for _, bucket := range page.Buckets() {
				marker := " "
				if view.IsToday(bucket.Day) {
					marker = "*"
				}
				fmt.Printf("%s %s (%d)\n", marker, bucket.Day.Format("Mon 02"), len(bucket.Items))
				for _, c := range bucket.Items {
					fmt.Printf("    %s  %s  %s\n", c.Date.Format("15:04"), c.PatientName, c.RoomAddress)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by patient name or room")
	cmd.Flags().StringVar(&month, "month", "", "month to show (YYYY-MM, default current)")
	return cmd
}

func appointmentsCreateCmd(a **app) *cobra.Command {
	var date string
	var draft entities.Consultation

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadAppointmentsPage(cmd, a, "")
			if err != nil {
				return err
			}
			if date != "" {
				parsed, perr := time.ParseInLocation("2006-01-02T15:04", date, time.Local)
				if perr != nil {
					return fmt.Errorf("invalid --date %q, want YYYY-MM-DDTHH:MM: %w", date, perr)
				}
				draft.Date = parsed
			}

			if err := page.Form.OpenNew(draft); err != nil {
				return err
			}
			if err := page.Form.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Appointment created")
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date and time (YYYY-MM-DDTHH:MM)")
	cmd.Flags().Int64Var(&draft.PatientID, "patient", 0, "patient id")
	cmd.Flags().Int64Var(&draft.ProfessionalID, "professional", 0, "professional id")
	cmd.Flags().Int64Var(&draft.RoomID, "room", 0, "room id")
	cmd.Flags().BoolVar(&draft.Virtual, "virtual", false, "virtual appointment")
	return cmd
}

func appointmentsUpdateCmd(a **app) *cobra.Command {
	var id int64
	var date string
	var flags entities.Consultation

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadAppointmentsPage(cmd, a, "")
			if err != nil {
				return err
			}
			if err := page.Form.OpenEdit(id); err != nil {
				return err
			}

			edited := page.Form.Draft()
			if cmd.Flags().Changed("date") {
				parsed, perr := time.ParseInLocation("2006-01-02T15:04", date, time.Local)
				if perr != nil {
					return fmt.Errorf("invalid --date %q, want YYYY-MM-DDTHH:MM: %w", date, perr)
				}
				edited.Date = parsed
			}
			if cmd.Flags().Changed("patient") {
				edited.PatientID = flags.PatientID
			}
			if cmd.Flags().Changed("professional") {
				edited.ProfessionalID = flags.ProfessionalID
			}
			if cmd.Flags().Changed("room") {
				edited.RoomID = flags.RoomID
			}
			if cmd.Flags().Changed("virtual") {
				edited.Virtual = flags.Virtual
			}
			if err := page.Form.SetDraft(edited); err != nil {
				return err
			}
			if err := page.Form.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("Updated appointment %d\n", id)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "appointment id")
	cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&date, "date", "", "date and time (YYYY-MM-DDTHH:MM)")
	cmd.Flags().Int64Var(&flags.PatientID, "patient", 0, "patient id")
	cmd.Flags().Int64Var(&flags.ProfessionalID, "professional", 0, "professional id")
	cmd.Flags().Int64Var(&flags.RoomID, "room", 0, "room id")
	cmd.Flags().BoolVar(&flags.Virtual, "virtual", false, "virtual appointment")
	return cmd
}

func appointmentsDeleteCmd(a **app) *cobra.Command {
	var id int64
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadAppointmentsPage(cmd, a, "")
			if err != nil {
				return err
			}

			removed, err := page.Delete(cmd.Context(), id, confirm(
				fmt.Sprintf("Delete appointment %d?", id), yes))
			if err != nil {
				return err
			}
			if removed {
				fmt.Printf("Deleted appointment %d\n", id)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "appointment id")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation")
	cmd.MarkFlagRequired("id")
	return cmd
}
