package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cliento/cliento/internal/application/pages"
	"github.com/cliento/cliento/internal/application/view"
)

func dashboardCmd(a **app) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's agenda and monthly overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx, *a); err != nil {
				return err
			}

			page := pages.NewDashboardPage((*a).api)
			if err := page.Load(ctx); err != nil {
				return err
			}
			if month != "" {
				m, err := view.ParseMonth(month)
				if err != nil {
					return err
				}
				page.Month = m
			}

			stats := page.Stats()
			fmt.Printf("Patients: %d   Appointments: %d   Today: %d\n\n",
				stats.TotalPatients, stats.TotalConsultations, stats.TodayConsultations)

			fmt.Println("Today's agenda:")
			agenda := page.TodayAgenda()
			if len(agenda) == 0 {
				fmt.Println("  (no appointments)")
			}
			for _, c := range agenda {
				kind := "Presencial"
				if c.Virtual {
					kind = "Online"
				}
				fmt.Printf("  %s  %s  (%s)\n", c.Date.Format("15:04"), c.PatientName, kind)
			}

			fmt.Printf("\n%s:\n", page.Month)
			for _, bucket := range page.Buckets() {
				if len(bucket.Items) == 0 {
					continue
				}
				fmt.Printf("  %s: %d appointment(s)\n", bucket.Day.Format("Mon 02"), len(bucket.Items))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month to summarize (YYYY-MM, default current)")
	return cmd
}
