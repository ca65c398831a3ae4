package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cliento/cliento/internal/infrastructure/clients/practiceapi"
)

func loginCmd(a **app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).session.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			(*a).saveSession()
			fmt.Printf("Logged in as %s\n", (*a).session.User().Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := (*a).session.Logout(cmd.Context())
			if clearErr := (*a).store.Clear(); clearErr != nil && err == nil {
				err = clearErr
			}
			if err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func registerCmd(a **app) *cobra.Command {
	var req practiceapi.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a practitioner account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).api.Register(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Println("Account created, you can now log in")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.License, "license", "", "professional license number")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("last-name")
	cmd.MarkFlagRequired("license")
	return cmd
}

func whoamiCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd.Context(), *a); err != nil {
				return err
			}
			fmt.Println((*a).session.User().Username)
			return nil
		},
	}
}
