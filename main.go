package main

import (
	"fmt"
	"log/slog"
	"os"

	"hospital-management/hospital"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hospital",
		Short:         "Interactive hospital management system",
		Long:          "Patient, room and surgeon management for a 6-floor, 60-room hospital.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, log, err := openService()
			if err != nil {
				return err
			}
			defer func() {
				if err := svc.Close(); err != nil {
					log.Error("save state on exit", "error", err)
				}
			}()
			runMenu(svc)
			return nil
		},
	}
	root.AddCommand(newExportCmd(), newImportCmd())
	return root
}

func newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all users to a legacy flat-record file",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return err
			}
			defer svc.Close()

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := svc.ExportRecords(f); err != nil {
				return err
			}
			fmt.Printf("Exported records to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "users.csv", "destination file")
	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all state with a legacy flat-record file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return err
			}
			defer svc.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if err := svc.ImportRecords(f); err != nil {
				return err
			}
			fmt.Printf("Imported records from %s\n", args[0])
			return nil
		},
	}
	return cmd
}

func openService() (*hospital.Service, *slog.Logger, error) {
	cfg := hospital.LoadConfig()
	log := hospital.NewLogger(cfg, os.Stderr)
	svc, err := hospital.NewService(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return svc, log, nil
}
