package main

import (
	"fmt"
	"os"
	"path/filepath"

	"prayer-roster-backend/internal/export"
	"prayer-roster-backend/internal/service"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func rootCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rosterctl",
		Short:         "Prayer group roster maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		seedTeamsCmd(open),
		seedSlotsCmd(open),
		statsCmd(open),
		exportCmd(open),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "rosterctl version %s\n", version)
			},
		},
	)
	return cmd
}

// withApp opens the application for the duration of fn
func withApp(open opener, fn func(a *app) error) error {
	a, err := open()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func seedTeamsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-teams",
		Short: "Create the default teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(open, func(a *app) error {
				teams, err := a.teams.InitializeDefaults()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "created %d teams\n", len(teams))
				for _, t := range teams {
					fmt.Fprintf(out, "  %s %s\n", t.Color, t.Name)
				}
				return nil
			})
		},
	}
}

func seedSlotsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-slots",
		Short: "Generate every Tuesday and Wednesday slot up to the configured end date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(open, func(a *app) error {
				resp, err := a.slots.Initialize()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %d slots (%d tuesdays, %d wednesdays) until %s\n",
					resp.Total, resp.Tuesdays, resp.Wednesdays, resp.EndDate)
				return nil
			})
		},
	}
}

func statsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print roster statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(open, func(a *app) error {
				stats, err := a.slots.Statistics()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "total:      %d\n", stats.Total)
				fmt.Fprintf(out, "tuesdays:   %d\n", stats.Tuesdays)
				fmt.Fprintf(out, "wednesdays: %d\n", stats.Wednesdays)
				fmt.Fprintf(out, "filled:     %d\n", stats.Filled)
				fmt.Fprintf(out, "empty:      %d\n", stats.Empty)
				return nil
			})
		},
	}
}

func exportCmd(open opener) *cobra.Command {
	var (
		format string
		month  int
		year   int
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the roster to a PDF, XLSX, CSV or text file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(open, func(a *app) error {
				file, err := a.exports.Export(export.Format(format), service.NewPeriodFilter(month, year))
				if err != nil {
					return err
				}

				if out == "-" {
					_, err := cmd.OutOrStdout().Write(file.Data)
					return err
				}

				path := out
				if path == "" {
					path = file.Filename
				} else if info, err := os.Stat(path); err == nil && info.IsDir() {
					path = filepath.Join(path, file.Filename)
				}
				if err := os.WriteFile(path, file.Data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(file.Data))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "Output format (pdf, xlsx, csv, txt)")
	cmd.Flags().IntVar(&month, "month", 0, "Month (1-12), used only together with --year")
	cmd.Flags().IntVar(&year, "year", 0, "Year")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file or directory; - writes to stdout")
	return cmd
}
