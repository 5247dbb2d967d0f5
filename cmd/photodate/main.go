package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"photodate/pkg/config"
	"photodate/pkg/pipeline"
)

const version = "0.1.0"

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "photodate",
		Short:   "Correct the EXIF capture date of JPEG photos from filename-encoded dates",
		Long:    "Photodate batch-corrects the EXIF capture date of JPEG photos whose filename encodes a date (like IMG-20201107-WA0029.jpg), writing corrected copies into a fresh per-run output directory.",
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("Photodate CLI")
			cmd.Printf("Version: %s\n", version)
			cmd.Println("")
			cmd.Println("Use --help to see available commands and options")
		},
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to the configuration file")

	rootCmd.AddCommand(newRunCmd(&configPath))

	return rootCmd
}

func newRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run [input] [output]",
		Short: "Process the input directory once",
		Long:  "Process every JPEG in the input directory once, reconciling filename dates against embedded EXIF dates, and write the results into a fresh timestamped subdirectory of the output directory.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.InputDir = args[0]
			}
			if len(args) > 1 {
				cfg.OutputDir = args[1]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			_, err = pipeline.Run(cmd.OutOrStdout(), cfg, time.Now)
			return err
		},
	}
}
