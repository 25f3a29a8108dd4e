package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"talkgen/internal/validate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the rendered HTML build output",
		Long:  "Checks the built site for required files and page markers. Errors fail with exit code 1; warnings are cosmetic and do not.",
		Run:   runValidate,
	}

	cmd.Flags().String("build", "", "Override the build dir from the config")

	RootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	if v, _ := cmd.Flags().GetString("build"); v != "" {
		cfg.BuildDir = v
	}

	report, err := validate.Run(cfg.BuildDir)
	if err != nil {
		exitErr("validate", err)
	}

	for _, w := range report.Warnings {
		fmt.Printf("  WARN: %s\n", w)
	}
	for _, e := range report.Errors {
		fmt.Printf("  FAIL: %s\n", e)
	}

	if !report.OK() {
		fmt.Printf("\n%d error(s), %d warning(s)\n", len(report.Errors), len(report.Warnings))
		os.Exit(1)
	}

	fmt.Printf("  OK: %d HTML files validated\n", report.HTMLCount)
	if len(report.Warnings) > 0 {
		fmt.Printf("  %d warning(s)\n", len(report.Warnings))
	}
	fmt.Println("\nAll checks passed.")
}
