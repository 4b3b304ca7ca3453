package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "osteoctl",
	Short: "Submit medical scans for AI analysis",
	Long: `osteoctl submits a medical scan image (X-ray, CT, MRI) to an
OsteoVision server for AI analysis and renders the returned findings
as a report.

All diagnostic reasoning happens on the hosted AI service; this tool
only uploads the image and formats the result.`,
	Example: `  # Analyze an X-ray and print the report as JSON
  osteoctl analyze wrist.jpg

  # Analyze a CT scan and save a PDF report
  osteoctl analyze chest.png --scan-type CT --out pdf -O report.pdf

  # Plain-text transcript to stdout
  osteoctl analyze wrist.jpg --out text`,
}

// Execute runs the root cobra command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
