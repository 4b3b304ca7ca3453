package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osteovision/osteovision/internal/client"
	"github.com/osteovision/osteovision/internal/domain/analysis"
	"github.com/osteovision/osteovision/internal/intake"
	"github.com/osteovision/osteovision/internal/pipeline"
	"github.com/osteovision/osteovision/internal/report"
)

var (
	serverURL  string
	scanType   string
	outFormat  string
	outputPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Upload a scan image and render the analysis report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := intake.FromFile(args[0])
		if err != nil {
			return err
		}

		api := client.New(serverURL)
		p := pipeline.New(api.AnalyzeScan)
		p.Analyze(context.Background(), img.Base64(), scanType)

		if err := p.Err(); err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		out := p.Result()
		if out == nil {
			return client.ErrNoAnalysis
		}

		if out.ParseError {
			fmt.Fprintln(os.Stderr, "warning: analysis completed but response format was unexpected")
			fmt.Fprintln(cmd.OutOrStdout(), out.Raw)
			return nil
		}

		return writeReport(cmd.OutOrStdout(), out.Report)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "OsteoVision server base URL")
	analyzeCmd.Flags().StringVar(&scanType, "scan-type", "X-ray", "scan type hint (X-ray, CT, MRI)")
	analyzeCmd.Flags().StringVar(&outFormat, "out", "json", "output format: json, text or pdf")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "O", "", "write the report to this file instead of stdout")
	rootCmd.AddCommand(analyzeCmd)
}

func writeReport(stdout io.Writer, rep *analysis.Report) error {
	var w io.Writer = stdout
	path := outputPath
	if path == "" && outFormat == "pdf" {
		// PDF is binary; never write it to a terminal.
		path = report.Filename("pdf", nil)
	}
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
		defer fmt.Fprintf(stdout, "report written to %s\n", path)
	}

	switch outFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "text":
		return report.NewTextRenderer().Render(w, rep)
	case "pdf":
		return report.NewPDFRenderer().Render(w, rep)
	}
	return fmt.Errorf("unknown output format: %s", outFormat)
}
