package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/api"
	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
	"github.com/Bhautik-2004/FMS-sub001/pkg/reports"
	"github.com/Bhautik-2004/FMS-sub001/pkg/runtime/terminal/export"
)

type ExportCmd struct {
	inputPath  string
	reportType string
	format     string
	outputDir  string
	currency   string
	reporter   *export.Reporter
}

func NewExportCmd(reporter *export.Reporter) *cobra.Command {
	ec := &ExportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a report from a JSON input file",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.inputPath, "input", "", "Path to the JSON file holding report parameters and rows")
	cmd.Flags().StringVar(&ec.reportType, "type", "", "Report type (e.g., income_statement)")
	cmd.Flags().StringVar(&ec.format, "format", "pdf", "Output format: pdf, csv or xlsx")
	cmd.Flags().StringVar(&ec.outputDir, "out", ".", "Directory the document is written to")
	cmd.Flags().StringVar(&ec.currency, "currency", "", "Currency code overriding the input file")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	reportType := domain.ReportType(ec.reportType)
	if !reportType.Valid() {
		return fmt.Errorf("unsupported report type %q. Supported types: %v",
			ec.reportType, domain.ReportTypes())
	}
	format := domain.ReportFormat(ec.format)
	if !format.Valid() {
		return fmt.Errorf("unsupported format %q. Supported formats: %v",
			ec.format, domain.ReportFormats())
	}

	req, err := readRequest(ec.inputPath)
	if err != nil {
		return err
	}
	if ec.currency != "" {
		req.Parameters.Currency = ec.currency
	}

	doc, err := reports.Generate(reportType, format, req.Rows, req.Parameters)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	path := filepath.Join(ec.outputDir, doc.FileName)
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return ec.reporter.Handle(export.Summary{Document: doc, Path: path})
}

func readRequest(path string) (api.ExportRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return api.ExportRequest{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var req api.ExportRequest
	if err := json.NewDecoder(f).Decode(&req); err != nil {
		return api.ExportRequest{}, fmt.Errorf("failed to parse input file: %w", err)
	}
	return req, nil
}

type TypesCmd struct {
	writer io.Writer
}

func NewTypesCmd(writer io.Writer) *cobra.Command {
	tc := &TypesCmd{writer: writer}
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List supported report types and formats",
		RunE:  tc.run,
	}
	return cmd
}

func (tc *TypesCmd) run(cmd *cobra.Command, args []string) error {
	for _, t := range domain.ReportTypes() {
		if _, err := fmt.Fprintf(tc.writer, "%-22s %s\n", string(t), t.Title()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(tc.writer, "\nFormats: %v\n", domain.ReportFormats())
	return err
}
