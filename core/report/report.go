// Package report generates reports through creators that decide which
// concrete report to produce.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Report formats accepted by NewCreator.
const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// Report is a stateless product that writes itself to w.
type Report interface {
	Generate(w io.Writer) error
}

// Creator defers the choice of the concrete report.
type Creator interface {
	CreateReport() Report
}

type PDFReport struct{}

func (PDFReport) Generate(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Generating a PDF report.")
	return err
}

type HTMLReport struct{}

func (HTMLReport) Generate(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Generating an HTML report.")
	return err
}

type PDFReportCreator struct{}

func (PDFReportCreator) CreateReport() Report { return PDFReport{} }

type HTMLReportCreator struct{}

func (HTMLReportCreator) CreateReport() Report { return HTMLReport{} }

// GenerateReport creates a report with c and generates it into w. The report
// is not retained.
func GenerateReport(c Creator, w io.Writer) error {
	r := c.CreateReport()
	if err := r.Generate(w); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	return nil
}

// NewCreator returns the creator for the given report format.
func NewCreator(format string) (Creator, error) {
	switch strings.ToLower(format) {
	case FormatPDF:
		return PDFReportCreator{}, nil
	case FormatHTML:
		return HTMLReportCreator{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %s", format)
	}
}
