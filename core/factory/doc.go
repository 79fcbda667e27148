// Package factory provides a generic catalog of named constructors. Variants
// are selected by a type string and receive a map of raw settings which they
// decode into typed structs with Decode.
//
// Example usage:
//
//	cat := factory.NewRegistry[report.Creator]()
//	_ = cat.Register("pdf", func(map[string]any) (report.Creator, error) {
//	    return report.PDFReportCreator{}, nil
//	})
//	c, err := cat.Create(factory.ModuleConfig{Type: "pdf"})
package factory
