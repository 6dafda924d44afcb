package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
)

// Summary describes one finished export for console output.
type Summary struct {
	Document domain.Document
	Path     string
}

// Reporter prints export results to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Writer() io.Writer {
	return c.writer
}

func (c *Reporter) Handle(summary Summary) error {
	tmpl := `
Report written to {{.Path}}
  Content type: {{.Document.MIME}}
  Records:      {{.Document.RecordCount}}
  Size:         {{len .Document.Data}} bytes
`
	t, err := template.New("export").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summary)
}
