package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nuclio/errors"
	"gopkg.in/yaml.v3"

	"pqbench/internal/bench"
	"pqbench/internal/pq"
)

// Renderer writes benchmark rows to output in one of the supported formats.
type Renderer struct {
	output io.Writer
	types  []pq.Type
}

// NewRenderer creates a renderer whose columns follow types, in order.
func NewRenderer(output io.Writer, types []pq.Type) *Renderer {
	return &Renderer{
		output: output,
		types:  append([]pq.Type(nil), types...),
	}
}

// Render writes rows in the given format.
func (r *Renderer) Render(format Format, rows []bench.Row) error {
	switch format {
	case FormatTable:
		r.RenderTable(rows)
		return nil
	case FormatCSV:
		return r.RenderCSV(rows)
	case FormatJSON:
		return r.RenderJSON(rows)
	case FormatYAML:
		return r.RenderYAML(rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// Header returns the column names: the operation count followed by an
// insert and an extract column per queue type.
func (r *Renderer) Header() []string {
	header := []string{"operation_count"}
	for _, t := range r.types {
		header = append(header,
			t.ShortName()+"_insert_seconds",
			t.ShortName()+"_extract_seconds")
	}
	return header
}

// RenderTable writes one header line and one line per row, columns
// separated by "|".
func (r *Renderer) RenderTable(rows []bench.Row) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.output)

	format := table.FormatOptionsDefault
	format.Header = text.FormatDefault
	tw.SetStyle(table.Style{
		Name: "pqbench",
		Box: table.BoxStyle{
			MiddleVertical: "|",
			PaddingLeft:    " ",
			PaddingRight:   " ",
		},
		Options: table.Options{
			DoNotColorBordersAndSeparators: true,
			DrawBorder:                     false,
			SeparateColumns:                true,
			SeparateFooter:                 false,
			SeparateHeader:                 false,
			SeparateRows:                   false,
		},
		Color:  table.ColorOptionsDefault,
		Format: format,
		HTML:   table.DefaultHTMLOptions,
		Title:  table.TitleOptionsDefault,
	})

	header := r.Header()
	headerRow := make(table.Row, len(header))
	columnConfigs := make([]table.ColumnConfig, len(header))
	for i, name := range header {
		headerRow[i] = name
		columnConfigs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignRight}
	}
	tw.SetColumnConfigs(columnConfigs)
	tw.AppendHeader(headerRow, table.RowConfig{})

	for _, record := range r.records(rows) {
		tw.AppendRow(stringsToTableRow(record), table.RowConfig{})
	}
	tw.Render()
}

// RenderCSV writes the same columns as RenderTable as comma separated
// values.
func (r *Renderer) RenderCSV(rows []bench.Row) error {
	w := csv.NewWriter(r.output)
	if err := w.Write(r.Header()); err != nil {
		return errors.Wrap(err, "Failed to write CSV header")
	}
	if err := w.WriteAll(r.records(rows)); err != nil {
		return errors.Wrap(err, "Failed to write CSV rows")
	}
	return nil
}

// RenderJSON writes the rows as an indented JSON array.
func (r *Renderer) RenderJSON(rows []bench.Row) error {
	body, err := json.MarshalIndent(r.documents(rows), "", "\t")
	if err != nil {
		return errors.Wrap(err, "Failed to render JSON")
	}

	if _, err := fmt.Fprintln(r.output, string(body)); err != nil {
		return errors.Wrap(err, "Failed to write JSON")
	}
	return nil
}

// RenderYAML writes the rows as a YAML sequence.
func (r *Renderer) RenderYAML(rows []bench.Row) error {
	body, err := yaml.Marshal(r.documents(rows))
	if err != nil {
		return errors.Wrap(err, "Failed to render YAML")
	}

	if _, err := r.output.Write(body); err != nil {
		return errors.Wrap(err, "Failed to write YAML")
	}
	return nil
}

// Document is the structured form of a row used by the JSON and YAML
// renderers.
type Document struct {
	OperationCount int           `json:"operation_count" yaml:"operation_count"`
	Queues         []QueueTiming `json:"queues" yaml:"queues"`
}

// QueueTiming is one queue's timings within a Document.
type QueueTiming struct {
	Queue          string  `json:"queue" yaml:"queue"`
	InsertSeconds  float64 `json:"insert_seconds" yaml:"insert_seconds"`
	ExtractSeconds float64 `json:"extract_seconds" yaml:"extract_seconds"`
	Missed         int     `json:"missed,omitempty" yaml:"missed,omitempty"`
}

func (r *Renderer) documents(rows []bench.Row) []Document {
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc := Document{OperationCount: row.Count}
		for _, t := range r.types {
			res := row.Results[t]
			doc.Queues = append(doc.Queues, QueueTiming{
				Queue:          string(t),
				InsertSeconds:  roundSeconds(res.Insert.Seconds()),
				ExtractSeconds: roundSeconds(res.Extract.Seconds()),
				Missed:         res.Missed,
			})
		}
		docs = append(docs, doc)
	}
	return docs
}

func (r *Renderer) records(rows []bench.Row) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := []string{strconv.Itoa(row.Count)}
		for _, t := range r.types {
			res := row.Results[t]
			record = append(record, FormatSeconds(res.Insert.Seconds()), FormatSeconds(res.Extract.Seconds()))
		}
		records = append(records, record)
	}
	return records
}

// FormatSeconds renders a duration in seconds with six decimals.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 6, 64)
}

// roundSeconds keeps json and yaml values at the same precision as
// FormatSeconds.
func roundSeconds(seconds float64) float64 {
	return math.Round(seconds*1e6) / 1e6
}

func stringsToTableRow(record []string) table.Row {
	row := make(table.Row, len(record))
	for i, v := range record {
		row[i] = v
	}
	return row
}
