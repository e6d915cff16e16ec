package production

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/comalice/circstatx"
)

// Format selects a table encoding.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat accepts text, csv or json (case-insensitive). Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Row is one evaluated point.
type Row struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	CDF  float64 `json:"cdf"`
	PDF  float64 `json:"pdf"`
}

// Grid returns n points centred on the cells of [μ−π, μ+π], so every point
// lies strictly inside the principal range.
func Grid(location float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = location - math.Pi + 2*math.Pi*(float64(i)+0.5)/float64(n)
	}
	return xs
}

// Tabulate evaluates CDF and PDF of dist at xs.
func Tabulate(ctx context.Context, ev *circstatx.Evaluator, name string, dist circstatx.VonMises, xs []float64) ([]Row, error) {
	cdf, err := ev.CDFBatch(ctx, dist, xs)
	if err != nil {
		return nil, fmt.Errorf("%s cdf: %w", name, err)
	}
	pdf, err := ev.PDFBatch(ctx, dist, xs)
	if err != nil {
		return nil, fmt.Errorf("%s pdf: %w", name, err)
	}

	rows := make([]Row, len(xs))
	for i, x := range xs {
		rows[i] = Row{Name: name, X: x, CDF: cdf[i], PDF: pdf[i]}
	}
	return rows, nil
}

// TableRenderer writes rows in a fixed format.
type TableRenderer struct {
	Format Format
	// Precision is the number of decimals in text output; 0 means 6.
	Precision int
}

// Render writes rows to w.
func (r TableRenderer) Render(w io.Writer, rows []Row) error {
	switch r.Format {
	case FormatText, "":
		return r.renderText(w, rows)
	case FormatCSV:
		return renderCSV(w, rows)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return fmt.Errorf("unknown format %q", r.Format)
}

func (r TableRenderer) renderText(w io.Writer, rows []Row) error {
	prec := r.Precision
	if prec <= 0 {
		prec = 6
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "NAME\tX\tCDF\tPDF\t")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%.*f\t%.*f\t%.*f\t\n", row.Name, prec, row.X, prec, row.CDF, prec, row.PDF)
	}
	return tw.Flush()
}

func renderCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "x", "cdf", "pdf"}); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{
			row.Name,
			strconv.FormatFloat(row.X, 'g', -1, 64),
			strconv.FormatFloat(row.CDF, 'g', -1, 64),
			strconv.FormatFloat(row.PDF, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
