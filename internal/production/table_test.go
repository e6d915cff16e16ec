package production

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/comalice/circstatx"
)

func tabulate(t *testing.T, n int) []Row {
	t.Helper()
	vm, err := circstatx.New(0, 4)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := Tabulate(context.Background(), circstatx.NewEvaluator(), "east", vm, Grid(0, n))
	if err != nil {
		t.Fatalf("Tabulate failed: %v", err)
	}
	return rows
}

func TestGridInsidePrincipalRange(t *testing.T) {
	for _, mu := range []float64{0, 2.5, -7} {
		xs := Grid(mu, 9)
		if len(xs) != 9 {
			t.Fatalf("expected 9 points, got %d", len(xs))
		}
		for _, x := range xs {
			if math.Abs(x-mu) >= math.Pi {
				t.Errorf("μ=%v: point %v outside open range", mu, x)
			}
		}
		if math.Abs(xs[4]-mu) > 1e-12 {
			t.Errorf("μ=%v: middle point %v should be the location", mu, xs[4])
		}
	}
}

func TestTabulate(t *testing.T) {
	rows := tabulate(t, 5)
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if math.Abs(rows[2].CDF-0.5) > 1e-12 {
		t.Errorf("middle CDF should be 0.5, got %v", rows[2].CDF)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].CDF < rows[i-1].CDF {
			t.Errorf("CDF decreased between rows %d and %d", i-1, i)
		}
	}
	if rows[2].PDF <= rows[0].PDF {
		t.Error("PDF should peak at the location")
	}
}

func TestTableRenderer_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := (TableRenderer{Format: FormatText, Precision: 3}).Render(&buf, tabulate(t, 3)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "CDF") || !strings.Contains(lines[0], "PDF") {
		t.Error("Missing header columns")
	}
	if !strings.Contains(out, "0.500") {
		t.Error("Missing middle CDF value")
	}
}

func TestTableRenderer_CSV(t *testing.T) {
	var buf bytes.Buffer
	if err := (TableRenderer{Format: FormatCSV}).Render(&buf, tabulate(t, 4)); err != nil {
		t.Fatal(err)
	}
	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 5 || recs[0][2] != "cdf" || recs[1][0] != "east" {
		t.Errorf("unexpected CSV: %v", recs)
	}
}

func TestTableRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	rows := tabulate(t, 2)
	if err := (TableRenderer{Format: FormatJSON}).Render(&buf, rows); err != nil {
		t.Fatal(err)
	}
	var decoded []Row
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 || decoded[1].CDF != rows[1].CDF {
		t.Errorf("unexpected JSON rows: %+v", decoded)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "CSV": FormatCSV, "json": FormatJSON, "text": FormatText} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
	if err := (TableRenderer{Format: "xml"}).Render(&bytes.Buffer{}, nil); err == nil {
		t.Error("expected render error for unknown format")
	}
}
