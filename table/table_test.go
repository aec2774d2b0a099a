package table_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	report "github.com/NICD-UK/reportlab-blog"

	"github.com/NICD-UK/reportlab-blog/dataset"
	"github.com/NICD-UK/reportlab-blog/table"
)

func newTestDoc(t *testing.T) *report.Document {
	t.Helper()
	doc := report.NewDocument(
		report.WithCompression(false),
		report.WithCreationDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	)
	if err := doc.AddTemplate(report.NewPageTemplate("main", report.A4, 15, nil)); err != nil {
		t.Fatalf("adding template: %v", err)
	}
	return doc
}

func irisFrame(t *testing.T) dataset.Frame {
	t.Helper()
	var sb strings.Builder
	for k, class := range []string{"Iris-setosa", "Iris-versicolor", "Iris-virginica"} {
		for i := 0; i < 50; i++ {
			base := float64(k + 1)
			fmt.Fprintf(&sb, "%.1f,%.1f,%.1f,%.1f,%s\n",
				base, base+1, base+2, base+3, class)
		}
	}
	f, err := dataset.FromCSV(strings.NewReader(sb.String()),
		"sepal length", "sepal width", "petal length", "petal width", "class")
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	return f
}

func TestConverterShape(t *testing.T) {
	tbl := table.New(
		[]string{"a", "b", "c"},
		[][]string{{"1", "2", "3"}, {"4", "5", "6"}},
	)
	if got := tbl.NumRows(); got != 3 {
		t.Errorf("NumRows = %d, want 3 (header + 2 data rows)", got)
	}
	if got := tbl.NumCols(); got != 3 {
		t.Errorf("NumCols = %d, want 3", got)
	}
}

func TestFromFrameShape(t *testing.T) {
	f := irisFrame(t)
	tbl := table.FromFrame(f)
	if got := tbl.NumRows(); got != f.NumRows()+1 {
		t.Errorf("NumRows = %d, want %d", got, f.NumRows()+1)
	}
	if got := tbl.NumCols(); got != f.NumCols() {
		t.Errorf("NumCols = %d, want %d", got, f.NumCols())
	}
}

func TestGroupedMeansTable(t *testing.T) {
	f := irisFrame(t)
	means, err := f.GroupMeans("class")
	if err != nil {
		t.Fatalf("GroupMeans: %v", err)
	}

	tbl := table.FromFrame(means)
	if got := tbl.NumRows(); got != 4 {
		t.Errorf("NumRows = %d, want 4 (header + 3 groups)", got)
	}
	if got := tbl.NumCols(); got != 5 {
		t.Errorf("NumCols = %d, want 5 (label + 4 measurements)", got)
	}
}

func TestRenderInDocument(t *testing.T) {
	doc := newTestDoc(t)
	tbl := table.New(
		[]string{"sepal length (cm)", "sepal width (cm)", "class"},
		[][]string{
			{"5.1", "3.5", "Iris-setosa"},
			{"7.0", "3.2", "Iris-versicolor"},
		},
	)

	var buf bytes.Buffer
	if err := doc.Build(&buf, report.Story{tbl}); err != nil {
		t.Fatalf("build: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
	if !bytes.Contains(buf.Bytes(), []byte("Iris-versicolor")) {
		t.Error("missing cell text in content streams")
	}
	t.Logf("table PDF: %d bytes", buf.Len())
}

func TestSplitsAcrossPages(t *testing.T) {
	rows := make([][]string, 120)
	for i := range rows {
		rows[i] = []string{fmt.Sprint(i), "value", "more"}
	}
	tbl := table.New([]string{"id", "left", "right"}, rows)

	doc := newTestDoc(t)
	var buf bytes.Buffer
	if err := doc.Build(&buf, report.Story{tbl}); err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := doc.PageCount(); got < 2 {
		t.Errorf("PageCount = %d, want at least 2", got)
	}
	// The header requeues on each continuation page.
	if n := bytes.Count(buf.Bytes(), []byte("(id) Tj")); n != doc.PageCount() {
		t.Errorf("header drawn %d times across %d pages", n, doc.PageCount())
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	f := irisFrame(t)
	tbl := table.FromFrame(f)

	var first, second bytes.Buffer
	doc := newTestDoc(t)
	if err := doc.Build(&first, report.Story{tbl}); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if err := doc.Build(&second, report.Story{tbl}); err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("same table built twice produced different output")
	}
	if got := tbl.NumRows(); got != f.NumRows()+1 {
		t.Errorf("table mutated by rendering: NumRows = %d", got)
	}
}

func TestHeaderWrapsLongNames(t *testing.T) {
	short := table.New([]string{"a", "b"}, nil)
	long := table.New([]string{
		"an unreasonably long column name that has to wrap",
		"another header that will not fit on a single line",
	}, nil)

	doc := newTestDoc(t)
	var buf bytes.Buffer
	story := report.Story{short, report.Spacer{H: 5}, long}
	if err := doc.Build(&buf, story); err != nil {
		t.Fatalf("build: %v", err)
	}
	// Wrapped header content must survive into the page, not overflow away.
	if !bytes.Contains(buf.Bytes(), []byte("wrap")) {
		t.Error("missing wrapped header text in content streams")
	}
}
