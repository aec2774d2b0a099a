package dataset_test

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NICD-UK/reportlab-blog/dataset"
)

var irisColumns = []string{"sepal length", "sepal width", "petal length", "petal width", "class"}

// irisCSV builds a deterministic 150-row, 5-column headerless CSV in the
// shape of the iris dataset: three classes of fifty rows each, with constant
// measurements per class so grouped means are exact.
func irisCSV() string {
	var sb strings.Builder
	classes := []string{"Iris-setosa", "Iris-versicolor", "Iris-virginica"}
	for k, class := range classes {
		for i := 0; i < 50; i++ {
			base := float64(k + 1)
			fmt.Fprintf(&sb, "%.1f,%.1f,%.1f,%.1f,%s\n",
				base, base+1, base+2, base+3, class)
		}
	}
	return sb.String()
}

func irisFrame(t *testing.T) dataset.Frame {
	t.Helper()
	f, err := dataset.FromCSV(strings.NewReader(irisCSV()), irisColumns...)
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	return f
}

func TestFromCSVShape(t *testing.T) {
	f := irisFrame(t)
	if f.NumRows() != 150 {
		t.Errorf("NumRows = %d, want 150", f.NumRows())
	}
	if f.NumCols() != 5 {
		t.Errorf("NumCols = %d, want 5", f.NumCols())
	}
	cols := f.Columns()
	for i, want := range irisColumns {
		if cols[i] != want {
			t.Errorf("column %d = %q, want %q", i, cols[i], want)
		}
	}
}

func TestRecordsDropHeader(t *testing.T) {
	f := irisFrame(t)
	recs := f.Records()
	if len(recs) != 150 {
		t.Fatalf("len(Records) = %d, want 150", len(recs))
	}
	if recs[0][4] != "Iris-setosa" {
		t.Errorf("first record class = %q, want Iris-setosa", recs[0][4])
	}
}

func TestNumericColumns(t *testing.T) {
	f := irisFrame(t)
	numeric := f.NumericColumns()
	if len(numeric) != 4 {
		t.Fatalf("numeric columns = %v, want the 4 measurements", numeric)
	}
	for _, col := range numeric {
		if col == "class" {
			t.Error("class column reported as numeric")
		}
	}
}

func TestReadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, irisCSV())
	}))
	defer srv.Close()

	f, err := dataset.ReadURL(context.Background(), srv.Client(), srv.URL, irisColumns...)
	if err != nil {
		t.Fatalf("ReadURL: %v", err)
	}
	if f.NumRows() != 150 || f.NumCols() != 5 {
		t.Errorf("shape = %dx%d, want 150x5", f.NumRows(), f.NumCols())
	}
}

func TestReadURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := dataset.ReadURL(context.Background(), srv.Client(), srv.URL, irisColumns...)
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestGroupMeans(t *testing.T) {
	f := irisFrame(t)
	means, err := f.GroupMeans("class")
	if err != nil {
		t.Fatalf("GroupMeans: %v", err)
	}
	if means.NumRows() != 3 {
		t.Fatalf("NumRows = %d, want 3", means.NumRows())
	}
	if means.NumCols() != 5 {
		t.Fatalf("NumCols = %d, want 5", means.NumCols())
	}
	if got := means.Columns()[0]; got != "class" {
		t.Errorf("first column = %q, want the group label", got)
	}

	// Rows come back sorted by label; per-class values are constant, so the
	// means equal them exactly.
	recs := means.Records()
	wantOrder := []string{"Iris-setosa", "Iris-versicolor", "Iris-virginica"}
	for i, want := range wantOrder {
		if recs[i][0] != want {
			t.Errorf("row %d label = %q, want %q", i, recs[i][0], want)
		}
	}
	sl, err := means.Numeric("sepal length")
	if err != nil {
		t.Fatalf("Numeric: %v", err)
	}
	for i, want := range []float64{1, 2, 3} {
		if math.Abs(sl[i]-want) > 1e-9 {
			t.Errorf("sepal length mean[%d] = %v, want %v", i, sl[i], want)
		}
	}
}

func TestCorrelations(t *testing.T) {
	csv := "1,2,-1\n2,4,-2\n3,6,-3\n4,8,-4\n"
	f, err := dataset.FromCSV(strings.NewReader(csv), "x", "y", "z")
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}

	corr, err := f.Correlations()
	if err != nil {
		t.Fatalf("Correlations: %v", err)
	}
	if corr.NumRows() != 3 {
		t.Errorf("NumRows = %d, want 3", corr.NumRows())
	}
	if corr.NumCols() != 4 {
		t.Errorf("NumCols = %d, want 4 (label + 3 variables)", corr.NumCols())
	}

	x, err := corr.Numeric("x")
	if err != nil {
		t.Fatalf("Numeric: %v", err)
	}
	// Column "x" holds corr(x, x), corr(y, x), corr(z, x).
	want := []float64{1, 1, -1}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-9 {
			t.Errorf("corr[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}
