// Package dataset loads tabular data and derives the summary frames the
// report converters consume: grouped means and pairwise correlations.
//
// It wraps a gota dataframe behind a small read-only Frame type. Frames keep
// gota's string/float typing; no numeric formatting is applied, cell values
// pass through to tables as-is.
package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// Frame is an immutable view over a tabular dataset with named columns.
type Frame struct {
	df dataframe.DataFrame
}

// FromCSV parses a headerless CSV stream, naming the columns after names.
func FromCSV(r io.Reader, names ...string) (Frame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(false),
		dataframe.Names(names...),
	)
	if df.Err != nil {
		return Frame{}, fmt.Errorf("dataset: parsing csv: %w", df.Err)
	}
	return Frame{df: df}, nil
}

// ReadURL fetches a headerless CSV from url and parses it with the given
// column names. A nil client uses http.DefaultClient. Fetch and parse
// failures propagate to the caller; there is no retry.
func ReadURL(ctx context.Context, client *http.Client, url string, names ...string) (Frame, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Frame{}, fmt.Errorf("dataset: building request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return Frame{}, fmt.Errorf("dataset: fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Frame{}, fmt.Errorf("dataset: fetching %s: unexpected status %s", url, resp.Status)
	}
	return FromCSV(resp.Body, names...)
}

// Columns returns the column names in order.
func (f Frame) Columns() []string {
	return f.df.Names()
}

// NumRows returns the number of data rows.
func (f Frame) NumRows() int {
	return f.df.Nrow()
}

// NumCols returns the number of columns.
func (f Frame) NumCols() int {
	return f.df.Ncol()
}

// Records returns the data rows as strings, in column order. The header is
// not included and the row index is dropped.
func (f Frame) Records() [][]string {
	recs := f.df.Records()
	if len(recs) == 0 {
		return nil
	}
	return recs[1:]
}

// Numeric returns the values of a numeric column.
func (f Frame) Numeric(col string) ([]float64, error) {
	s := f.df.Col(col)
	if s.Err != nil {
		return nil, fmt.Errorf("dataset: column %q: %w", col, s.Err)
	}
	return s.Float(), nil
}

// NumericColumns returns the names of the int and float columns, in order.
func (f Frame) NumericColumns() []string {
	var cols []string
	types := f.df.Types()
	for i, name := range f.df.Names() {
		switch types[i] {
		case series.Float, series.Int:
			cols = append(cols, name)
		}
	}
	return cols
}

// GroupMeans groups the frame by the given column and averages every
// numeric column. The result has the group label first, one row per group,
// sorted by label.
func (f Frame) GroupMeans(by string) (Frame, error) {
	numeric := f.NumericColumns()
	if len(numeric) == 0 {
		return Frame{}, fmt.Errorf("dataset: grouping by %q: no numeric columns", by)
	}

	groups := f.df.GroupBy(by)
	if groups.Err != nil {
		return Frame{}, fmt.Errorf("dataset: grouping by %q: %w", by, groups.Err)
	}

	typs := make([]dataframe.AggregationType, len(numeric))
	for i := range typs {
		typs[i] = dataframe.Aggregation_MEAN
	}
	agg := groups.Aggregation(typs, numeric)
	if agg.Err != nil {
		return Frame{}, fmt.Errorf("dataset: aggregating means: %w", agg.Err)
	}

	// gota suffixes aggregated columns and emits groups in map order.
	for _, col := range numeric {
		agg = agg.Rename(col, col+"_MEAN")
	}
	agg = agg.Arrange(dataframe.Sort(by))
	agg = agg.Select(append([]string{by}, numeric...))
	if agg.Err != nil {
		return Frame{}, fmt.Errorf("dataset: aggregating means: %w", agg.Err)
	}
	return Frame{df: agg}, nil
}

// Correlations returns the pairwise Pearson correlation matrix of the
// numeric columns as a labeled frame: the first column names the variable,
// followed by one column per variable. The matrix is symmetric with a unit
// diagonal.
func (f Frame) Correlations() (Frame, error) {
	numeric := f.NumericColumns()
	if len(numeric) == 0 {
		return Frame{}, fmt.Errorf("dataset: correlations: no numeric columns")
	}

	values := make([][]float64, len(numeric))
	for i, col := range numeric {
		v, err := f.Numeric(col)
		if err != nil {
			return Frame{}, err
		}
		values[i] = v
	}

	out := make([]series.Series, 0, len(numeric)+1)
	out = append(out, series.New(numeric, series.String, "variable"))
	for j, col := range numeric {
		corr := make([]float64, len(numeric))
		for i := range numeric {
			if i == j {
				corr[i] = 1
				continue
			}
			corr[i] = stat.Correlation(values[i], values[j], nil)
		}
		out = append(out, series.New(corr, series.Float, col))
	}

	df := dataframe.New(out...)
	if df.Err != nil {
		return Frame{}, fmt.Errorf("dataset: correlations: %w", df.Err)
	}
	return Frame{df: df}, nil
}
