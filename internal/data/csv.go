package data

import (
    "encoding/csv"
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strconv"

    "splitforest/pkg/forest"
)

// WriteCSV writes d with a header x0..x{d-1},label.
func WriteCSV(w io.Writer, d Dataset) error {
    cw := csv.NewWriter(w)
    header := make([]string, 0, d.Dim()+1)
    for j := 0; j < d.Dim(); j++ { header = append(header, "x"+strconv.Itoa(j)) }
    header = append(header, "label")
    if err := cw.Write(header); err != nil { return err }
    for i, x := range d.X {
        rec := make([]string, 0, len(x)+1)
        for _, v := range x { rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64)) }
        rec = append(rec, strconv.Itoa(int(d.Y[i])))
        if err := cw.Write(rec); err != nil { return err }
    }
    cw.Flush()
    return cw.Error()
}

// ReadCSV parses the format written by WriteCSV; the last column is the label.
func ReadCSV(r io.Reader) (Dataset, error) {
    rows, err := csv.NewReader(r).ReadAll()
    if err != nil { return Dataset{}, err }
    if len(rows) < 2 { return Dataset{}, forest.ErrEmptyData }
    width := len(rows[0]) - 1
    if width < 1 { return Dataset{}, fmt.Errorf("header has no feature columns") }
    d := Dataset{X: make([][]float64, 0, len(rows)-1), Y: make([]forest.Label, 0, len(rows)-1)}
    for i, row := range rows[1:] {
        line := i + 2
        if len(row) != width+1 { return Dataset{}, fmt.Errorf("line %d: %d columns, want %d", line, len(row), width+1) }
        x := make([]float64, width)
        for j := 0; j < width; j++ {
            x[j], err = strconv.ParseFloat(row[j], 64)
            if err != nil { return Dataset{}, fmt.Errorf("line %d column %d: %w", line, j, err) }
        }
        l, err := strconv.ParseUint(row[width], 10, 8)
        if err != nil { return Dataset{}, fmt.Errorf("line %d label: %w", line, err) }
        d.X = append(d.X, x)
        d.Y = append(d.Y, forest.Label(l))
    }
    return d, nil
}

func SaveCSV(path string, d Dataset) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()
    return WriteCSV(f, d)
}

func LoadCSV(path string) (Dataset, error) {
    f, err := os.Open(path)
    if err != nil { return Dataset{}, err }
    defer f.Close()
    d, err := ReadCSV(f)
    if err != nil { return Dataset{}, fmt.Errorf("%s: %w", path, err) }
    return d, nil
}
