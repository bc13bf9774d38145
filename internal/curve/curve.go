package curve

import (
    "context"
    "encoding/csv"
    "fmt"
    "math"
    "os"
    "path/filepath"
    "strconv"

    "golang.org/x/sync/errgroup"
    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/plotutil"
    "gonum.org/v1/plot/vg"

    "splitforest/internal/data"
    "splitforest/internal/eval"
    "splitforest/internal/models"
)

// Point is the train and holdout score of a model fitted on Size rows.
type Point struct {
    Size  int
    Train eval.Report
    Test  eval.Report
}

// Sizes spreads points training sizes between min and total, geometrically
// when useLog is set. Sizes are strictly increasing and end at total.
func Sizes(total, points, min int, useLog bool) []int {
    if total <= 0 { return nil }
    if points <= 1 { points = 2 }
    if min < 10 { min = 10 }
    if min > total { min = int(math.Max(1, float64(total)/2)) }
    sizes := make([]int, 0, points)
    for i := 0; i < points; i++ {
        var s int
        if useLog {
            ratio := math.Pow(float64(total)/float64(min), 1.0/float64(points-1))
            s = int(math.Round(float64(min) * math.Pow(ratio, float64(i))))
        } else {
            step := float64(total-min) / float64(points-1)
            s = int(math.Round(float64(min) + float64(i)*step))
        }
        if s > total { s = total }
        sizes = append(sizes, s)
    }
    cleaned := make([]int, 0, len(sizes))
    last := 0
    for _, s := range sizes {
        if s <= last { s = last + 1 }
        if s > total { break }
        cleaned = append(cleaned, s)
        last = s
    }
    if cleaned[len(cleaned)-1] != total { cleaned[len(cleaned)-1] = total }
    return cleaned
}

// Run fits one fresh model per size on the first size rows of train and
// scores it on those rows and on test. Points run on up to workers goroutines;
// every model gets its own copy of the rows, so newModel must not share state.
func Run(ctx context.Context, newModel func() models.Model, train, test data.Dataset, sizes []int, workers int) ([]Point, error) {
    out := make([]Point, len(sizes))
    g, ctx := errgroup.WithContext(ctx)
    if workers > 0 { g.SetLimit(workers) }
    for k, s := range sizes {
        g.Go(func() error {
            if err := ctx.Err(); err != nil { return err }
            sub := train.Head(s)
            X := append([][]float64(nil), sub.X...)
            m := newModel()
            if err := m.Fit(X, sub.Y); err != nil { return fmt.Errorf("size %d: %w", s, err) }
            out[k] = Point{
                Size:  s,
                Train: eval.Evaluate(sub.Y, m.Predict(sub.X)),
                Test:  eval.Evaluate(test.Y, m.Predict(test.X)),
            }
            return nil
        })
    }
    if err := g.Wait(); err != nil { return nil, err }
    return out, nil
}

func WriteCSV(path string, points []Point) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()
    w := csv.NewWriter(f)
    if err := w.Write([]string{"size", "train_acc", "test_acc", "train_f1", "test_f1"}); err != nil { return err }
    for _, p := range points {
        rec := []string{strconv.Itoa(p.Size),
            fmt.Sprintf("%.6f", p.Train.Accuracy), fmt.Sprintf("%.6f", p.Test.Accuracy),
            fmt.Sprintf("%.6f", p.Train.MacroF1), fmt.Sprintf("%.6f", p.Test.MacroF1),
        }
        if err := w.Write(rec); err != nil { return err }
    }
    w.Flush()
    return w.Error()
}

func PlotPNG(path, title string, points []Point) error {
    p := plot.New()
    p.Title.Text = title
    p.X.Label.Text = "Amostras de treino"
    p.Y.Label.Text = "Métrica"
    p.Y.Min = 0
    p.Y.Max = 1

    series := func(pick func(Point) float64) plotter.XYs {
        pts := make(plotter.XYs, len(points))
        for i, pt := range points { pts[i].X = float64(pt.Size); pts[i].Y = pick(pt) }
        return pts
    }
    if err := plotutil.AddLinePoints(p,
        "Treino (Acc)", series(func(pt Point) float64 { return pt.Train.Accuracy }),
        "Teste (Acc)", series(func(pt Point) float64 { return pt.Test.Accuracy }),
        "Treino (F1)", series(func(pt Point) float64 { return pt.Train.MacroF1 }),
        "Teste (F1)", series(func(pt Point) float64 { return pt.Test.MacroF1 }),
    ); err != nil { return err }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
