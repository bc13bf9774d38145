package main

import (
    "context"
    "flag"
    "fmt"
    "math/rand"

    "splitforest/internal/curve"
    "splitforest/internal/data"
    "splitforest/internal/models"
    "splitforest/pkg/forest"
)

func main() {
    algo := flag.String("algo", "forest", "Algoritmo: tree|forest")
    split := flag.String("split", "threshold", "Família de splits: threshold|hyperplane")
    trees := flag.Int("trees", 30, "Número de árvores")
    candidates := flag.Int("candidates", 16, "Candidatos avaliados por nó")
    maxDepth := flag.Int("max_depth", 0, "Profundidade máxima da árvore (0 = sem limite)")
    minSamples := flag.Int("min_samples", 1, "Máximo de amostras que viram folha")
    points := flag.Int("points", 8, "Quantidade de pontos na curva")
    workers := flag.Int("workers", 4, "Pontos da curva treinados em paralelo")
    seed := flag.Int64("seed", 1, "Semente")
    dataPath := flag.String("data", "data/synthetic.csv", "CSV de entrada")
    outImg := flag.String("out_img", "data/learning_curve.png", "PNG de saída")
    outCsv := flag.String("out_csv", "data/learning_curve.csv", "CSV de saída")
    flag.Parse()

    d, err := data.LoadCSV(*dataPath)
    if err != nil { fmt.Println("Falha ao abrir CSV:", err); return }

    train, test := data.StratifiedSplit(d, 0.8, rand.New(rand.NewSource(*seed)))
    params := forest.Parameters{
        MaxDepth:          *maxDepth,
        MinSamplesPerLeaf: *minSamples,
        CandidatesPerNode: *candidates,
        NumberOfTrees:     *trees,
    }
    newModel := func() models.Model { return models.New(*algo, params, *split, *seed) }

    sizes := curve.Sizes(train.Len(), *points, 100, false)
    res, err := curve.Run(context.Background(), newModel, train, test, sizes, *workers)
    if err != nil { fmt.Println("Falha treino:", err); return }
    for _, p := range res {
        fmt.Printf("%s | size=%d | train=%.3f | test=%.3f | f1=%.3f\n", newModel().Name(), p.Size, p.Train.Accuracy, p.Test.Accuracy, p.Test.MacroF1)
    }

    if err := curve.WriteCSV(*outCsv, res); err != nil {
        fmt.Println("Erro ao salvar CSV:", err)
    } else {
        fmt.Println("Curva salva em:", *outCsv)
    }
    if err := curve.PlotPNG(*outImg, "Curva de Aprendizagem", res); err != nil {
        fmt.Println("Erro ao salvar PNG:", err)
    } else {
        fmt.Println("Gráfico salvo em:", *outImg)
    }
}
