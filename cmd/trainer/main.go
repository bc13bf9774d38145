package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"go.uber.org/zap"

	"splitforest/internal/config"
	"splitforest/internal/curve"
	"splitforest/internal/data"
	"splitforest/internal/eval"
	"splitforest/internal/models"
	"splitforest/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    cfgPath := flag.String("config", "", "Arquivo YAML de configuração")
    regen := flag.Bool("regen", true, "Regenerar dataset sintético")
    shape := flag.String("shape", "", "Formato do dataset: xor|checkerboard|blobs")
    n := flag.Int("n", 0, "Número de registros sintéticos")
    out := flag.String("out", "", "Caminho do CSV de saída")
    algo := flag.String("algo", "", "Algoritmo: tree|forest")
    split := flag.String("split", "", "Família de splits: threshold|hyperplane")
    trees := flag.Int("trees", 0, "Número de árvores no ensemble")
    candidates := flag.Int("candidates", 0, "Candidatos avaliados por nó")
    maxDepth := flag.Int("max_depth", -1, "Profundidade máxima da árvore (0 = sem limite)")
    minSamples := flag.Int("min_samples", -1, "Máximo de amostras que viram folha")
    samples := flag.Int("samples", -1, "Amostras por árvore (0 = todas)")
    seed := flag.Int64("seed", 0, "Semente do gerador (0 = relógio)")
    curveOn := flag.Bool("curve", true, "Gerar curva de aprendizagem (PNG e CSV)")
    curvePoints := flag.Int("curve_points", 8, "Quantidade de pontos na curva")
    curveMin := flag.Int("curve_min", 100, "Tamanho mínimo inicial da curva")
    curveLog := flag.Bool("curve_log", true, "Usar escala logarítmica para os tamanhos")
    curveImg := flag.String("curve_out_img", "data/learning_curve.png", "PNG da curva")
    curveCsv := flag.String("curve_out_csv", "data/learning_curve.csv", "CSV da curva")
    flag.Parse()

    cfg, err := config.Load(*cfgPath)
    if err != nil { logger.Fatal("Falha ao carregar configuração", zap.Error(err)) }
    if *shape != "" { cfg.Data.Shape = *shape }
    if *n > 0 { cfg.Data.N = *n }
    if *out != "" { cfg.Data.Path = *out }
    if *algo != "" { cfg.Algo = *algo }
    if *split != "" { cfg.Split = *split }
    if *trees > 0 { cfg.Forest.NumberOfTrees = *trees }
    if *candidates > 0 { cfg.Forest.CandidatesPerNode = *candidates }
    if *maxDepth >= 0 { cfg.Forest.MaxDepth = *maxDepth }
    if *minSamples >= 0 { cfg.Forest.MinSamplesPerLeaf = *minSamples }
    if *samples >= 0 { cfg.Forest.SamplesPerTree = *samples }
    if *seed != 0 { cfg.Seed = *seed }
    if cfg.Seed == 0 { cfg.Seed = time.Now().UnixNano() }
    if err := cfg.Validate(); err != nil { logger.Fatal("Configuração inválida", zap.Error(err)) }

    rng := rand.New(rand.NewSource(cfg.Seed))
    if *regen {
        logger.Info("Gerando dataset sintético", zap.String("shape", cfg.Data.Shape), zap.Int("n", cfg.Data.N), zap.String("out", cfg.Data.Path))
        d, err := data.Generate(cfg.Data.Shape, cfg.Data.N, cfg.Data.Noise, rng)
        if err != nil { logger.Fatal("Falha ao gerar dataset", zap.Error(err)) }
        if err := data.SaveCSV(cfg.Data.Path, d); err != nil { logger.Fatal("Falha ao salvar CSV", zap.Error(err)) }
    }

    d, err := data.LoadCSV(cfg.Data.Path)
    if err != nil { logger.Fatal("Falha ao ler CSV", zap.Error(err)) }
    counts := d.Counts()
    fields := make([]zap.Field, 0, len(counts)+1)
    fields = append(fields, zap.Int("registros", d.Len()))
    for l, c := range counts { fields = append(fields, zap.Int(fmt.Sprintf("classe_%d", l), c)) }
    logger.Info("Distribuição da classe", fields...)

    train, test := data.StratifiedSplit(d, cfg.Data.Train, rng)
    newModel := func() models.Model { return models.New(cfg.Algo, cfg.Forest, cfg.Split, cfg.Seed) }

    start := time.Now()
    mdl := newModel()
    if err := mdl.Fit(train.X, train.Y); err != nil { logger.Fatal("Falha ao treinar", zap.String("model", mdl.Name()), zap.Error(err)) }
    elapsed := time.Since(start)

    pred := mdl.Predict(test.X)
    cm := eval.NewConfusion(test.Y, pred)
    logger.Info("Métricas holdout",
        zap.String("model", mdl.Name()),
        zap.String("split", cfg.Split),
        zap.Int("train", train.Len()),
        zap.Int("test", test.Len()),
        zap.Float64("accuracy", eval.Accuracy(test.Y, pred)),
        zap.Float64("macro_f1", cm.MacroF1()),
        zap.Duration("tempo_treino", elapsed),
    )
    for _, l := range cm.Labels() {
        p, r, f1 := cm.PRF1(l)
        logger.Debug("Métricas por classe", zap.Uint8("label", uint8(l)), zap.Float64("precision", p), zap.Float64("recall", r), zap.Float64("f1", f1))
    }
    fmt.Println("Modelo:", mdl.Name())

    if !*curveOn { return }
    sizes := curve.Sizes(train.Len(), *curvePoints, *curveMin, *curveLog)
    points, err := curve.Run(context.Background(), newModel, train, test, sizes, runtime.GOMAXPROCS(0))
    if err != nil { logger.Fatal("Falha ao treinar no ponto da curva", zap.Error(err)) }
    if err := curve.WriteCSV(*curveCsv, points); err != nil {
        logger.Warn("Falha ao salvar CSV da curva", zap.Error(err))
    }
    if err := curve.PlotPNG(*curveImg, "Curva de Aprendizagem", points); err != nil {
        logger.Warn("Falha ao salvar PNG da curva", zap.Error(err))
    } else {
        logger.Info("Curva de aprendizagem gerada", zap.String("png", *curveImg), zap.String("csv", *curveCsv))
    }
}
