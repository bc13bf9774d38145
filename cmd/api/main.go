package main

import (
    "flag"
    "math/rand"
    "os"

    "go.uber.org/zap"

    "splitforest/internal/config"
    "splitforest/internal/data"
    "splitforest/internal/eval"
    "splitforest/internal/models"
    "splitforest/internal/server"
    "splitforest/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    cfgPath := flag.String("config", os.Getenv("FOREST_CONFIG"), "Arquivo YAML de configuração")
    flag.Parse()

    cfg, err := config.Load(*cfgPath)
    if err != nil { logger.Fatal("Falha ao carregar configuração", zap.Error(err)) }

    rng := rand.New(rand.NewSource(cfg.Seed))
    d, err := data.LoadCSV(cfg.Data.Path)
    if err != nil {
        logger.Warn("CSV indisponível, usando dataset sintético", zap.String("path", cfg.Data.Path), zap.Error(err))
        if d, err = data.Generate(cfg.Data.Shape, cfg.Data.N, cfg.Data.Noise, rng); err != nil {
            logger.Fatal("Falha ao gerar dataset", zap.Error(err))
        }
    }

    train, test := data.StratifiedSplit(d, cfg.Data.Train, rng)
    model := models.New(cfg.Algo, cfg.Forest, cfg.Split, cfg.Seed)
    if err := model.Fit(train.X, train.Y); err != nil { logger.Fatal("Falha ao treinar", zap.Error(err)) }

    info := server.Info{Name: model.Name(), Dim: d.Dim(), Params: cfg.Forest, Split: cfg.Split, Trees: 1,
        Accuracy: eval.Accuracy(test.Y, model.Predict(test.X))}
    if rf, ok := model.(*models.RandomForest); ok { info.Trees = rf.Forest.Len() }
    logger.Info("Modelo treinado", zap.String("model", info.Name), zap.Int("trees", info.Trees), zap.Float64("holdout_accuracy", info.Accuracy))

    srv := server.New(model, info, cfg.Server.APIKey, logger)
    logger.Info("Servindo", zap.String("addr", cfg.Server.Addr))
    if err := srv.Router().Run(cfg.Server.Addr); err != nil { logger.Fatal("Servidor encerrado", zap.Error(err)) }
}
