package config

import (
    "fmt"
    "os"

    "github.com/go-playground/validator/v10"
    "github.com/goccy/go-yaml"
    "go.uber.org/multierr"

    "splitforest/pkg/forest"
)

type Data struct {
    Shape string  `yaml:"shape" validate:"oneof=xor checkerboard blobs"`
    N     int     `yaml:"n" validate:"gte=1"`
    Noise float64 `yaml:"noise" validate:"gte=0,lte=1"`
    Path  string  `yaml:"path"`
    Train float64 `yaml:"train_fraction" validate:"gt=0,lt=1"`
}

type Server struct {
    Addr   string `yaml:"addr" validate:"required"`
    APIKey string `yaml:"api_key"`
}

type Config struct {
    Algo   string            `yaml:"algo" validate:"oneof=tree forest"`
    Split  string            `yaml:"split" validate:"oneof=threshold hyperplane"`
    Seed   int64             `yaml:"seed"`
    Forest forest.Parameters `yaml:"forest" validate:"-"`
    Data   Data              `yaml:"data"`
    Server Server            `yaml:"server"`
}

func Default() Config {
    p := forest.DefaultParameters()
    p.SamplesPerTree = 0
    return Config{
        Algo:   "forest",
        Split:  "threshold",
        Seed:   1,
        Forest: p,
        Data:   Data{Shape: "checkerboard", N: 5000, Noise: 0.02, Path: "data/synthetic.csv", Train: 0.8},
        Server: Server{Addr: ":8080"},
    }
}

var validate = validator.New()

func (c Config) Validate() error {
    err := validate.Struct(c)
    if err != nil { err = fmt.Errorf("config: %w", err) }
    return multierr.Append(err, c.Forest.Validate())
}

// Parse overlays YAML on the defaults.
func Parse(b []byte) (Config, error) {
    c := Default()
    if err := yaml.Unmarshal(b, &c); err != nil { return Config{}, fmt.Errorf("config: %w", err) }
    if err := c.Validate(); err != nil { return Config{}, err }
    return c, nil
}

// Load reads path; an empty path yields the defaults. PORT and API_KEY
// override the server section.
func Load(path string) (Config, error) {
    c := Default()
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil { return Config{}, fmt.Errorf("config: %w", err) }
        if c, err = Parse(b); err != nil { return Config{}, err }
    }
    if port := os.Getenv("PORT"); port != "" { c.Server.Addr = ":" + port }
    if key := os.Getenv("API_KEY"); key != "" { c.Server.APIKey = key }
    return c, c.Validate()
}
