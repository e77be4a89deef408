package runner

import (
	"runtime"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/scorer"
)

const DefaultTopK = scorer.DefaultTopK

type Config struct {
	TopK    int
	KValues []int
	Workers int
}

func DefaultConfig() Config {
	return Config{
		TopK:    DefaultTopK,
		Workers: runtime.NumCPU(),
	}
}

func (c Config) scorerConfig() scorer.Config {
	return scorer.Config{TopK: c.TopK, KValues: c.KValues}.Normalize()
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return 1
	}
	return c.Workers
}
