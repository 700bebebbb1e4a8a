package config

import (
	"hash/maphash"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/lmittmann/tint"
)

func NewLogger(w io.Writer) *slog.Logger {
	if Development() {
		return slog.New(
			tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

// NewRand returns a seeded source when seed is set and a randomly seeded one
// otherwise.
func NewRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
