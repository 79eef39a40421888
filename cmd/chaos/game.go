package main

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chaos-arcade/internal/audio"
	"github.com/vovakirdan/chaos-arcade/internal/games/runner"
	"github.com/vovakirdan/chaos-arcade/internal/platform/tui"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
	"github.com/vovakirdan/chaos-arcade/internal/session"
	"github.com/vovakirdan/chaos-arcade/internal/storage"
)

// gameFactory builds games with the CLI's config flags applied. When bell
// is non-nil, hits and blasts also ring the terminal bell on it.
func gameFactory(bell io.Writer) tui.GameFactory {
	return func(id string, store *storage.Store, logger *log.Logger) (registry.Game, error) {
		switch id {
		case "chaos":
			sinks := audio.Multi{audio.NewLogger(logger.WithPrefix("audio"))}
			if bell != nil {
				sinks = append(sinks, audio.NewBell(bell))
			}
			opts := session.Options{
				ConfigPath: flagConfig,
				Difficulty: flagDifficulty,
				Sink:       sinks,
				Logger:     logger.WithPrefix("session"),
			}
			// A nil *storage.Store must not become a non-nil interface.
			if store != nil {
				opts.Store = store
			}
			return session.New(opts), nil
		case "runner":
			runner.SetConfigPath(flagConfig)
			runner.SetDifficultyPreset(flagDifficulty)
			g := runner.New()
			g.SetLogger(logger.WithPrefix("runner"))
			return g, nil
		}
		return registry.Create(id)
	}
}
