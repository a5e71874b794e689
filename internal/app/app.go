package app

import (
	"log/slog"

	"github.com/heartmarshall/bulu-dictionary/internal/config"
)

// Setup loads configuration, initializes the default logger, and logs the
// command start. Commands apply their flag overrides afterwards and validate again.
func Setup(command string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := NewLogger(cfg.Log).With(slog.String("command", command))

	logger.Info("starting",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	return cfg, logger, nil
}
