package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/larynjahor/pushpop/internal/config"
	"github.com/lmittmann/tint"
)

// Auto installs a tint handler as the default slog logger. Logs go to stderr
// unless cfg.LogFile is set. The returned Closer releases the log file.
func Auto(cfg config.Config) (io.Closer, error) {
	w, err := getWriter(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	logLevel := slog.LevelDebug
	if !cfg.Debug {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   true,
		Level:       logLevel,
		ReplaceAttr: nil,
		TimeFormat:  time.Kitchen,
		NoColor:     !cfg.Debug || cfg.LogFile != "",
	}))

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(logLevel)

	return w, nil
}

func getWriter(path string) (io.WriteCloser, error) {
	if path == "" {
		return struct {
			io.Writer
			io.Closer
		}{
			os.Stderr,
			io.NopCloser(nil),
		}, nil
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
