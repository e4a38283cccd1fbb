package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/faizmokh/daftar/internal/config"
	"github.com/faizmokh/daftar/internal/locale"
	"github.com/faizmokh/daftar/internal/logging"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	lang       string
	logFile    string
	logLevel   string
}

// session bundles what a command needs once config and flags are merged.
type session struct {
	cfg     config.Config
	strings *locale.Strings
	logger  *slog.Logger
	closer  func() error
}

func (o *rootOptions) open() (*session, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.lang != "" {
		cfg.Language = o.lang
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	strings, err := locale.New(cfg.Language)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		strings: strings,
		logger:  logger,
		closer:  closer,
	}, nil
}

// close flushes the log file. A failure is reported on w but does not change
// the command's result.
func (s *session) close(w io.Writer) {
	if err := s.closer(); err != nil {
		fmt.Fprintf(w, "warning: close log: %v\n", err)
	}
}
