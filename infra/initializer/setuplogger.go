package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogger builds the styled default logger. When cfg.File is set the
// output is duplicated into a size-rotated file, returned so it can be closed.
func setupLogger(cfg *config.Log) (*slog.Logger, io.Closer) {
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05"}
	}
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levels := map[log.Level]struct {
		icon  string
		color lipgloss.AdaptiveColor
	}{
		log.ErrorLevel: {"❌", errorTxtColor},
		log.InfoLevel:  {"ℹ️", infoTxtColor},
		log.WarnLevel:  {"⚠️", warnTxtColor},
		log.DebugLevel: {"🐛", debugTxtColor},
	}
	for lvl, s := range levels {
		styles.Levels[lvl] = lipgloss.NewStyle().
			SetString(s.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(s.color)
	}

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":  errorTxtColor,
		"info":   infoTxtColor,
		"warn":   warnTxtColor,
		"debug":  debugTxtColor,
		"prefix": debugTxtColor,
		"caller": debugTxtColor,
		"time":   debugTxtColor,
		"ticker": infoTxtColor,
		"userID": infoTxtColor,
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	var (
		out     io.Writer = os.Stdout
		rotated io.Closer
	)
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, file)
		rotated = file
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger, rotated
}
