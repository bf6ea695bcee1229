// Package logger builds log/slog loggers for the useragents command and
// library.
//
// New applies functional options (WithLevel, WithFormat, WithOutput, WithAttr,
// WithEnvironment, WithContextValue) on top of text output at info level to
// stderr. Discard returns a logger that drops everything and is what library
// types use when no logger is injected.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithEnvironment("production"),
//	)
//	log.Debug("corpus loaded", logger.Category("chrome"), logger.Count(13))
//
// Attribute helpers keep key names consistent across packages.
package logger
