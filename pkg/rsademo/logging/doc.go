// Package logging provides the logging facade used across rsademo.
//
// The Logger interface wraps a subset of log/slog. Two backends are provided:
//
//	// slog, bound to slog.Default() when nil
//	logger := logging.New(nil)
//
//	// zap, built from Config with an optional rotating log file
//	zl, closeLog, err := logging.BuildZap(logging.Config{Level: "debug", File: "rsademo.log"})
//	defer closeLog()
//	logger := logging.NewZap(zl)
//
// # Redaction
//
// The private exponent must never reach a log sink. Mark the attribute as
// redacted instead:
//
//	logger.Info(ctx, "key pair derived", "n", n, logging.Redacted("d"))
//	// Logs: d="[redacted]"
//
// keys.PrivateKey renders itself with the placeholder under fmt, slog and zap,
// so passing the key value directly is also safe.
package logging
