package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/net/http/httpguts"

	"github.com/zostay/go-content"
	"github.com/zostay/go-content/param/encoding"
)

var (
	rootCmd = &cobra.Command{
		Use:               "contentheader",
		Short:             "Parse Content-type and Content-disposition header values",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	logLevel          string
	logFormat         string
	genericTypeErrors bool
	dispositionTypes  []string
	ianaCharsets      bool

	logger *zap.Logger
	parser *content.Parser
)

func init() {
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(dispositionCmd)
	rootCmd.AddCommand(boundaryCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, or error")
	flags.StringVar(&logFormat, "log-format", "console", "log encoding: console or json")
	flags.BoolVar(&genericTypeErrors, "generic-type-errors", false, "report every content-type failure as a generic error")
	flags.StringSliceVar(&dispositionTypes, "disposition-type", []string{content.FormData}, "accepted disposition types")
	flags.BoolVar(&ianaCharsets, "iana-charsets", false, "decode filename* values in any IANA charset instead of assuming utf-8")
}

// Execute runs the command line tool.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	logger, err = buildLogger(logLevel, logFormat)
	if err != nil {
		return err
	}

	opts := []content.Option{content.WithDispositionTypes(dispositionTypes...)}
	if genericTypeErrors {
		opts = append(opts, content.WithTypeErrors(content.GenericTypeErrors))
	}
	if ianaCharsets {
		opts = append(opts, content.WithParamOptions(encoding.WithCharsets()))
	}
	parser = content.New(opts...)

	logger.Debug("parser configured",
		zap.String("command", cmd.Name()),
		zap.Bool("genericTypeErrors", genericTypeErrors),
		zap.Strings("dispositionTypes", dispositionTypes),
		zap.Bool("ianaCharsets", ianaCharsets),
	)

	return nil
}

// buildLogger creates a zap logger writing to stderr so that parse results on
// stdout stay clean.
func buildLogger(level, encoding string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if encoding != "console" && encoding != "json" {
		return nil, fmt.Errorf("invalid --log-format %q: expected console or json", encoding)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          encoding,
		DisableCaller:     true,
		DisableStacktrace: true,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	return config.Build()
}

// checkHeaderValue refuses values that could never have arrived in a header,
// such as those containing line breaks or other control characters.
func checkHeaderValue(field, v string) error {
	if !httpguts.ValidHeaderFieldValue(v) {
		return fmt.Errorf("%s value %q contains characters not allowed in a header", field, v)
	}
	return nil
}

// logParse records the outcome of a single parse.
func logParse(field, v string, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("header", field),
		zap.Int("length", len(v)),
		zap.Duration("elapsed", elapsed),
	}

	if err != nil {
		var kind error = err
		var pErr *content.ParseError
		if errors.As(err, &pErr) {
			kind = pErr.Kind
		}
		logger.Warn("header rejected", append(fields, zap.NamedError("kind", kind), zap.Error(err))...)
		return
	}

	logger.Debug("header parsed", fields...)
}

func printField(cmd *cobra.Command, name, value string, ok bool) {
	if !ok {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, value)
}
