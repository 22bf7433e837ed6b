package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designvars/internal/clipboard"
	"github.com/alexisbeaulieu97/designvars/internal/config"
	"github.com/alexisbeaulieu97/designvars/internal/design"
	"github.com/alexisbeaulieu97/designvars/internal/form"
	"github.com/alexisbeaulieu97/designvars/internal/logger"
	"github.com/alexisbeaulieu97/designvars/internal/storage"
	apperrors "github.com/alexisbeaulieu97/designvars/pkg/errors"
)

// appContext carries what every command needs once flags and settings are resolved.
type appContext struct {
	settings config.Settings
	layout   design.Layout
	log      *logger.Logger
	kv       storage.KV
	logFile  *os.File
}

// newClipboard is swapped out in tests.
var newClipboard = func() form.Clipboard {
	return clipboard.NewSystem()
}

type logMode int

const (
	logToStderr logMode = iota
	logQuiet
)

// openApp loads settings, applies flag overrides, builds the logger and opens storage.
func openApp(cmd *cobra.Command, flags *rootFlags, op string, mode logMode) (*appContext, error) {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(op, "loading settings", err, "Fix or remove the settings file, then retry.")
	}

	overrides := config.Overrides{
		Storage: flags.storage,
		DataDir: flags.dataDir,
		Layout:  flags.layout,
		Listen:  flags.listen,
	}
	if flags.verbose {
		overrides.LogLevel = "debug"
	}
	settings = settings.Apply(overrides)
	if err := config.Validate(settings); err != nil {
		return nil, newCommandError(op, "validating flags", err, "Run 'designvars --help' to see accepted values.")
	}

	layout, err := design.ParseLayout(settings.Layout)
	if err != nil {
		return nil, newCommandError(op, "resolving layout", err, "Use --layout component or --layout script.")
	}

	app := &appContext{settings: settings, layout: layout}

	if err := app.initLogger(cmd, flags.logFile, mode); err != nil {
		return nil, newCommandError(op, "creating logger", err, "Check the --log-file path and log_level setting.")
	}

	kv, err := storage.Open(settings.Storage, settings.DataDir)
	if err != nil {
		app.Close()
		return nil, newCommandError(op, fmt.Sprintf("opening %s storage in %s", settings.Storage, settings.DataDir), err, "Check that the data directory is writable.")
	}
	app.kv = kv

	app.log = app.log.WithCommand(op, settings.Storage, layout.String())
	app.log.Debug("settings resolved")

	return app, nil
}

func (a *appContext) initLogger(cmd *cobra.Command, logFile string, mode logMode) error {
	var writer io.Writer
	switch {
	case logFile != "":
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		a.logFile = f
		writer = f
	case mode == logQuiet:
		a.log = logger.Discard()
		return nil
	default:
		writer = cmd.ErrOrStderr()
	}

	log, err := logger.New(logger.Options{
		Level:         a.settings.LogLevel,
		HumanReadable: a.logFile == nil,
		Writer:        writer,
	})
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// openStore loads the persisted variables for the configured layout.
func (a *appContext) openStore(ctx context.Context, op string) (*design.Store, error) {
	store, err := design.Open(ctx, a.kv, a.layout, design.WithLogger(a.log))
	if err != nil {
		var parseErr *apperrors.ParseError
		if errors.As(err, &parseErr) {
			return nil, newCommandError(op, "reading saved variables", err, "The saved record is corrupt. Run 'designvars reset --force' to discard it.")
		}
		return nil, newCommandError(op, "reading saved variables", err, "Check that the data directory is readable.")
	}
	return store, nil
}

func (a *appContext) controller(store *design.Store, opts ...form.Option) *form.Controller {
	base := []form.Option{
		form.WithLogger(a.log),
		form.WithDefaultUnit(a.settings.DefaultUnit),
	}
	return form.New(store, append(base, opts...)...)
}

// Close releases storage handles and the log file.
func (a *appContext) Close() {
	if a == nil {
		return
	}
	if err := storage.Close(a.kv); err != nil {
		a.log.Error(err, "closing storage")
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// printNotices writes informational notices to w. Failures reach the user
// through the returned command error instead.
func printNotices(w io.Writer) form.Notifier {
	return form.NotifierFunc(func(n form.Notice) {
		if n.Kind == form.NoticeInfo {
			_, _ = fmt.Fprintf(w, "✓ %s\n", n.Message)
		}
	})
}
