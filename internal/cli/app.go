// ABOUTME: Wiring of config, logger, store, journal and tracker for commands
// ABOUTME: Built once per command invocation from the loaded configuration
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/harper/studylog/internal/config"
	"github.com/harper/studylog/internal/fault"
	"github.com/harper/studylog/internal/logging"
	"github.com/harper/studylog/internal/store"
	"github.com/harper/studylog/internal/tracker"
	"github.com/spf13/cobra"
)

// clock is the time source for all commands; tests replace it.
var clock = time.Now

var failColor = color.New(color.FgRed)

type app struct {
	cfg     *config.Config
	logger  *log.Logger
	journal *fault.Journal
	tracker *tracker.Tracker
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	journal := fault.NewJournal(cfg.JournalFile)
	ic := fault.New(journal, fault.WithLogger(logger), fault.WithClock(clock))

	logger.Debug("loaded config", "data_file", cfg.DataFile, "journal_file", cfg.JournalFile)

	return &app{
		cfg:     cfg,
		logger:  logger,
		journal: journal,
		tracker: tracker.New(store.New(cfg.DataFile), ic, tracker.WithClock(clock)),
	}, nil
}

func printFailure(w io.Writer, f *fault.Failure) {
	_, _ = failColor.Fprintln(w, f.Error())
}

func printLogged(w io.Writer, rec store.Record) {
	fmt.Fprintf(w, "Study time for %s logged successfully for %s hours on %s\n",
		rec.Subject, store.FormatHours(rec.Hours), rec.Date)
}
