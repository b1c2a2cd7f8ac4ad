// Package cli implements the timelinekit command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/timelinekit/timelinekit/pkg/codec"
	"github.com/timelinekit/timelinekit/pkg/config"
	"github.com/timelinekit/timelinekit/pkg/logger"
	"github.com/timelinekit/timelinekit/pkg/store"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// app is the state shared by the commands of one root command.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *logger.LogData
}

// NewRootCommand returns a fresh command tree. Each call has its own flags
// and state, so tests can run several in parallel.
func NewRootCommand() *cobra.Command {
	root, _ := newRootCommand()
	return root
}

// newRootCommand also returns the function that closes the log file opened
// while the command ran.
func newRootCommand() (*cobra.Command, func() error) {
	a := &app{}

	root := &cobra.Command{
		Use:           "timelinekit",
		Short:         "Inspect, convert and store timelines.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./timelinekit.yaml)")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(
		newRenderCommand(a),
		newConvertCommand(a),
		newSaveCommand(a),
		newShowCommand(a),
		newListCommand(a),
		newRemoveCommand(a),
		newHeapCommand(a),
	)
	return root, a.close
}

// Execute runs the root command and reports a failure before returning it.
func Execute(ctx context.Context) error {
	root, closeLog := newRootCommand()
	err := run(ctx, root, closeLog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// run executes root and then closes the log, whether or not the command failed.
func run(ctx context.Context, root *cobra.Command, closeLog func() error) error {
	err := root.ExecuteContext(ctx)
	return errors.Join(err, closeLog())
}

func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	build := logger.New().FromBuffer(stderr).WithLevel(cfg.Log.Level)
	if cfg.Log.Path != "" {
		build = build.FromPath(cfg.Log.Path)
	}
	if cfg.Log.Format == "console" {
		build = build.Console()
	}
	a.log, err = build.Make()
	return err
}

func (a *app) close() error {
	if a.log == nil {
		return nil
	}
	return a.log.Close()
}

func (a *app) logger() zerolog.Logger {
	if a.log == nil {
		return zerolog.Nop()
	}
	return a.log.Logger
}

// fail logs err for the named command and returns it.
func (a *app) fail(cmd *cobra.Command, err error) error {
	l := a.logger()
	l.Error().Err(err).Str("command", cmd.Name()).Msg("command failed")
	return err
}

func (a *app) openStore() (*store.Store, error) {
	c, err := codec.ByName(a.cfg.Store.Codec)
	if err != nil {
		return nil, err
	}
	return store.Open(a.cfg.Store.Path,
		store.WithCodec(c),
		store.WithLogger(a.logger()),
		store.WithTimeout(a.cfg.Store.Timeout),
	)
}
