package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvknot/engine"
	"github.com/katalvlaran/lvknot/grid"
)

type options struct {
	verbose bool
	out     string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "knotcheck",
		Short: "Validate knot diagrams and resolve arc moves",
		Long: `knotcheck reads a two-layer knot diagram from a YAML document.

The primary layer holds the loop; the secondary layer holds up to two
separator markers (O) and the auxiliary path (A, T) joining them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if o.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			o.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = o.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log every pipeline stage")
	root.PersistentFlags().StringVarP(&o.out, "out", "o", "", "write the resulting diagram to this file")

	root.AddCommand(
		&cobra.Command{
			Use:   "validate FILE",
			Short: "Trace the loop and report its crossings",
			Args:  cobra.ExactArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return o.validate(cmd.OutOrStdout(), args[0]) },
		},
		&cobra.Command{
			Use:   "resolve FILE",
			Short: "Resolve the arc between the separators and mark it",
			Args:  cobra.ExactArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return o.resolve(cmd.OutOrStdout(), args[0], false) },
		},
		&cobra.Command{
			Use:   "move FILE",
			Short: "Resolve the arc and replace it by the auxiliary path",
			Args:  cobra.ExactArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return o.resolve(cmd.OutOrStdout(), args[0], true) },
		},
	)
	return root
}

// load decodes the diagram at path and wires an engine to it.
func (o *options) load(path string) (*grid.Board, *grid.Document, *engine.Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()
	b, doc, err := grid.Decode(f)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	o.logger.Debug("diagram loaded", zap.String("path", path),
		zap.Int("primary", b.Len(grid.Primary)), zap.Int("secondary", b.Len(grid.Secondary)))
	return b, doc, engine.New(b, engine.WithLogger(o.logger)), nil
}

func (o *options) validate(w io.Writer, path string) error {
	b, _, e, err := o.load(path)
	if err != nil {
		return err
	}
	lr, err := e.ValidateDiagram()
	printNotes(w, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "nodes: %d\ncrossings: %d\nturns: %d\nstraights: %d\n",
		lr.Nodes, lr.Crossings, lr.Turns, lr.Straights)
	return nil
}

func (o *options) resolve(w io.Writer, path string, move bool) error {
	b, doc, e, err := o.load(path)
	if err != nil {
		return err
	}
	// 1) adopt the separator markers in row-major order
	for _, s := range b.Segments(grid.Secondary) {
		if s.Kind != grid.KindSeparator {
			continue
		}
		if err := e.AddSeparator(s.At); err != nil {
			printNotes(w, b)
			return err
		}
	}
	// 2) resolve, then optionally move
	c, err := e.ResolveAndCommit()
	if err != nil {
		printNotes(w, b)
		return err
	}
	if move {
		if _, err := e.ApplyMove(); err != nil {
			printNotes(w, b)
			return err
		}
	}
	printNotes(w, b)
	fmt.Fprintf(w, "handedness: %s\nforward: %t\n", c.Handedness, c.Forward)
	return o.write(w, doc.Name, b)
}

// write sends the diagram to --out, or to w when no file was given.
func (o *options) write(w io.Writer, name string, b *grid.Board) error {
	if o.out == "" {
		return grid.Encode(w, name, b)
	}
	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := grid.Encode(f, name, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printNotes(w io.Writer, b *grid.Board) {
	for _, n := range b.Notifications() {
		fmt.Fprintf(w, "[%s] %s\n", n.Severity, n.Message)
	}
}
