// Command logpipe copies lines from stdin to the outputs described in a
// YAML file, writing each one through the instance of a chosen level.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/philipp01105/linelog/config"
	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/logger"
	"github.com/philipp01105/linelog/registry"
	"github.com/philipp01105/linelog/sink"
)

type options struct {
	configPath string
	level      string
	noPrefix   bool
}

// newRootCmd builds the command tree. factory builds the sinks for run;
// clock stamps the prefixes.
func newRootCmd(factory config.Factory, clock core.Clock) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "logpipe",
		Short:         "Copy stdin lines to configured log outputs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "outputs.yaml", "Output configuration file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Write every stdin line to the configured outputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, factory, clock)
		},
	}
	runCmd.Flags().StringVarP(&opts.level, "level", "l", "INFO", "Level of the writing instance")
	runCmd.Flags().BoolVar(&opts.noPrefix, "no-prefix", false, "Suppress the prefix of every line")

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the destination table the configuration produces",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(cmd, opts)
		},
	}

	rootCmd.AddCommand(runCmd, dumpCmd)
	return rootCmd
}

func run(cmd *cobra.Command, opts *options, factory config.Factory, clock core.Clock) (err error) {
	level, ok := core.ParseLevel(opts.level)
	if !ok {
		return fmt.Errorf("invalid level %q", opts.level)
	}

	f, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	reg := registry.New()
	defer func() {
		err = multierr.Append(err, reg.Close())
	}()
	if _, err := config.Apply(reg, f, factory); err != nil {
		return err
	}

	l := logger.NewBuilder().WithRegistry(reg).WithLevel(level).WithClock(clock).Build()

	return pipe(bufio.NewReader(cmd.InOrStdin()), l, opts.noPrefix)
}

// pipe writes every line of r through l. Lines longer than the reader's
// buffer arrive in fragments and are written as payload until the
// fragment that ends them.
func pipe(r *bufio.Reader, l *logger.Logger, noPrefix bool) error {
	start := true
	for {
		frag, more, err := r.ReadLine()
		if err == io.EOF {
			if !start {
				l.EndLine()
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}

		if start && noPrefix {
			l.NoPrefix()
		}
		switch {
		case more:
			l.Bytes(frag)
		case start:
			l.Line(frag)
		default:
			l.Bytes(frag).EndLine()
		}
		start = !more
	}
}

// placeholder stands in for every output during dump so no file is
// opened and no endpoint dialed.
func placeholder(config.Output) (core.Sink, error) {
	return sink.NewBufferSink(sink.BufferConfig{Size: 1}), nil
}

func dump(cmd *cobra.Command, opts *options) error {
	f, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	reg := registry.New()
	sinks, err := config.Apply(reg, f, placeholder)
	if err != nil {
		return err
	}

	bySink := make(map[core.Sink]registry.Info, len(sinks))
	for _, info := range reg.Snapshot() {
		bySink[info.Sink] = info
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tTHRESHOLD\tENABLED\tPREFIX\tDATE\tLEVELNAME")
	for _, o := range f.Outputs {
		info := bySink[sinks[o.Name]]
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%t\t%t\n",
			o.Name, o.Type, levelLabel(info.Threshold), info.Enabled,
			info.Flags.Prefix, info.Flags.Date, info.Flags.LevelName)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d/%d destinations\n", reg.Len(), reg.Cap())
	return nil
}

func levelLabel(l core.Level) string {
	if l == core.SilentLevel {
		return "SILENT"
	}
	return l.String()
}

func main() {
	if err := newRootCmd(config.DefaultFactory, core.SystemClock{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
