package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/NethermindEth/aap-arbitrary/arbitrary"
	"github.com/NethermindEth/aap-arbitrary/encoder"
	"github.com/NethermindEth/aap-arbitrary/internal/corpus"
	"github.com/NethermindEth/aap-arbitrary/utils"
	"github.com/mitchellh/mapstructure"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configF    = "config"
	verbosityF = "verbosity"
	kindF      = "kind"
	workersF   = "workers"
	inputF     = "input"
	hexF       = "hex"

	defaultConfig    = ""
	defaultVerbosity = utils.INFO
	defaultKind      = ""
	defaultWorkers   = 0
	defaultInput     = ""
	defaultHex       = ""

	configFlagUsage    = "The yaml configuration file."
	verbosityFlagUsage = "Verbosity of the logs. Options: debug, info, warn, error."
	kindUsage          = "The kind of value to generate. Options: "
	workersUsage       = "Number of corpus entries replayed in parallel. 0 uses GOMAXPROCS."
	inputUsage         = "File holding the input bytes, raw or in Go fuzz corpus format."
	hexUsage           = "Input bytes as a hex string."
)

var (
	ErrNoKind           = errors.New("no kind given")
	ErrInputSource      = errors.New("exactly one of --input and --hex is required")
	ErrNondeterministic = errors.New("corpus has nondeterministic entries")
)

// NewLoggerFn builds the logger once the configured verbosity is known.
type NewLoggerFn func(level utils.LogLevel) (utils.SimpleLogger, error)

func NewCmd(newLogger NewLoggerFn) *cobra.Command {
	arbgenCmd := &cobra.Command{
		Use:           "arbgen",
		Short:         "Build payment-system values from fuzzer bytes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	verbosity := defaultVerbosity
	arbgenCmd.PersistentFlags().String(configF, defaultConfig, configFlagUsage)
	arbgenCmd.PersistentFlags().Var(&verbosity, verbosityF, verbosityFlagUsage)
	arbgenCmd.PersistentFlags().String(kindF, defaultKind, kindUsage+strings.Join(corpus.KindNames(), ", "))

	arbgenCmd.AddCommand(genCmd(newLogger), replayCmd(newLogger))
	return arbgenCmd
}

func genCmd(newLogger NewLoggerFn) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate one value and print its CBOR encoding.",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String(inputF, defaultInput, inputUsage)
	cmd.Flags().String(hexF, defaultHex, hexUsage)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd, newLogger)
		if err != nil {
			return err
		}

		data, err := readInput(cmd)
		if err != nil {
			return err
		}
		gen, err := corpus.Lookup(cfg.Kind)
		if err != nil {
			return err
		}

		u := arbitrary.NewUnstructured(data)
		value, err := gen(u)
		if err != nil {
			return errors.Wrapf(err, "generate %s", cfg.Kind)
		}
		encoded, err := encoder.Marshal(value)
		if err != nil {
			return errors.Wrapf(err, "encode %s", cfg.Kind)
		}
		log.Debugw("Generated value", "kind", cfg.Kind, "consumed", u.Consumed(), "remaining", u.Len())

		return printValue(cmd.OutOrStdout(), cfg.Kind, u.Consumed(), len(data), encoded)
	}
	return cmd
}

func replayCmd(newLogger NewLoggerFn) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay DIR",
		Short: "Replay a fuzz corpus directory and check every entry is deterministic.",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().Int(workersF, defaultWorkers, workersUsage)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd, newLogger)
		if err != nil {
			return err
		}

		entries, err := corpus.LoadDir(args[0])
		if err != nil {
			return err
		}
		replayer, err := corpus.NewReplayer(*cfg, log)
		if err != nil {
			return err
		}
		results, err := replayer.Replay(cmd.Context(), entries)
		if err != nil {
			return err
		}
		log.Infow("Replayed corpus", "kind", cfg.Kind, "dir", args[0], "entries", len(entries))

		summary := corpus.Summarise(results)
		printSummary(cmd.OutOrStdout(), summary, len(results))
		if summary[corpus.Nondeterministic] > 0 {
			for _, res := range results {
				if res.Outcome == corpus.Nondeterministic {
					log.Errorw("Nondeterministic entry", "entry", res.Entry, "err", res.Err)
				}
			}
			return ErrNondeterministic
		}
		return nil
	}
	return cmd
}

// setup merges the config file and flags, flags taking precedence, and builds the logger.
func setup(cmd *cobra.Command, newLogger NewLoggerFn) (*corpus.Config, utils.SimpleLogger, error) {
	v := viper.New()
	cfgFile, err := cmd.Flags().GetString(configF)
	if err != nil {
		return nil, nil, err
	}
	if cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, err
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, nil, err
	}

	cfg := new(corpus.Config)
	if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
		return nil, nil, err
	}
	if cfg.Kind == "" {
		return nil, nil, ErrNoKind
	}

	log, err := newLogger(cfg.Verbosity)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func readInput(cmd *cobra.Command) ([]byte, error) {
	path, err := cmd.Flags().GetString(inputF)
	if err != nil {
		return nil, err
	}
	hexInput, err := cmd.Flags().GetString(hexF)
	if err != nil {
		return nil, err
	}

	switch {
	case path != "" && hexInput == "":
		entry, err := corpus.Load(path)
		if err != nil {
			return nil, err
		}
		return entry.Data, nil
	case path == "" && hexInput != "":
		data, err := hex.DecodeString(strings.TrimPrefix(hexInput, "0x"))
		if err != nil {
			return nil, errors.Wrap(err, "decode --hex")
		}
		return data, nil
	default:
		return nil, ErrInputSource
	}
}

func printSummary(w io.Writer, summary corpus.Summary, total int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Outcome", "Entries"})
	for _, outcome := range []corpus.Outcome{
		corpus.OK, corpus.Exhausted, corpus.ConstructionFailure, corpus.Nondeterministic,
	} {
		table.Append([]string{outcome.String(), strconv.Itoa(summary[outcome])})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(total)})
	table.Render()
}

func printValue(w io.Writer, kind string, consumed, total int, encoded []byte) error {
	_, err := fmt.Fprintf(w, "kind: %s\nconsumed: %d of %d bytes\ncbor: %x\n", kind, consumed, total, encoded)
	return err
}
