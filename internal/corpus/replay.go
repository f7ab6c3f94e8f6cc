package corpus

import (
	"bytes"
	"context"
	"runtime"

	"github.com/NethermindEth/aap-arbitrary/arbitrary"
	"github.com/NethermindEth/aap-arbitrary/encoder"
	"github.com/NethermindEth/aap-arbitrary/utils"
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
)

type Outcome int

const (
	OK Outcome = iota
	Exhausted
	ConstructionFailure
	Nondeterministic
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Exhausted:
		return "exhausted"
	case ConstructionFailure:
		return "construction-failure"
	case Nondeterministic:
		return "nondeterministic"
	default:
		return "unknown"
	}
}

type Config struct {
	Kind      string         `mapstructure:"kind"`
	Workers   int            `mapstructure:"workers"`
	Verbosity utils.LogLevel `mapstructure:"verbosity"`
}

type Result struct {
	Entry    string
	Outcome  Outcome
	Consumed int
	// Encoding is the CBOR encoding of the generated value, nil unless Outcome is OK.
	Encoding []byte
	Err      error
}

// Summary counts results per outcome.
type Summary map[Outcome]int

func Summarise(results []Result) Summary {
	s := make(Summary)
	for _, r := range results {
		s[r.Outcome]++
	}
	return s
}

type Replayer struct {
	kind    string
	gen     GenerateFunc
	workers int
	log     utils.SimpleLogger
}

func NewReplayer(cfg Config, log utils.SimpleLogger) (*Replayer, error) {
	gen, err := Lookup(cfg.Kind)
	if err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Replayer{
		kind:    cfg.Kind,
		gen:     gen,
		workers: workers,
		log:     log,
	}, nil
}

// Run generates one value from data and encodes it.
func (r *Replayer) Run(data []byte) Result {
	u := arbitrary.NewUnstructured(data)
	value, err := r.gen(u)
	res := Result{Consumed: u.Consumed(), Err: err}
	switch {
	case err == nil:
		res.Encoding, res.Err = encoder.Marshal(value)
		if res.Err != nil {
			res.Outcome = ConstructionFailure
		}
	case errors.Is(err, arbitrary.ErrNotEnoughData):
		res.Outcome = Exhausted
	default:
		res.Outcome = ConstructionFailure
	}
	return res
}

// Replay runs every entry twice, each time from its own copy of the data, and flags entries
// whose runs disagree. Results come back in entry order.
func (r *Replayer) Replay(ctx context.Context, entries []Entry) ([]Result, error) {
	results := make([]Result, len(entries))
	workerPool := pool.New().WithMaxGoroutines(r.workers).WithContext(ctx)

	for i, entry := range entries {
		workerPool.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := r.replayOne(entry)
			results[i] = res

			if res.Outcome == Nondeterministic {
				r.log.Warnw("Nondeterministic corpus entry", "kind", r.kind, "entry", entry.Name)
			} else {
				r.log.Debugw("Replayed corpus entry", "kind", r.kind, "entry", entry.Name,
					"outcome", res.Outcome, "consumed", res.Consumed)
			}
			return nil
		})
	}
	if err := workerPool.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Replayer) replayOne(entry Entry) Result {
	first := r.Run(bytes.Clone(entry.Data))
	second := r.Run(bytes.Clone(entry.Data))
	first.Entry = entry.Name

	if first.Outcome != second.Outcome || first.Consumed != second.Consumed ||
		!bytes.Equal(first.Encoding, second.Encoding) {
		first.Err = errors.Errorf("runs disagree: %s/%d bytes then %s/%d bytes",
			first.Outcome, first.Consumed, second.Outcome, second.Consumed)
		first.Outcome = Nondeterministic
	}
	return first
}
