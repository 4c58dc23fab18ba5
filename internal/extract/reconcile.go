package extract

import (
	"fmt"
	"log/slog"
)

// Result is the reconciled output. Success mirrors Count > 0; an input no
// strategy could read is an empty result, not an error.
type Result struct {
	Records []Record `json:"records"`
	Count   int      `json:"count"`
	Success bool     `json:"success"`
}

// Reconciler merges candidates from multiple strategies into one validated,
// deduplicated, capped record list. Strategy order inside each slice is the
// priority order: the first strategy to claim a name wins the whole record;
// later duplicates are dropped, not merged field by field.
type Reconciler struct {
	cfg       Config
	primary   []Strategy
	secondary []Strategy
	logger    *slog.Logger
}

// NewReconciler wires the strategy sets. Secondary strategies only run when
// the primaries together yield fewer than cfg.MergeThreshold records, which
// keeps the expensive catch-all scans off the common path.
func NewReconciler(cfg Config, primary, secondary []Strategy, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		cfg:       cfg.WithDefaults(),
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// Reconcile runs the strategies and folds their candidates into the final
// result. It always returns a well-formed Result; strategy failures degrade
// to zero candidates from that strategy.
func (r *Reconciler) Reconcile(in Input) Result {
	acc := accumulator{
		records: []Record{},
		seen:    make(map[string]struct{}, r.cfg.MaxRecords),
	}

	for _, s := range r.primary {
		acc = r.absorb(acc, s, in)
	}
	if len(acc.records) < r.cfg.MergeThreshold {
		for _, s := range r.secondary {
			acc = r.absorb(acc, s, in)
		}
	}

	return Result{
		Records: acc.records,
		Count:   len(acc.records),
		Success: len(acc.records) > 0,
	}
}

// accumulator is the merge state threaded through the reconciliation fold.
type accumulator struct {
	records []Record
	seen    map[string]struct{}
}

func (r *Reconciler) absorb(acc accumulator, s Strategy, in Input) accumulator {
	if len(acc.records) >= r.cfg.MaxRecords {
		return acc
	}
	recs := r.collect(s, in)
	accepted := 0
	for _, rec := range recs {
		if len(acc.records) >= r.cfg.MaxRecords {
			break
		}
		rec.Name = NormalizeName(rec.Name, r.cfg.RankMarkers)
		if _, dup := acc.seen[rec.Name]; dup {
			continue
		}
		if !r.cfg.IsPlausible(rec) {
			continue
		}
		acc.records = append(acc.records, rec)
		acc.seen[rec.Name] = struct{}{}
		accepted++
	}
	r.logger.Debug("reconcile.strategy.absorbed",
		"strategy", s.Name(), "candidates", len(recs), "accepted", accepted, "total", len(acc.records))
	return acc
}

// collect runs one strategy, containing both returned errors and panics so a
// broken strategy never takes reconciliation down with it.
func (r *Reconciler) collect(s Strategy, in Input) (recs []Record) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Warn("reconcile.strategy.panic", "strategy", s.Name(), "panic", fmt.Sprint(p))
			recs = nil
		}
	}()
	recs, err := s.Extract(in)
	if err != nil {
		r.logger.Warn("reconcile.strategy.failed", "strategy", s.Name(), "error", err)
		return nil
	}
	return recs
}
