package tracker

import "github.com/shopspring/decimal"

type ChannelAggregate struct {
	Res0 decimal.Decimal
	Res1 decimal.Decimal
	Res2 decimal.Decimal
}

func (c ChannelAggregate) Values() [Channels]decimal.Decimal {
	return [Channels]decimal.Decimal{c.Res0, c.Res1, c.Res2}
}

type Run struct {
	Folder string
	Exc    ChannelAggregate
}

// Record is the transient per-tracker result of one collection call.
type Record struct {
	Serial SerialNumber
	Runs   map[RunRoot]Run
}

func NewRecord(sn SerialNumber) *Record {
	return &Record{Serial: sn, Runs: make(map[RunRoot]Run, len(Roots))}
}

func (r *Record) Set(root RunRoot, run Run) { r.Runs[root] = run }

// Complete reports whether every run root has a resolved run.
func (r *Record) Complete() bool {
	for _, root := range Roots {
		if _, ok := r.Runs[root]; !ok {
			return false
		}
	}
	return true
}
