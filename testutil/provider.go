package testutil

import (
	"errors"
	"sync/atomic"

	"github.com/comalice/circstatx"
	"github.com/comalice/circstatx/internal/bessel"
)

// ErrStub is the default error returned by FailingProvider.
var ErrStub = errors.New("stub provider failure")

var (
	_ circstatx.BesselProvider = (*FailingProvider)(nil)
	_ circstatx.BesselProvider = (*CountingProvider)(nil)
	_ circstatx.BesselProvider = UnscaledProvider{}
)

// FailingProvider fails the sequence call, or only the I0 call when OnlyI0
// is set. Err defaults to ErrStub.
type FailingProvider struct {
	Err    error
	OnlyI0 bool
}

func (p *FailingProvider) err() error {
	if p.Err != nil {
		return p.Err
	}
	return ErrStub
}

func (p *FailingProvider) ScaledSequence(x float64, dst []float64) error {
	if p.OnlyI0 {
		return circstatx.DefaultProvider().ScaledSequence(x, dst)
	}
	return p.err()
}

func (p *FailingProvider) ScaledI0(x float64) (float64, error) {
	return 0, p.err()
}

// CountingProvider forwards to Next (the default provider when nil) and
// counts calls. Safe for concurrent use.
type CountingProvider struct {
	Next circstatx.BesselProvider

	sequenceCalls atomic.Int64
	i0Calls       atomic.Int64
	maxLen        atomic.Int64
}

func (p *CountingProvider) next() circstatx.BesselProvider {
	if p.Next != nil {
		return p.Next
	}
	return circstatx.DefaultProvider()
}

func (p *CountingProvider) ScaledSequence(x float64, dst []float64) error {
	p.sequenceCalls.Add(1)
	for {
		cur := p.maxLen.Load()
		if int64(len(dst)) <= cur || p.maxLen.CompareAndSwap(cur, int64(len(dst))) {
			break
		}
	}
	return p.next().ScaledSequence(x, dst)
}

func (p *CountingProvider) ScaledI0(x float64) (float64, error) {
	p.i0Calls.Add(1)
	return p.next().ScaledI0(x)
}

// SequenceCalls returns the number of ScaledSequence calls seen.
func (p *CountingProvider) SequenceCalls() int64 { return p.sequenceCalls.Load() }

// I0Calls returns the number of ScaledI0 calls seen.
func (p *CountingProvider) I0Calls() int64 { return p.i0Calls.Load() }

// MaxOrder returns the largest sequence length requested.
func (p *CountingProvider) MaxOrder() int { return int(p.maxLen.Load()) }

// UnscaledProvider hands out plain I_n(x) values instead of scaled ones, the
// way a naive provider would. Ratios are unchanged, so results must match the
// scaled provider until I_0 overflows (x beyond ~713).
type UnscaledProvider struct{}

func (UnscaledProvider) ScaledSequence(x float64, dst []float64) error {
	for k := range dst {
		v, err := bessel.In(k+1, x)
		if err != nil {
			return err
		}
		dst[k] = v
	}
	return nil
}

func (UnscaledProvider) ScaledI0(x float64) (float64, error) {
	return bessel.I0(x)
}
