package circstatx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/circstatx"
	"github.com/comalice/circstatx/testutil"
)

func TestCDFBatchPreservesOrder(t *testing.T) {
	vm := mustNew(t, 0.2, 3)
	xs := grid(0.2, 257)

	ev := circstatx.NewEvaluator(circstatx.WithConcurrency(4))
	got, err := ev.CDFBatch(context.Background(), vm, xs)
	require.NoError(t, err)
	require.Len(t, got, len(xs))

	for i, x := range xs {
		want, err := ev.CDF(vm, x)
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "index %d", i)
	}
}

func TestPDFBatch(t *testing.T) {
	vm := mustNew(t, 0, 1)
	got, err := circstatx.DefaultEvaluator().PDFBatch(context.Background(), vm, []float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.34171048862346315, got[0], 1e-12)
}

func TestCDFBatchEmpty(t *testing.T) {
	got, err := circstatx.NewEvaluator().CDFBatch(context.Background(), mustNew(t, 0, 1), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCDFBatchReportsFailingPoint(t *testing.T) {
	vm := mustNew(t, 0, 1)
	_, err := circstatx.NewEvaluator().CDFBatch(context.Background(), vm, []float64{0, 1, 5, -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, circstatx.ErrOutOfDomain)
	assert.Contains(t, err.Error(), "point 2")
}

func TestCDFBatchProviderFailure(t *testing.T) {
	ev := circstatx.NewEvaluator(
		circstatx.WithProvider(&testutil.FailingProvider{}),
		circstatx.WithConcurrency(2),
	)
	_, err := ev.CDFBatch(context.Background(), mustNew(t, 0, 1), grid(0, 16))
	assert.ErrorIs(t, err, circstatx.ErrProviderFailure)
}

func TestCDFBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	counting := &testutil.CountingProvider{}
	ev := circstatx.NewEvaluator(circstatx.WithProvider(counting))
	_, err := ev.CDFBatch(ctx, mustNew(t, 0, 1), grid(0, 64))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, counting.SequenceCalls())
}
