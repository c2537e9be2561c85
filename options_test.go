package picker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsResolveFullHeight(t *testing.T) {
	o := DefaultOptions()
	require.Equal(t, 40, o.Resolve(40))
}

func TestWithFixedHeightClampsToTerminal(t *testing.T) {
	o := DefaultOptions()
	WithFixedHeight(50)(&o)
	require.Equal(t, 20, o.Resolve(20))
	require.Equal(t, 30, o.Resolve(30))
}

func TestWithHeightFractionClampsPercent(t *testing.T) {
	o := DefaultOptions()
	WithHeightFraction(50)(&o)
	require.Equal(t, 10, o.Resolve(20))

	WithHeightFraction(0)(&o)
	require.Equal(t, 1, o.Resolve(20))

	WithHeightFraction(500)(&o)
	require.Equal(t, 20, o.Resolve(20))
}

func TestOptionsApplyOverDefaults(t *testing.T) {
	o := DefaultOptions()
	for _, opt := range []Option{WithPrompt("> "), WithMulti(), WithReversed(), WithPadding(5), WithTickBudget(64)} {
		opt(&o)
	}
	require.Equal(t, "> ", o.Prompt)
	require.True(t, o.Multi)
	require.True(t, o.Reversed)
	require.Equal(t, uint16(5), o.Padding)
	require.Equal(t, 64, o.TickBudget)
}

func TestDefaultOptionsMatchSpecDefaults(t *testing.T) {
	o := DefaultOptions()
	require.Equal(t, "> ", o.Prompt)
	require.Equal(t, uint16(3), o.Padding)
	require.Equal(t, CaseSmart, o.CaseMatching)
	require.Equal(t, NormalizationSmart, o.Normalization)
	require.True(t, o.Highlight)
	require.Equal(t, uint16(3), o.HighlightPadding)
	require.Equal(t, "", o.Query)
	require.GreaterOrEqual(t, o.Threads, 1)
}

func TestOptionsApplyConfigurationKnobs(t *testing.T) {
	o := DefaultOptions()
	for _, opt := range []Option{
		WithCaseMatching(CaseRespect),
		WithNormalization(NormalizationNever),
		WithHighlight(false),
		WithHighlightPadding(5),
		WithThreads(4),
		WithQuery("seed"),
	} {
		opt(&o)
	}
	require.Equal(t, CaseRespect, o.CaseMatching)
	require.Equal(t, NormalizationNever, o.Normalization)
	require.False(t, o.Highlight)
	require.Equal(t, uint16(5), o.HighlightPadding)
	require.Equal(t, 4, o.Threads)
	require.Equal(t, "seed", o.Query)
}
