package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critval/app"
)

func TestRenderSweep(t *testing.T) {
	svc := app.NewSweepService(nil)
	sweep, err := svc.Run(context.Background(), app.SweepRequest{
		Family:      app.FamilyOneSample,
		SampleSizes: []float64{30},
		ConfLevels:  []float64{0.95},
	})
	require.NoError(t, err)

	md := RenderSweep(sweep)
	assert.Contains(t, md, "One-sample t-test")
	assert.Contains(t, md, sweep.SweepID)
	assert.Contains(t, md, "| 30 | 0.950 |")
	assert.Equal(t, 1, strings.Count(md, "| 30 |"), "one row per cell")
}

func TestToHTML(t *testing.T) {
	out := string(ToHTML("# Title\n\n| a |\n|---|\n| 1 |\n"))
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<table")
}
