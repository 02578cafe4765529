package gemini_test

import (
	"context"
	"testing"

	"github.com/Unsaif/pathrecon"
	"github.com/Unsaif/pathrecon/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_AnalyzePathway_Validation(t *testing.T) {
	t.Parallel()

	t.Run("requires at least one source file", func(t *testing.T) {
		t.Parallel()

		analyzer := gemini.NewAnalyzer(nil, "")

		_, err := analyzer.AnalyzePathway(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, pathrecon.EINVALID, pathrecon.ErrorCode(err))
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, float64(*config.Temperature), 0.001)
	require.NotNil(t, config.SystemInstruction)
}
