package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/cv-matcher/internal/analyzer"
	"github.com/jonathan/cv-matcher/internal/types"
)

var _ analyzer.Observer = (*ZapObserver)(nil)

func TestZapObserver_LogsStages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	engine := analyzer.New(analyzer.WithObserver(NewZapObserver(zap.New(core))))

	engine.Analyze(types.CVInput{Text: "Développeur React", Experience: "3 ans"}, types.JobPosition{
		ID:       "p",
		Title:    "Développeur",
		Category: types.CategoryTech,
		Keywords: types.KeywordGroups{Required: []string{"React"}},
		ScoreWeights: types.ScoreWeights{
			Keywords: 0.4, Experience: 0.3, Education: 0.2, Certifications: 0.1,
		},
	})

	entries := logs.All()
	require.NotEmpty(t, entries)
	assert.Equal(t, analyzer.StageKeywords, entries[0].Message)
	assert.Equal(t, "analysis", entries[0].LoggerName)
	assert.Equal(t, analyzer.StageAggregate, entries[len(entries)-1].Message)
}

func TestZapObserver_InfoLevelSkipsStages(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	o := NewZapObserver(zap.New(core))

	o.OnStage(analyzer.StageKeywords, map[string]any{"score": 50})

	assert.Zero(t, logs.Len())
}

func TestZapObserver_SortedFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	o := NewZapObserver(zap.New(core))

	o.OnStage("stage", map[string]any{"b": 2, "a": 1})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].Context
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Key)
	assert.Equal(t, "b", fields[1].Key)
}

func TestZapObserver_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewZapObserver(nil).OnStage("stage", nil)
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(true, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(false, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "abc", TruncateForLog("  abc  ", 10))
	assert.Equal(t, "éco...", TruncateForLog("économie", 3))
	assert.Empty(t, TruncateForLog("abc", 0))
}
