package analyzer

import (
	"time"

	"github.com/jonathan/cv-matcher/internal/scoring"
)

// Stage names reported to the Observer, in emission order
const (
	StageKeywords       = "keywords"
	StageExperience     = "experience"
	StageEducation      = "education"
	StageCertifications = "certifications"
	StageCoherence      = "coherence"
	StageSector         = "sector"
	StageAggregate      = "aggregate"
)

// Observer receives a trace of every scoring stage. Implementations must not
// retain or mutate fields after returning.
type Observer interface {
	OnStage(stage string, fields map[string]any)
}

// ObserverFunc adapts a plain function to the Observer interface
type ObserverFunc func(stage string, fields map[string]any)

// OnStage calls f(stage, fields)
func (f ObserverFunc) OnStage(stage string, fields map[string]any) {
	f(stage, fields)
}

type noopObserver struct{}

func (noopObserver) OnStage(string, map[string]any) {}

// Option configures an Engine
type Option func(*Engine)

// WithCalibration replaces the default calibration constants
func WithCalibration(cal scoring.Calibration) Option {
	return func(e *Engine) {
		e.cal = cal
	}
}

// WithObserver injects a diagnostic observer. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithClock sets the time source used to date experience entries
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}
