// Package fixtures fabricates plausible CV inputs for demos and tests.
//
// Nothing here is used by the scoring path: randomness is confined to the
// injected *rand.Rand so that seeded runs are reproducible.
package fixtures

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jonathan/cv-matcher/internal/analyzer"
	"github.com/jonathan/cv-matcher/internal/catalog"
	"github.com/jonathan/cv-matcher/internal/types"
)

// Probability that a keyword of each group is written into a fabricated CV
const (
	RequiredInclusion  = 0.8
	PreferredInclusion = 0.6
	TechnicalInclusion = 0.5
	SoftInclusion      = 0.4

	maxYears = 8
)

// Generator builds random CVs for a position.
// A Generator is not safe for concurrent use because *rand.Rand is not.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a generator with a PCG source seeded from seed
func NewSeeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)))
}

// CV fabricates a CV for the position: a lowercase text made of a random subset
// of its keywords, 1 to 8 years of experience, one of its accepted education
// labels and its first certification when it lists any.
func (g *Generator) CV(position types.JobPosition) types.CVInput {
	var words []string
	words = g.pick(words, position.Keywords.Required, RequiredInclusion)
	words = g.pick(words, position.Keywords.Preferred, PreferredInclusion)
	words = g.pick(words, position.Keywords.Technical, TechnicalInclusion)
	words = g.pick(words, position.Keywords.Soft, SoftInclusion)

	cv := types.CVInput{
		Text:       strings.ToLower(strings.Join(words, " ")),
		Experience: fmt.Sprintf("%d ans", g.rng.IntN(maxYears)+1),
	}
	if len(position.Education) > 0 {
		cv.Education = position.Education[g.rng.IntN(len(position.Education))]
	}
	if len(position.Certifications) > 0 {
		cv.Certifications = []string{position.Certifications[0]}
	}
	return cv
}

func (g *Generator) pick(dst, keywords []string, p float64) []string {
	for _, k := range keywords {
		if g.rng.Float64() < p {
			dst = append(dst, k)
		}
	}
	return dst
}

// SimulatedResult is an analysis of a fabricated CV, labelled with the file it stands for
type SimulatedResult struct {
	types.AnalysisResult
	FileName string `json:"file_name"`
}

// Simulator runs the engine on fabricated CVs
type Simulator struct {
	engine *analyzer.Engine
	gen    *Generator
}

// NewSimulator creates a simulator scoring with engine and fabricating with gen
func NewSimulator(engine *analyzer.Engine, gen *Generator) *Simulator {
	return &Simulator{engine: engine, gen: gen}
}

// SimulateAnalysis fabricates a CV for the position and scores it.
// An unknown position id returns a *catalog.NotFoundError.
func (s *Simulator) SimulateAnalysis(fileName, positionID string) (SimulatedResult, error) {
	position, err := catalog.Get(positionID)
	if err != nil {
		return SimulatedResult{}, err
	}
	res := s.engine.Analyze(s.gen.CV(*position), *position)
	return SimulatedResult{AnalysisResult: res, FileName: fileName}, nil
}
