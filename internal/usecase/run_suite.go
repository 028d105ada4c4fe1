package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/ports"
	ucassert "github.com/advancedcpp/drillbox/internal/usecase/assert"
	ucextract "github.com/advancedcpp/drillbox/internal/usecase/extract"
)

// RunSuite executes a yaml-defined suite of drill steps.
type RunSuite struct {
	suites  ports.SuiteLoader
	catalog ports.DrillCatalog
	store   ports.ArtifactStore // optional; nil disables persistence
}

func NewRunSuite(sl ports.SuiteLoader, cat ports.DrillCatalog, store ports.ArtifactStore) *RunSuite {
	return &RunSuite{
		suites:  sl,
		catalog: cat,
		store:   store,
	}
}

// Execute runs every step of the suite at suitePath in order. Cancellation
// is checked between steps: a canceled ctx stops the suite and surfaces the
// context error. The returned id is empty unless an artifact was saved.
func (uc *RunSuite) Execute(ctx context.Context, suitePath string) (domain.SuiteResult, string, error) {
	res := domain.SuiteResult{
		SuitePath: suitePath,
		StartedAt: time.Now(),
	}

	if err := ctx.Err(); err != nil {
		res.EndedAt = time.Now()
		return res, "", err
	}

	suite, err := uc.suites.LoadSuite(suitePath)
	if err != nil {
		res.EndedAt = time.Now()
		return res, "", err
	}
	res.SuiteName = suite.Name
	res.Results = make([]domain.StepResult, 0, len(suite.Steps))

	// suite vars < step params < extracted runtime vars (updated per step)
	suiteVars := domain.MergeParams(nil, suite.Vars)
	runtimeVars := domain.Params{}

	for _, step := range suite.Steps {
		if err := ctx.Err(); err != nil {
			res.EndedAt = time.Now()
			return res, "", err
		}

		sr := domain.StepResult{
			Name:       step.Name,
			Drill:      step.Drill,
			Assertions: []domain.AssertionResult{},
			Extracts:   []domain.ExtractResult{},
			Extracted:  domain.Params{},
		}

		d, ok := uc.catalog.Lookup(step.Drill)
		if !ok {
			sr.Report = domain.Report{
				DrillID: step.Drill,
				Data:    map[string]any{},
				Error: &domain.RunError{
					Kind:    domain.RunErrorParam,
					Message: fmt.Sprintf("unknown drill %q", step.Drill),
				},
			}
			res.Results = append(res.Results, sr)
			continue
		}

		params := domain.MergeParams(domain.MergeParams(suiteVars, step.Params), runtimeVars)
		sr.Report = ExecuteDrill(ctx, d, params, nil)

		// Assertions are always evaluated, even for failed runs.
		sr.Assertions = ucassert.Evaluate(step.Assert, sr.Report)

		extracted, extractResults := ucextract.Apply(sr.Report.Data, step.Extract)
		sr.Extracts = extractResults
		sr.Extracted = extracted

		// Extracted vars feed subsequent steps, even when partial.
		for k, v := range extracted {
			runtimeVars[k] = v
		}

		res.Results = append(res.Results, sr)
	}

	res.EndedAt = time.Now()

	var id string
	if uc.store != nil {
		id, err = uc.store.SaveRun(domain.SuiteArtifact{
			SuiteName:  res.SuiteName,
			SuitePath:  res.SuitePath,
			StartedAt:  res.StartedAt,
			FinishedAt: res.EndedAt,
			Results:    res.Results,
		})
		if err != nil {
			return res, "", err
		}
	}

	return res, id, nil
}
