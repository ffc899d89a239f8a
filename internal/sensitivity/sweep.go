// Package sensitivity orchestrates the dual sensitivity sweeps: loan rate
// and property growth rate, run concurrently against the engine and merged
// into two independent chart datasets. The two sweeps never couple: a
// failure in one leaves the other's result intact.
package sensitivity

import (
	"context"
	"sync"

	"github.com/mbaillet/immosim/internal/engine"
	"github.com/mbaillet/immosim/pkg/constants"
	"go.uber.org/zap"
)

// sweeper is the slice of the engine client the runner needs.
type sweeper interface {
	RunSensitivity(ctx context.Context, req engine.SensitivityRequest) (*engine.SensitivityResponse, error)
}

// Outcome holds one chart dataset per sweep. A nil dataset means that chart
// is absent (the sweep failed, returned no points, or never ran); the other
// dataset is unaffected.
type Outcome struct {
	LoanRate       *engine.SensitivityResponse `json:"loan_rate,omitempty"`
	PropertyGrowth *engine.SensitivityResponse `json:"property_growth,omitempty"`
	Disabled       bool                        `json:"disabled,omitempty"`
}

// Runner issues the two sweeps.
type Runner struct {
	client sweeper
	logger *zap.Logger
}

// NewRunner creates a sweep runner.
func NewRunner(client sweeper, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{client: client, logger: logger}
}

// Run executes both sweeps concurrently around the given expert base
// parameters. A nil base means no expert submission has happened yet; the
// operation is then disabled and returns an empty outcome, not an error.
func (r *Runner) Run(ctx context.Context, base *engine.ExpertSimulationRequest) Outcome {
	if base == nil {
		return Outcome{Disabled: true}
	}

	var wg sync.WaitGroup
	var loanRate, propertyGrowth *engine.SensitivityResponse

	wg.Add(2)
	go func() {
		defer wg.Done()
		loanRate = r.sweep(ctx, *base, constants.VariableLoanRate, constants.LoanRateSweepDelta)
	}()
	go func() {
		defer wg.Done()
		propertyGrowth = r.sweep(ctx, *base, constants.VariablePropertyGrowth, constants.GrowthSweepDelta)
	}()
	wg.Wait()

	return Outcome{LoanRate: loanRate, PropertyGrowth: propertyGrowth}
}

func (r *Runner) sweep(ctx context.Context, base engine.ExpertSimulationRequest, variable string, delta float64) *engine.SensitivityResponse {
	resp, err := r.client.RunSensitivity(ctx, engine.SensitivityRequest{
		BaseParams: base,
		Variable:   variable,
		RangeMin:   -delta,
		RangeMax:   delta,
		Steps:      constants.SensitivitySteps,
	})
	if err != nil {
		r.logger.Warn("sensitivity sweep failed",
			zap.String("op", "sensitivity.sweep"),
			zap.String("variable", variable),
			zap.Error(err),
		)
		return nil
	}
	if !Renderable(resp) {
		r.logger.Debug("sensitivity sweep returned nothing to chart",
			zap.String("op", "sensitivity.sweep"),
			zap.String("variable", variable),
		)
		return nil
	}
	return resp
}

// Renderable reports whether a sweep result can populate a chart: it must
// have succeeded and carry at least one point.
func Renderable(resp *engine.SensitivityResponse) bool {
	return resp != nil && resp.Success && len(resp.Points) > 0
}
