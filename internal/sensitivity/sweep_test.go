package sensitivity

import (
	"context"
	"sync"
	"testing"

	"github.com/mbaillet/immosim/internal/engine"
	"github.com/mbaillet/immosim/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubClient routes each sweep to a per-variable canned reply.
type stubClient struct {
	mu      sync.Mutex
	replies map[string]*engine.SensitivityResponse
	errs    map[string]error
	seen    []engine.SensitivityRequest
}

func (s *stubClient) RunSensitivity(ctx context.Context, req engine.SensitivityRequest) (*engine.SensitivityResponse, error) {
	s.mu.Lock()
	s.seen = append(s.seen, req)
	s.mu.Unlock()

	if err := s.errs[req.Variable]; err != nil {
		return nil, err
	}
	return s.replies[req.Variable], nil
}

func points(n int) []engine.SensitivityPoint {
	pts := make([]engine.SensitivityPoint, n)
	for i := range pts {
		pts[i] = engine.SensitivityPoint{Value: float64(i) * 0.005}
	}
	return pts
}

func TestRunBothSweepsSucceed(t *testing.T) {
	stub := &stubClient{
		replies: map[string]*engine.SensitivityResponse{
			constants.VariableLoanRate:       {Success: true, Variable: constants.VariableLoanRate, Points: points(7)},
			constants.VariablePropertyGrowth: {Success: true, Variable: constants.VariablePropertyGrowth, Points: points(7)},
		},
	}
	runner := NewRunner(stub, zap.NewNop())

	base := &engine.ExpertSimulationRequest{LoanRate: 0.035, PropertyGrowthRate: 0.02}
	outcome := runner.Run(context.Background(), base)

	require.NotNil(t, outcome.LoanRate)
	require.NotNil(t, outcome.PropertyGrowth)
	assert.False(t, outcome.Disabled)

	// Both sweeps share the same base and the documented ranges.
	require.Len(t, stub.seen, 2)
	for _, req := range stub.seen {
		assert.Equal(t, *base, req.BaseParams)
		assert.Equal(t, constants.SensitivitySteps, req.Steps)
		switch req.Variable {
		case constants.VariableLoanRate:
			assert.InDelta(t, -0.015, req.RangeMin, 1e-12)
			assert.InDelta(t, 0.015, req.RangeMax, 1e-12)
		case constants.VariablePropertyGrowth:
			assert.InDelta(t, -0.02, req.RangeMin, 1e-12)
			assert.InDelta(t, 0.02, req.RangeMax, 1e-12)
		default:
			t.Fatalf("unexpected sweep variable %q", req.Variable)
		}
	}
}

func TestRunOneSweepFailureDoesNotMaskTheOther(t *testing.T) {
	stub := &stubClient{
		replies: map[string]*engine.SensitivityResponse{
			constants.VariablePropertyGrowth: {Success: true, Points: points(7)},
		},
		errs: map[string]error{
			constants.VariableLoanRate: &engine.TransportError{Op: "engine.RunSensitivity", Status: 502},
		},
	}
	runner := NewRunner(stub, zap.NewNop())

	outcome := runner.Run(context.Background(), &engine.ExpertSimulationRequest{})

	assert.Nil(t, outcome.LoanRate, "failed sweep leaves its chart absent")
	require.NotNil(t, outcome.PropertyGrowth, "surviving sweep still renders")
	assert.Len(t, outcome.PropertyGrowth.Points, 7)
}

func TestRunWithoutBaseIsDisabledNoop(t *testing.T) {
	stub := &stubClient{}
	runner := NewRunner(stub, zap.NewNop())

	outcome := runner.Run(context.Background(), nil)

	assert.True(t, outcome.Disabled)
	assert.Nil(t, outcome.LoanRate)
	assert.Nil(t, outcome.PropertyGrowth)
	assert.Empty(t, stub.seen, "disabled run must not call the engine")
}

func TestRenderable(t *testing.T) {
	assert.False(t, Renderable(nil))
	assert.False(t, Renderable(&engine.SensitivityResponse{Success: false, Points: points(3)}))
	assert.False(t, Renderable(&engine.SensitivityResponse{Success: true}))
	assert.True(t, Renderable(&engine.SensitivityResponse{Success: true, Points: points(1)}))
}

func TestRunDropsSuccessfulButEmptySweep(t *testing.T) {
	stub := &stubClient{
		replies: map[string]*engine.SensitivityResponse{
			constants.VariableLoanRate:       {Success: true},
			constants.VariablePropertyGrowth: {Success: true, Points: points(7)},
		},
	}
	runner := NewRunner(stub, zap.NewNop())

	outcome := runner.Run(context.Background(), &engine.ExpertSimulationRequest{})

	assert.Nil(t, outcome.LoanRate, "empty point sequence must not render")
	assert.NotNil(t, outcome.PropertyGrowth)
}
