package datastructure

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/geo"
	"github.com/paulmach/orb"
)

type RouteProgressState uint8

const (
	ROUTE_INVALID RouteProgressState = iota
	ROUTE_INITIALIZED
	ROUTE_ARRIVED
	LOCATION_TRACKING
	LOCATION_STALE
)

func (s RouteProgressState) String() string {
	switch s {
	case ROUTE_INVALID:
		return "ROUTE_INVALID"
	case ROUTE_INITIALIZED:
		return "ROUTE_INITIALIZED"
	case ROUTE_ARRIVED:
		return "ROUTE_ARRIVED"
	case LOCATION_TRACKING:
		return "LOCATION_TRACKING"
	case LOCATION_STALE:
		return "LOCATION_STALE"
	default:
		return fmt.Sprintf("RouteProgressState(%d)", uint8(s))
	}
}

var (
	ErrStepIndexOutOfRange = errors.New("step index out of range")
	ErrEmptyLeg            = errors.New("route leg has no steps")
)

type RouteStepProgress struct {
	stepIndex         int
	step              *LegStep
	stepPoints        []orb.Point
	distanceRemaining float64
	distanceTraveled  float64
	fractionTraveled  float64
	durationRemaining float64
}

func NewRouteStepProgress(stepIndex int, step *LegStep, stepPoints []orb.Point, distanceRemaining float64) *RouteStepProgress {
	distanceTraveled := step.Distance - distanceRemaining
	if distanceTraveled < 0 {
		distanceTraveled = 0
	}

	fractionTraveled := 1.0
	if step.Distance > 0 {
		fractionTraveled = max(distanceTraveled/step.Distance, 0)
	}

	return &RouteStepProgress{
		stepIndex:         stepIndex,
		step:              step,
		stepPoints:        stepPoints,
		distanceRemaining: distanceRemaining,
		distanceTraveled:  distanceTraveled,
		fractionTraveled:  fractionTraveled,
		durationRemaining: (1 - fractionTraveled) * step.Duration,
	}
}

func (sp *RouteStepProgress) GetStepIndex() int {
	return sp.stepIndex
}

func (sp *RouteStepProgress) GetStep() *LegStep {
	return sp.step
}

func (sp *RouteStepProgress) GetStepPoints() []orb.Point {
	return sp.stepPoints
}

func (sp *RouteStepProgress) GetDistanceRemaining() float64 {
	return sp.distanceRemaining
}

func (sp *RouteStepProgress) GetDistanceTraveled() float64 {
	return sp.distanceTraveled
}

func (sp *RouteStepProgress) GetFractionTraveled() float64 {
	return sp.fractionTraveled
}

func (sp *RouteStepProgress) GetDurationRemaining() float64 {
	return sp.durationRemaining
}

type RouteLegProgress struct {
	legIndex            int
	leg                 *RouteLeg
	distanceTraveled    float64
	distanceRemaining   float64
	durationRemaining   float64
	fractionTraveled    float64
	previousStep        *LegStep
	upcomingStep        *LegStep
	followOnStep        *LegStep
	currentStepProgress *RouteStepProgress
	upcomingStepPoints  []orb.Point
}

func (lp *RouteLegProgress) GetLegIndex() int {
	return lp.legIndex
}

func (lp *RouteLegProgress) GetRouteLeg() *RouteLeg {
	return lp.leg
}

func (lp *RouteLegProgress) GetDistanceTraveled() float64 {
	return lp.distanceTraveled
}

func (lp *RouteLegProgress) GetDistanceRemaining() float64 {
	return lp.distanceRemaining
}

func (lp *RouteLegProgress) GetDurationRemaining() float64 {
	return lp.durationRemaining
}

func (lp *RouteLegProgress) GetFractionTraveled() float64 {
	return lp.fractionTraveled
}

// GetPreviousStep returns nil on the first step of the leg.
func (lp *RouteLegProgress) GetPreviousStep() *LegStep {
	return lp.previousStep
}

// GetUpcomingStep returns nil on the last step of the leg.
func (lp *RouteLegProgress) GetUpcomingStep() *LegStep {
	return lp.upcomingStep
}

func (lp *RouteLegProgress) GetFollowOnStep() *LegStep {
	return lp.followOnStep
}

func (lp *RouteLegProgress) GetCurrentStepProgress() *RouteStepProgress {
	return lp.currentStepProgress
}

// RouteProgress is a read-only snapshot of the position along the route.
type RouteProgress struct {
	state             RouteProgressState
	legProgress       *RouteLegProgress
	distanceRemaining float64
	durationRemaining float64
	inTunnel          bool
}

func (rp *RouteProgress) GetState() RouteProgressState {
	return rp.state
}

func (rp *RouteProgress) GetLegProgress() *RouteLegProgress {
	return rp.legProgress
}

func (rp *RouteProgress) GetDistanceRemaining() float64 {
	return rp.distanceRemaining
}

func (rp *RouteProgress) GetDurationRemaining() float64 {
	return rp.durationRemaining
}

func (rp *RouteProgress) InTunnel() bool {
	return rp.inTunnel
}

// CurrentStepPoints returns the geometry of the step being driven.
func (rp *RouteProgress) CurrentStepPoints() []orb.Point {
	if rp.legProgress == nil || rp.legProgress.currentStepProgress == nil {
		return nil
	}
	return rp.legProgress.currentStepProgress.stepPoints
}

// UpcomingStepPoints returns the geometry of the next step, nil when the current step is the last one.
func (rp *RouteProgress) UpcomingStepPoints() []orb.Point {
	if rp.legProgress == nil {
		return nil
	}
	return rp.legProgress.upcomingStepPoints
}

// ProgressUpdate carries the values reported by the route tracker for one location update.
type ProgressUpdate struct {
	StepIndex             int
	StepDistanceRemaining float64
	LegDistanceRemaining  float64
	LegDurationRemaining  float64
	State                 RouteProgressState
	InTunnel              bool
}

// RouteProgressBuilder turns tracker updates for one leg into RouteProgress snapshots.
// Step geometries are decoded once when the builder is created, steps without a distance
// get the length of their geometry.
type RouteProgressBuilder struct {
	legIndex   int
	leg        *RouteLeg
	stepPoints [][]orb.Point
}

func NewRouteProgressBuilder(legIndex int, leg *RouteLeg) (*RouteProgressBuilder, error) {
	if leg == nil || len(leg.Steps) == 0 {
		return nil, ErrEmptyLeg
	}
	// missing step distances are filled on a copy, the caller's leg is left untouched
	copied := *leg
	copied.Steps = append([]LegStep(nil), leg.Steps...)

	stepPoints := make([][]orb.Point, len(copied.Steps))
	for i := range copied.Steps {
		points, err := geo.DecodePolyline6(copied.Steps[i].Geometry)
		if err != nil {
			return nil, fmt.Errorf("decode geometry of step %d: %w", i, err)
		}
		if copied.Steps[i].Distance == 0 {
			copied.Steps[i].Distance = geo.LineLength(points)
		}
		stepPoints[i] = points
	}
	return &RouteProgressBuilder{
		legIndex:   legIndex,
		leg:        &copied,
		stepPoints: stepPoints,
	}, nil
}

// GetRouteLeg returns the builder's copy of the leg, with missing step distances filled in.
func (b *RouteProgressBuilder) GetRouteLeg() *RouteLeg {
	return b.leg
}

// GetStepPoints returns the decoded geometry of step i.
func (b *RouteProgressBuilder) GetStepPoints(i int) []orb.Point {
	if i < 0 || i >= len(b.stepPoints) {
		return nil
	}
	return b.stepPoints[i]
}

func (b *RouteProgressBuilder) Build(update ProgressUpdate) (*RouteProgress, error) {
	stepIndex := update.StepIndex
	currentStep, ok := b.leg.GetStep(stepIndex)
	if !ok {
		return nil, fmt.Errorf("%w: %d of %d", ErrStepIndexOutOfRange, stepIndex, len(b.leg.Steps))
	}

	stepProgress := NewRouteStepProgress(stepIndex, currentStep, b.stepPoints[stepIndex], update.StepDistanceRemaining)
	legProgress := &RouteLegProgress{
		legIndex:            b.legIndex,
		leg:                 b.leg,
		distanceRemaining:   update.LegDistanceRemaining,
		durationRemaining:   update.LegDurationRemaining,
		currentStepProgress: stepProgress,
	}

	legProgress.distanceTraveled = b.leg.Distance - update.LegDistanceRemaining
	if b.leg.Distance == 0 {
		legProgress.distanceTraveled = update.LegDistanceRemaining
	} else if legProgress.distanceTraveled < 0 {
		legProgress.distanceTraveled = 0
	}

	legProgress.fractionTraveled = 1.0
	if legProgress.distanceTraveled != 0 && b.leg.Distance > 0 {
		legProgress.fractionTraveled = legProgress.distanceTraveled / b.leg.Distance
	}

	if step, ok := b.leg.GetStep(stepIndex - 1); ok {
		legProgress.previousStep = step
	}
	if step, ok := b.leg.GetStep(stepIndex + 1); ok {
		legProgress.upcomingStep = step
		legProgress.upcomingStepPoints = b.stepPoints[stepIndex+1]
	}
	if step, ok := b.leg.GetStep(stepIndex + 2); ok {
		legProgress.followOnStep = step
	}

	return &RouteProgress{
		state:             update.State,
		legProgress:       legProgress,
		distanceRemaining: update.LegDistanceRemaining,
		durationRemaining: update.LegDurationRemaining,
		inTunnel:          update.InTunnel,
	}, nil
}
