package osmparser

import (
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

// WayLanes holds the lane indications of one osm way per direction of travel.
type WayLanes struct {
	Name     string
	Highway  string
	Forward  []string
	Backward []string
}

func (w WayLanes) IsEmpty() bool {
	return len(w.Forward) == 0 && len(w.Backward) == 0
}

var (
	// https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
	acceptedHighway = map[string]struct{}{
		"motorway":         {},
		"motorway_link":    {},
		"trunk":            {},
		"trunk_link":       {},
		"primary":          {},
		"primary_link":     {},
		"secondary":        {},
		"secondary_link":   {},
		"tertiary":         {},
		"tertiary_link":    {},
		"residential":      {},
		"residential_link": {},
		"service":          {},
		"road":             {},
		"unclassified":     {},
		"living_street":    {},
		"motorroad":        {},
	}
)

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find(HIGHWAY_KEY)
	if highway != "" {
		_, ok := acceptedHighway[highway]
		return ok
	}
	return way.Tags.Find(JUNCTION_KEY) != ""
}

type TurnLaneParser struct {
	numProcs int
	logger   *zap.Logger
}

// NewTurnLaneParser creates a parser decoding pbf blocks with numProcs goroutines, 0 lets osmpbf decide.
func NewTurnLaneParser(numProcs int, logger *zap.Logger) *TurnLaneParser {
	return &TurnLaneParser{numProcs: numProcs, logger: logger}
}

// Parse scans an .osm.pbf stream and returns the lanes of every accepted highway way
// that carries turn lane tags.
func (p *TurnLaneParser) Parse(ctx context.Context, r io.Reader) (map[osm.WayID]WayLanes, error) {
	scanner := osmpbf.New(ctx, r, p.numProcs)
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	wayLanes := make(map[osm.WayID]WayLanes)
	countWays := 0
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if (countWays+1)%SCAN_LOG_INTERVAL == 0 {
			p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		if !acceptOsmWay(way) {
			continue
		}
		lanes := WayLanes{
			Name:     way.Tags.Find("name"),
			Highway:  way.Tags.Find(HIGHWAY_KEY),
			Forward:  LanesFromTags(way.Tags, true),
			Backward: LanesFromTags(way.Tags, false),
		}
		if lanes.IsEmpty() {
			continue
		}
		wayLanes[way.ID] = lanes
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan osm ways: %w", err)
	}

	p.logger.Info("turn lanes parsed", zap.Int("ways", countWays), zap.Int("waysWithLanes", len(wayLanes)))
	return wayLanes, nil
}
