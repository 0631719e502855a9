package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/arrow"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/config"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/datastructure"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/icon"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/logger"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/osmparser"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/routeio"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/style"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/turnlane"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	configFile := pflag.String("config", "", "path to a json/yaml config file")
	pflag.String(config.INPUT_ROUTE_KEY, "", "route leg document (.json or .json.bz2)")
	pflag.String(config.INPUT_OSM_KEY, "", "optional .osm.pbf file to read turn:lanes from")
	pflag.String(config.OUTPUT_DIR_KEY, "", "directory for glyphs and style snapshots")
	pflag.Parse()

	v := config.NewViper()
	pflag.VisitAll(func(f *pflag.Flag) {
		if f.Name != "config" && f.Changed {
			v.Set(f.Name, f.Value.String())
		}
	})

	cfg, err := config.Load(v, *configFile)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(v)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("guidance demo failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	atlas, err := turnlane.BuildAtlas(cfg.LaneGlyphSize, cfg.LaneColor, cfg.AtlasWorkers)
	if err != nil {
		return err
	}
	glyphPaths, err := routeio.WriteGlyphs(filepath.Join(cfg.OutputDir, "glyphs"), atlas)
	if err != nil {
		return err
	}
	logger.Info("lane glyph atlas written", zap.Int("glyphs", len(glyphPaths)))

	if cfg.OsmPath != "" {
		if err := reportOsmTurnLanes(cfg.OsmPath, logger); err != nil {
			return err
		}
	}

	leg, err := routeio.ReadRoute(cfg.RoutePath)
	if err != nil {
		return err
	}
	return replayRoute(cfg, leg, logger)
}

// replayRoute feeds one progress update per step into the arrow renderer, as if the
// driver had just started each step.
func replayRoute(cfg *config.Config, leg *datastructure.RouteLeg, logger *zap.Logger) error {
	builder, err := datastructure.NewRouteProgressBuilder(0, leg)
	if err != nil {
		return err
	}

	st := style.NewMemoryStyle()
	icons := icon.NewRasterProvider(cfg.ArrowIconSize, cfg.ArrowColor, cfg.ArrowBorderColor, logger)
	maneuverArrow, err := arrow.NewManeuverArrow(st, icons, arrow.Options{
		ArrowColor:       cfg.ArrowColor,
		ArrowBorderColor: cfg.ArrowBorderColor,
		AnchorLayerID:    cfg.AnchorLayer,
	}, logger)
	if err != nil {
		return err
	}

	snapshotDir := filepath.Join(cfg.OutputDir, "style")
	if err := os.MkdirAll(snapshotDir, 0755); err != nil {
		return err
	}

	filledLeg := builder.GetRouteLeg()
	legRemaining := filledLeg.Distance
	for i := 0; i < filledLeg.NumberOfSteps(); i++ {
		step, _ := filledLeg.GetStep(i)
		state := datastructure.LOCATION_TRACKING
		if i == filledLeg.NumberOfSteps()-1 {
			state = datastructure.ROUTE_ARRIVED
		}
		progress, err := builder.Build(datastructure.ProgressUpdate{
			StepIndex:             i,
			StepDistanceRemaining: step.Distance,
			LegDistanceRemaining:  max(legRemaining, 0),
			LegDurationRemaining:  0,
			State:                 state,
		})
		if err != nil {
			return err
		}
		legRemaining -= step.Distance

		if err := maneuverArrow.AddUpcomingManeuverArrow(progress); err != nil {
			return fmt.Errorf("draw arrow for step %d: %w", i, err)
		}

		upcoming := progress.GetLegProgress().GetUpcomingStep()
		lanes := turnlane.BuildStepLaneViews(step, upcoming)
		selections := make([]string, 0, len(lanes))
		for _, lane := range lanes {
			selections = append(selections, fmt.Sprintf("%s=%s", lane.Indications, lane.Selection))
		}
		logger.Info("step",
			zap.Int("index", i),
			zap.String("name", step.Name),
			zap.String("maneuver", step.Maneuver.Type+" "+step.Maneuver.Modifier),
			zap.Stringer("arrow", maneuverArrow.GetState()),
			zap.Stringer("state", progress.GetState()),
			zap.Bool("inTunnel", progress.InTunnel()),
			zap.Strings("lanes", selections),
		)

		snapshot := filepath.Join(snapshotDir, fmt.Sprintf("step_%03d.json", i))
		if err := routeio.WriteStyleSnapshot(snapshot, st); err != nil {
			return err
		}
	}

	return maneuverArrow.Remove()
}

func reportOsmTurnLanes(path string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	wayLanes, err := osmparser.NewTurnLaneParser(0, logger).Parse(context.Background(), f)
	if err != nil {
		return err
	}

	selectable := 0
	for _, lanes := range wayLanes {
		for _, indication := range lanes.Forward {
			if !turnlane.SelectGlyph(indication, "").IsNone() {
				selectable++
			}
		}
	}
	logger.Info("osm turn lanes", zap.Int("ways", len(wayLanes)), zap.Int("lanesWithGlyph", selectable))
	return nil
}
