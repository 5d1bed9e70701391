// Gravity field preview tool - interactive 2D cross-section with sliders.
//
// Usage: go run ./cmd/fieldpreview [config.yaml]
package main

import (
	"fmt"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldway/updraft/config"
	"github.com/fieldway/updraft/field"
	"github.com/fieldway/updraft/query"
	"github.com/fieldway/updraft/shape"
	"github.com/fieldway/updraft/space"
	"github.com/fieldway/updraft/telemetry"
	"github.com/fieldway/updraft/vec"
)

const (
	panelWidth = 280
	pixelsPer  = 40.0 // screen pixels per world unit
)

// SceneParams holds the tunable parameters of the preview scene.
type SceneParams struct {
	BoxWidth   float32
	BoxHeight  float32
	EdgeRadius float32
	Hollow     bool
	WellLevel  int
	Inverted   bool
}

// scene bundles the spatial index with the handles of its mutable fields.
type scene struct {
	world *space.World2
	box   *shape.Cuboid2
	well  *field.Center2
}

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	config.MustInit(path)
	cfg := config.Cfg()

	width := int32(cfg.Preview.Width)
	height := int32(cfg.Preview.Height)

	rl.InitWindow(width, height, "Gravity Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Preview.TargetFPS))

	params := SceneParams{
		BoxWidth:   3,
		BoxHeight:  2,
		EdgeRadius: cfg.Derived.EdgeRadius32,
		WellLevel:  2,
	}
	sc := buildScene(params)
	q := query.PointQuery2{
		CollisionMask: cfg.Query.CollisionMask,
		MaxResults:    cfg.Query.MaxResults,
	}

	viewW := float32(width) - panelWidth
	viewH := float32(height)
	spacing := cfg.Derived.GridSpacing32
	arrowLen := cfg.Derived.ArrowLength32

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawArrowGrid(sc, q, viewW, viewH, spacing, arrowLen)
		drawSceneOutline(params, viewW, viewH)

		if changed := drawPanel(&params, viewW); changed {
			applyParams(sc, params)
		}

		if rl.IsKeyPressed(rl.KeyS) {
			if err := dumpSamples(sc, q, cfg, viewW, viewH, spacing); err != nil {
				Logf("sample dump failed: %v", err)
			}
		}
		rl.DrawText("Press S to dump samples to CSV", int32(viewW)+10, height-30, 12, rl.LightGray)

		rl.EndDrawing()
	}
}

// buildScene assembles the preview world: a flat ground field everywhere, a
// center-field gravity well, and a shape-backed rounded box.
func buildScene(params SceneParams) *scene {
	w := space.NewWorld2()

	big := space.Volume2{Min: vec.V2(-100, -100), Max: vec.V2(100, 100)}

	ground := field.NewFlat2()
	w.Add(ground, big, 0b1)

	well := field.NewCenter2()
	well.Priority = params.WellLevel
	well.SetTransform(vec.T2(vec.Basis2Identity, vec.V2(-5, 3)))
	w.Add(well, space.Volume2{Min: vec.V2(-8, 0), Max: vec.V2(-2, 6)}, 0b1)

	box := shape.NewCuboid2()
	shaped := field.NewShaped2()
	shaped.Shape = box
	shaped.Priority = 1
	shaped.SetTransform(vec.T2(vec.Basis2Identity, vec.V2(4, -2)))
	w.Add(shaped, space.Volume2{Min: vec.V2(0, -6), Max: vec.V2(8, 2)}, 0b1)

	sc := &scene{world: w, box: box, well: well}
	applyParams(sc, params)
	return sc
}

// applyParams pushes slider state into the live fields.
func applyParams(sc *scene, params SceneParams) {
	sc.box.SetSize(vec.V2(params.BoxWidth/2, params.BoxHeight/2))
	sc.box.SetEdgeRadius(params.EdgeRadius)
	sc.box.SetHollow(params.Hollow)
	sc.well.Priority = params.WellLevel
	sc.well.Inverted = params.Inverted
}

// toWorld maps a screen position inside the view to world coordinates, with
// the origin at the view center and +Y up.
func toWorld(sx, sy, viewW, viewH float32) vec.Vec2 {
	return vec.V2((sx-viewW/2)/pixelsPer, (viewH/2-sy)/pixelsPer)
}

func toScreen(p vec.Vec2, viewW, viewH float32) rl.Vector2 {
	return rl.Vector2{X: viewW/2 + p.X*pixelsPer, Y: viewH/2 - p.Y*pixelsPer}
}

// drawArrowGrid samples the query on a screen-space grid and draws one arrow
// per covered sample.
func drawArrowGrid(sc *scene, q query.PointQuery2, viewW, viewH, spacing, arrowLen float32) {
	step := spacing * pixelsPer
	if step < 4 {
		step = 4
	}
	for sy := step / 2; sy < viewH; sy += step {
		for sx := step / 2; sx < viewW; sx += step {
			pos := toWorld(sx, sy, viewW, viewH)
			res, found := q.Direction(sc.world, pos)
			up := res.Up
			if !found || up == (vec.Vec2{}) {
				rl.DrawCircle(int32(sx), int32(sy), 1.5, rl.LightGray)
				continue
			}
			tip := rl.Vector2{X: sx + up.X*arrowLen, Y: sy - up.Y*arrowLen}
			rl.DrawLineEx(rl.Vector2{X: sx, Y: sy}, tip, 1.5, rl.DarkBlue)
			rl.DrawCircleV(tip, 2, rl.Blue)
		}
	}
}

// drawSceneOutline marks the fixed scene elements so the arrows have
// context.
func drawSceneOutline(params SceneParams, viewW, viewH float32) {
	// Gravity well center.
	wc := toScreen(vec.V2(-5, 3), viewW, viewH)
	rl.DrawCircleLines(int32(wc.X), int32(wc.Y), 8, rl.Maroon)

	// Rounded box footprint.
	half := vec.V2(params.BoxWidth/2, params.BoxHeight/2)
	min := toScreen(vec.V2(4-half.X, -2+half.Y), viewW, viewH)
	rl.DrawRectangleLines(int32(min.X), int32(min.Y),
		int32(params.BoxWidth*pixelsPer), int32(params.BoxHeight*pixelsPer), rl.DarkGreen)
}

// drawPanel renders the control panel; it returns true when any parameter
// changed this frame.
func drawPanel(params *SceneParams, panelX float32) bool {
	changed := false
	y := float32(10)

	rl.DrawText("Scene Parameters", int32(panelX)+10, int32(y), 20, rl.DarkGray)
	y += 35

	slider := func(label string, value *float32, min, max float32, format string) {
		rl.DrawText(label, int32(panelX)+10, int32(y), 14, rl.Gray)
		y += 18
		next := gui.SliderBar(
			rl.Rectangle{X: panelX + 10, Y: y, Width: panelWidth - 90, Height: 20},
			fmt.Sprintf("%.1f", min), fmt.Sprintf("%.1f", max),
			*value, min, max,
		)
		rl.DrawText(fmt.Sprintf(format, *value), int32(panelX)+panelWidth-70, int32(y)+2, 16, rl.DarkGray)
		if next != *value {
			*value = next
			changed = true
		}
		y += 35
	}

	slider("Box width", &params.BoxWidth, 0.5, 8, "%.1f")
	slider("Box height", &params.BoxHeight, 0.5, 8, "%.1f")
	slider("Edge radius", &params.EdgeRadius, 0, 2, "%.2f")

	level := float32(params.WellLevel)
	slider("Well priority level", &level, 0, 5, "%.0f")
	if int(level) != params.WellLevel {
		params.WellLevel = int(level)
		changed = true
	}

	if gui.Button(rl.Rectangle{X: panelX + 10, Y: y, Width: 120, Height: 30}, toggleText(params.Hollow, "Solid Box", "Hollow Box")) {
		params.Hollow = !params.Hollow
		changed = true
	}
	if gui.Button(rl.Rectangle{X: panelX + 140, Y: y, Width: 120, Height: 30}, toggleText(params.Inverted, "Attract", "Repel")) {
		params.Inverted = !params.Inverted
		changed = true
	}

	return changed
}

// dumpSamples writes the visible grid to CSV along with the active config.
func dumpSamples(sc *scene, q query.PointQuery2, cfg *config.Config, viewW, viewH, spacing float32) error {
	om, err := telemetry.NewOutputManager(cfg.Preview.OutputDir)
	if err != nil {
		return err
	}
	if om == nil {
		return nil
	}
	defer om.Close()

	min := toWorld(0, viewH, viewW, viewH)
	max := toWorld(viewW, 0, viewW, viewH)
	samples := telemetry.SampleGrid2(sc.world, q, min, max, spacing)
	if err := om.WriteSamples(samples); err != nil {
		return err
	}
	if err := om.WriteConfig(cfg); err != nil {
		return err
	}

	stats := telemetry.ComputeStats(samples, 0, 1, 0)
	Logf("dumped %d samples to %s (coverage %.0f%%, mean deviation %.2f rad)",
		stats.Count, om.Dir(), stats.Coverage*100, stats.DeviationMean)
	return nil
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
