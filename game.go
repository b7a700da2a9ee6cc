package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/molecule-life-go/sim"
	"github.com/olivierh59500/molecule-life-go/view"
)

const (
	LinkWidth   = 1.0
	MaxPlayback = 20
	TrailLength = 10
)

// Visualisation modes, cycled with V
const (
	VisParticles = iota
	VisTrails
	visModes
)

// Game adapts the engine to Ebitengine: it runs the ticks, follows window
// resizes and draws between ticks
type Game struct {
	engine   *sim.Engine
	cfg      sim.Config
	cfgPath  string
	rng      *rand.Rand
	playback int
	paused   bool
	showHUD  bool
	showGrid bool
	visMode  int

	camera         view.Camera
	trails         *view.Trails
	prevMX, prevMY int

	// Outside size reported by Layout, applied at the next Update
	pendingW, pendingH int

	palette    []color.RGBA
	background color.RGBA
	linkColor  color.RGBA
}

// NewGame builds the engine for a width x height viewport
func NewGame(cfg sim.Config, cfgPath string, width, height int, rng *rand.Rand) (*Game, error) {
	g := &Game{
		cfgPath: cfgPath,
		rng:     rng,
		showHUD: true,
		camera:  view.NewCamera(),
	}
	if err := g.reset(cfg, float64(width), float64(height)); err != nil {
		return nil, err
	}
	return g, nil
}

// reset replaces the engine, keeping the viewport
func (g *Game) reset(cfg sim.Config, width, height float64) error {
	engine, err := sim.New(cfg, width, height, g.rng)
	if err != nil {
		return err
	}
	g.engine = engine
	g.cfg = engine.Config()
	g.playback = cfg.PlaybackSpeed
	g.trails = view.NewTrails(len(engine.Particles()), TrailLength)
	g.palette = paletteColors(cfg)
	g.background = rgba(cfg.Background)
	g.linkColor = rgba(cfg.LinkColor)
	return nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.handleInput()

	if g.pendingW > 0 && g.pendingH > 0 {
		if err := g.engine.Resize(float64(g.pendingW), float64(g.pendingH)); err != nil {
			return err
		}
	}

	if g.paused {
		return nil
	}
	for i := 0; i < g.playback; i++ {
		g.engine.Tick()
	}

	if g.visMode == VisTrails {
		particles := g.engine.Particles()
		g.trails.Record(func(i int) (float64, float64) {
			return particles[i].X, particles[i].Y
		})
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	if g.showGrid {
		g.drawGrid(screen)
	}
	if g.visMode == VisTrails {
		g.drawTrails(screen)
	}

	particles := g.engine.Particles()
	for _, l := range g.engine.Links() {
		ax, ay := g.camera.ToScreen(particles[l.A].X, particles[l.A].Y)
		bx, by := g.camera.ToScreen(particles[l.B].X, particles[l.B].Y)
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), LinkWidth, g.linkColor, true)
	}

	r := float32(g.cfg.NodeRadius * g.camera.Zoom)
	for i := range particles {
		p := &particles[i]
		sx, sy := g.camera.ToScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, g.typeColor(p.Type), true)
	}

	if g.showHUD {
		ebitenutil.DebugPrint(screen, g.hud())
	}
}

// drawTrails strokes each particle's recent path, fading toward the tail
func (g *Game) drawTrails(screen *ebiten.Image) {
	particles := g.engine.Particles()
	for i := 0; i < g.trails.Particles() && i < len(particles); i++ {
		col := g.typeColor(particles[i].Type)
		col.A = 120
		var prev view.Point
		first := true
		g.trails.Each(i, func(p view.Point) {
			if !first {
				x0, y0 := g.camera.ToScreen(prev.X, prev.Y)
				x1, y1 := g.camera.ToScreen(p.X, p.Y)
				vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, col, true)
			}
			prev, first = p, false
		})
	}
}

// drawGrid shades cells by occupancy and outlines the cell under the cursor
func (g *Game) drawGrid(screen *ebiten.Image) {
	cols, rows := g.engine.GridSize()
	size := g.cfg.MaxDist
	side := float32(size * g.camera.Zoom)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			n := len(g.engine.CellMembers(i, j))
			if n == 0 {
				continue
			}
			x, y := g.camera.ToScreen(float64(i)*size, float64(j)*size)
			shade := uint8(min(n*4, 120))
			vector.DrawFilledRect(screen, float32(x), float32(y), side, side, color.RGBA{shade, shade, shade, shade}, false)
		}
	}

	i, j := g.cursorCell()
	x, y := g.camera.ToScreen(float64(i)*size, float64(j)*size)
	vector.StrokeRect(screen, float32(x), float32(y), side, side, 1, g.linkColor, false)
}

// cursorCell returns the grid cell under the mouse
func (g *Game) cursorCell() (int, int) {
	mx, my := ebiten.CursorPosition()
	wx, wy := g.camera.ToWorld(float64(mx), float64(my))
	return g.engine.CellAt(wx, wy)
}

// Layout follows the window size so the simulation plane matches it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.visMode = (g.visMode + 1) % visModes
		g.trails.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.playback = min(g.playback+1, MaxPlayback)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.playback = max(g.playback-1, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		g.camera.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(g.cfg, g.engine.Width(), g.engine.Height()); err != nil {
			log.Printf("reseed: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := sim.SaveConfig(g.cfgPath, g.cfg); err != nil {
			log.Printf("save: %v", err)
		} else {
			log.Printf("saved config to %s", g.cfgPath)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.loadConfig()
	}

	// Zoom around the cursor
	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	g.camera.ZoomAt(float64(mx), float64(my), wheelY)

	// Pan (drag)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.camera.Pan(float64(mx-g.prevMX), float64(my-g.prevMY))
	}
	g.prevMX, g.prevMY = mx, my
}

// loadConfig swaps in the config file and reseeds; a bad file keeps the
// running simulation
func (g *Game) loadConfig() {
	cfg, err := sim.LoadConfig(g.cfgPath)
	if err != nil {
		log.Printf("load: %v", err)
		return
	}
	if err := g.reset(cfg, g.engine.Width(), g.engine.Height()); err != nil {
		log.Printf("load: %v", err)
		return
	}
	log.Printf("loaded config from %s", g.cfgPath)
}

func (g *Game) hud() string {
	st := g.engine.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  FPS %.0f  x%d  zoom %.1f", ebiten.ActualTPS(), ebiten.ActualFPS(), g.playback, g.camera.Zoom)
	if g.paused {
		b.WriteString("  PAUSED")
	}
	fmt.Fprintf(&b, "\nparticles %d  links %d  tick %d", st.Particles, st.Links, st.Ticks)
	fmt.Fprintf(&b, "\nlast tick: %d rebucketed, %d bonds broken", st.Moved, st.Broken)
	for i, sp := range st.Species {
		fmt.Fprintf(&b, "\nspecies %d: %d nodes, %d bonds, %d full", i, sp.Count, sp.Bonds, sp.Saturated)
	}
	if g.showGrid {
		i, j := g.cursorCell()
		fmt.Fprintf(&b, "\ncell (%d,%d): %d particles", i, j, len(g.engine.CellMembers(i, j)))
	}
	b.WriteString("\n[space] pause [r] reseed [+/-] speed [s/l] save/load")
	b.WriteString("\n[v] trails [g] grid [wheel/drag/0] camera [h] hud")
	return b.String()
}

// typeColor returns the palette color for a species
func (g *Game) typeColor(t int) color.RGBA {
	if t < len(g.palette) {
		return g.palette[t]
	}
	return color.RGBA{255, 255, 255, 255}
}

func paletteColors(cfg sim.Config) []color.RGBA {
	out := make([]color.RGBA, len(cfg.Palette))
	for i, c := range cfg.Palette {
		out[i] = rgba(c)
	}
	return out
}

func rgba(c sim.RGB) color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}
