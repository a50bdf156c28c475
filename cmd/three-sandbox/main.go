// three-sandbox renders bouncing spheres and a spinning wireframe cube in the terminal,
// all simulated with the fixed-point kernel
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fixkernel/audio"
	"github.com/lixenwraith/fixkernel/vmath"
)

const (
	targetFPS   = 30
	framePeriod = time.Second / targetFPS
	hudRows     = 2
	focalLen    = 14.0
)

var (
	sound   bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "three-sandbox",
	Short: "terminal 3D physics sandbox",
	Args:  cobra.NoArgs,
	RunE:  runSandbox,
}

func init() {
	rootCmd.Flags().BoolVar(&sound, "sound", false, "play a bell on collisions")
	rootCmd.Flags().StringVar(&logFile, "log", "", "log file; the terminal is owned by the UI")
}

type projected struct {
	cx, cy, radius, depth float64
	index                 int
}

// project maps a world point to screen cells; x is doubled for the 1:2 cell aspect
func project(p vmath.Vec3, screenW, screenH int) (x, y, invZ float64) {
	denom := vmath.ToFloat(p.Z()) + focalLen
	if denom < 0.5 {
		denom = 0.5
	}
	invZ = focalLen / denom
	viewH := float64(screenH - hudRows)
	scale := viewH * 0.13
	return float64(screenW)/2 + vmath.ToFloat(p.X())*invZ*scale*2, viewH/2 + vmath.ToFloat(p.Y())*invZ*scale, invZ * scale
}

func projectPart(p *Part, idx, screenW, screenH int) projected {
	x, y, s := project(p.Pos, screenW, screenH)
	return projected{cx: x, cy: y, radius: vmath.ToFloat(p.Radius) * s, depth: vmath.ToFloat(p.Pos.Z()), index: idx}
}

var partColors = [3]tcell.Color{
	tcell.NewRGBColor(40, 180, 255),
	tcell.NewRGBColor(255, 60, 120),
	tcell.NewRGBColor(120, 255, 80),
}

func drawSphere(screen tcell.Screen, p *Part, proj projected, color tcell.Color, selected bool, screenW, viewH int) {
	if proj.radius < 0.4 {
		return
	}
	minX := max(0, int(proj.cx-proj.radius*2-1))
	maxX := min(screenW-1, int(proj.cx+proj.radius*2+1))
	minY := max(0, int(proj.cy-proj.radius-1))
	maxY := min(viewH-1, int(proj.cy+proj.radius+1))

	style := tcell.StyleDefault.Foreground(color)
	if p.Flash > 0 {
		style = style.Foreground(tcell.ColorWhite).Bold(true)
	}
	if p.Frozen {
		style = style.Dim(true)
	}

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - proj.cx) / (proj.radius * 2)
			ny := (float64(sy) + 0.5 - proj.cy) / proj.radius
			d := nx*nx + ny*ny
			if d > 1 {
				continue
			}
			// Shade by the sphere normal's z so the center reads brightest
			r := '░'
			switch nz := math.Sqrt(1 - d); {
			case selected && d > 0.8:
				r = '◆'
			case nz > 0.8:
				r = '█'
			case nz > 0.5:
				r = '▓'
			case nz > 0.25:
				r = '▒'
			}
			screen.SetContent(sx, sy, r, nil, style)
		}
	}
}

// drawLine plots a line with Bresenham's algorithm
func drawLine(screen tcell.Screen, x0, y0, x1, y1 int, style tcell.Style, w, h int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			screen.SetContent(x0, y0, '·', nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

func drawCube(screen tcell.Screen, s *Scene, w, h int) error {
	corners, err := s.cubeWorld()
	if err != nil {
		return err
	}
	var pts [8][2]int
	for i, c := range corners {
		x, y, _ := project(c, w, h)
		pts[i] = [2]int{int(x), int(y)}
	}
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 50))
	for _, e := range cubeEdges {
		a, b := pts[e[0]], pts[e[1]]
		drawLine(screen, a[0], a[1], b[0], b[1], style, w, h-hudRows)
	}
	return nil
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawFrame(screen tcell.Screen, s *Scene, selected int, paused bool) error {
	w, h := screen.Size()
	screen.Clear()

	if err := drawCube(screen, s, w, h); err != nil {
		return err
	}

	// Painter's algorithm: far to near
	var projs [3]projected
	for i := range s.Parts {
		projs[i] = projectPart(&s.Parts[i], i, w, h)
	}
	order := []int{0, 1, 2}
	sort.Slice(order, func(i, j int) bool { return projs[order[i]].depth > projs[order[j]].depth })
	for _, i := range order {
		drawSphere(screen, &s.Parts[i], projs[i], partColors[i], i == selected, w, h-hudRows)
	}

	dim := tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 110))
	x := 1
	for i := range s.Parts {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		frozen := ""
		if s.Parts[i].Frozen {
			frozen = " [F]"
		}
		txt := fmt.Sprintf("%sPart%d m=%s%s", marker, i+1, s.Parts[i].Mass, frozen)
		drawText(screen, x, h-2, txt, tcell.StyleDefault.Foreground(partColors[i]))
		x += len([]rune(txt)) + 3
	}
	if paused {
		drawText(screen, w-9, h-2, "[PAUSED]", tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 50)))
	}
	drawText(screen, 1, h-1, "1/2/3:sel  f:freeze  up/dn:mass  left/right:spin  space:pause  r:reset  q:quit", dim)

	screen.Show()
	return nil
}

func initSound() func() {
	if !sound {
		return nil
	}
	cfg := audio.LoadConfig()
	rate := cfg.Rate()
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		// Non-fatal, the sandbox runs silent
		slog.Warn("audio init failed", "err", err)
		return nil
	}
	return func() {
		speaker.Play(audio.NewBell(audio.NoteFreq(84), 120*time.Millisecond, cfg.MasterVolume*0.4, rate))
	}
}

func runSandbox(cmd *cobra.Command, _ []string) error {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	bell := initSound()
	if bell != nil {
		defer speaker.Close()
	}

	scene := newScene()
	selected := 0
	paused := false

	eventCh := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()
	lastTick := time.Now()

	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				p := &scene.Parts[selected]
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return nil
				case ev.Rune() >= '1' && ev.Rune() <= '3':
					selected = int(ev.Rune() - '1')
				case ev.Rune() == 'f':
					p.Frozen = !p.Frozen
					if p.Frozen {
						p.Vel = vmath.Vec3{}
					}
				case ev.Key() == tcell.KeyUp:
					p.Mass = vmath.Min(p.Mass+massStep, massMax)
				case ev.Key() == tcell.KeyDown:
					p.Mass = vmath.Max(p.Mass-massStep, massMin)
				case ev.Key() == tcell.KeyRight:
					scene.Spin[1] += spinStep
				case ev.Key() == tcell.KeyLeft:
					scene.Spin[1] -= spinStep
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'r':
					scene = newScene()
					selected, paused = 0, false
				}
			}

		case <-ticker.C:
			now := time.Now()
			dtSec := min(now.Sub(lastTick).Seconds(), 0.1)
			lastTick = now

			if !paused {
				hits, err := scene.step(vmath.FromFloat(dtSec))
				if err != nil {
					slog.Error("simulation step", "err", err)
					scene = newScene()
				}
				if bell != nil && hits > 0 {
					bell()
				}
			}
			if err := drawFrame(screen, scene, selected, paused); err != nil {
				return err
			}
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "three-sandbox: %v\n", err)
		os.Exit(1)
	}
}
