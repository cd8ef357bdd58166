// Package view renders the simulation in a terminal using gocui panes:
// header, configuration, status, the grid itself and a key-binding help bar.
package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"github.com/singer-songwriter/game-of-life/pkg/life"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console drives the engine on a ticker and paints it into the terminal.
type Console struct {
	engine   *life.Engine
	g        *gocui.Gui
	keys     []keyBinding
	interval time.Duration
	maxGen   int
	seed     int64

	running atomic.Bool
	done    chan struct{}

	// cells shade by vitality so the graduated rule reads in the terminal
	fillers [4]string
}

// NewConsole builds the terminal view. Start blocks until the user quits.
func NewConsole(engine *life.Engine, interval time.Duration, maxGen int, seed int64) (*Console, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("view: open terminal: %w", err)
	}
	g.Mouse = true

	c := &Console{
		engine:   engine,
		g:        g,
		interval: interval,
		maxGen:   maxGen,
		seed:     seed,
		done:     make(chan struct{}),
		fillers: [4]string{
			"░",
			aurora.Green("▒").String(),
			aurora.Green("▓").String(),
			aurora.Green("█").BgBrightGreen().String(),
		},
	}

	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'n', "N", "Next step", c.cmdStep, ""},
		{'r', "R", "Run", c.cmdRun, ""},
		{'s', "S", "Stop", c.cmdStop, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'w', "W", "Reseed", c.cmdReseed, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", c.cmdMouseClick, "grid"},
	}
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("view: bind key: %w", err)
		}
	}

	go c.runLoop()
	return c, nil
}

// Start runs the terminal main loop until quit.
func (c *Console) Start() {
	defer c.g.Close()
	if err := c.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	close(c.done)
}

// runLoop advances the engine while running is set. Steps are serialized
// with rendering through gocui's Update queue.
func (c *Console) runLoop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			if !c.running.Load() {
				continue
			}
			c.g.Update(func(*gocui.Gui) error {
				if c.maxGen > 0 && c.engine.Generation() >= c.maxGen {
					c.running.Store(false)
					return nil
				}
				c.engine.Step()
				c.refresh()
				return nil
			})
		}
	}
}

func (c *Console) refresh() {
	c.renderGrid()
	c.renderStatus()
}

func (c *Console) renderGrid() {
	v, err := c.g.View("grid")
	if err != nil {
		return
	}
	v.Clear()

	size := c.engine.Size()
	maxW, maxH := v.Size()
	crop := size.W > maxW || size.H > maxH

	cells := c.engine.Vitality()
	var b bytes.Buffer
	for y := 0; y < size.H; y++ {
		if y >= maxH {
			break
		}
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The grid is larger than the viewing area").String())
			break
		}
		for x := 0; x < size.W; x++ {
			if x >= maxW {
				break
			}
			b.WriteString(c.filler(cells[y*size.W+x]))
		}
	}
	fmt.Fprint(v, b.String())
}

func (c *Console) filler(v float64) string {
	switch {
	case v <= 0.05:
		return c.fillers[0]
	case v < 0.4:
		return c.fillers[1]
	case v < 0.75:
		return c.fillers[2]
	default:
		return c.fillers[3]
	}
}

func (c *Console) renderStatus() {
	if v, err := c.g.View("status"); err == nil {
		v.Clear()
		m := c.engine.Metrics()
		mode := aurora.Blue("waiting").String()
		if c.running.Load() {
			mode = aurora.Cyan("running").String()
		} else if c.maxGen > 0 && m.Generation >= c.maxGen {
			mode = aurora.Red("finished").String()
		}
		fmt.Fprintln(v, c.prop("Generation", "%d", m.Generation))
		fmt.Fprintln(v, c.prop("Live cells", "%d", m.Population))
		fmt.Fprintln(v, c.prop("Vitality", "%.1f", m.Vitality))
		fmt.Fprintln(v, c.prop("Births", "%d / deaths %d", m.Births, m.Deaths))
		fmt.Fprintln(v, c.prop("Mode", "%s", mode))
	}
}

func (c *Console) renderConfiguration() {
	if v, err := c.g.View("configuration"); err == nil {
		v.Clear()
		size := c.engine.Size()
		fmt.Fprintln(v, c.prop("Dimension", "%d x %d", size.W, size.H))
		fmt.Fprintln(v, c.prop("Rule", "%s", c.engine.Rule()))
		fmt.Fprintln(v, c.prop("Boundary", "%s", c.engine.Boundary()))
		fmt.Fprintln(v, c.prop("Interval", "%v", c.interval))
		if c.maxGen > 0 {
			fmt.Fprintln(v, c.prop("Generations", "%d", c.maxGen))
		}
	}
}

func (c *Console) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+format, values...)
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	const leftColumnWidth = 28
	const minWindowHeight = 16

	if maxY < minWindowHeight {
		if err := c.headerLayout(g, maxY, "Terminal height too small"); err != nil && err != gocui.ErrUnknownView {
			return err
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("grid")
		return nil
	}
	if err := c.headerLayout(g, 3, "Game of Life"); err != nil && err != gocui.ErrUnknownView {
		return err
	}

	split := 3 + (maxY-8)/2
	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, split); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Configuration"
		c.renderConfiguration()
	}
	if v, err := g.SetView("status", 0, split+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		c.renderStatus()
	}
	if v, err := g.SetView("grid", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Grid"
		c.renderGrid()
	} else {
		c.renderGrid()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b strings.Builder
		b.WriteString("KEYBINDINGS: ")
		for i, k := range c.keys {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		fmt.Fprintln(v, b.String())
	}
	return nil
}

func (c *Console) headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView("header", -1, -1, maxX+1, height)
	if err == gocui.ErrUnknownView && v != nil {
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	} else if err != nil {
		return err
	}
	if v != nil {
		v.Clear()
		pad := (maxX - len(text)) / 2
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	}
	return nil
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdStep(_ *gocui.View) error {
	if c.maxGen == 0 || c.engine.Generation() < c.maxGen {
		c.engine.Step()
	}
	c.refresh()
	return nil
}

func (c *Console) cmdRun(_ *gocui.View) error {
	c.running.Store(true)
	c.renderStatus()
	return nil
}

func (c *Console) cmdStop(_ *gocui.View) error {
	c.running.Store(false)
	c.renderStatus()
	return nil
}

func (c *Console) cmdClear(_ *gocui.View) error {
	c.running.Store(false)
	c.engine.Clear()
	c.refresh()
	return nil
}

func (c *Console) cmdReseed(_ *gocui.View) error {
	c.running.Store(false)
	c.seed = time.Now().UnixNano()
	c.engine.Reset(c.seed)
	c.refresh()
	return nil
}

func (c *Console) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	c.engine.Toggle(cx, cy)
	c.refresh()
	return nil
}
