package engine

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/stowbar/stowbar/internal/model"
	"github.com/stowbar/stowbar/internal/platform"
)

type fakeGateway struct {
	menuBar  []model.WindowID
	onScreen []model.WindowID
	metas    map[model.WindowID]platform.WindowMeta
	frames   map[model.WindowID]model.Rect

	menuBarCalls int
}

func (g *fakeGateway) MenuBarWindows() ([]model.WindowID, error) {
	g.menuBarCalls++
	return append([]model.WindowID(nil), g.menuBar...), nil
}

func (g *fakeGateway) OnScreenWindows() ([]model.WindowID, error) {
	return append([]model.WindowID(nil), g.onScreen...), nil
}

func (g *fakeGateway) WindowFrame(id model.WindowID) (model.Rect, bool) {
	r, ok := g.frames[id]
	return r, ok
}

func (g *fakeGateway) WindowLevel(id model.WindowID) (int, bool) { return 25, true }

func (g *fakeGateway) WindowMetadata(ids []model.WindowID) (map[model.WindowID]platform.WindowMeta, error) {
	out := make(map[model.WindowID]platform.WindowMeta)
	for _, id := range ids {
		if m, ok := g.metas[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

// setBarWindow registers a menu bar window with standard bar geometry.
func (g *fakeGateway) setBarWindow(id model.WindowID, x, w float64, pid int, owner string) {
	g.menuBar = append(g.menuBar, id)
	g.onScreen = append(g.onScreen, id)
	if g.metas == nil {
		g.metas = make(map[model.WindowID]platform.WindowMeta)
	}
	g.metas[id] = platform.WindowMeta{
		OwnerPID:  pid,
		OwnerName: owner,
		Bounds:    model.Rect{X: x, Y: 0, W: w, H: 24},
		OnScreen:  x >= 0,
	}
}

type fakeHost struct {
	created   bool
	frame     model.Rect
	frameOK   bool
	sepID     model.WindowID
	chevID    model.WindowID
	widths    []float64
	createErr error
	widthErr  error
	onWidth   func(width float64)
}

func (h *fakeHost) Create(separatorWidth float64, onChevron func()) error {
	if h.createErr != nil {
		return h.createErr
	}
	h.created = true
	h.widths = append(h.widths, separatorWidth)
	return nil
}

func (h *fakeHost) SeparatorWindowID() (model.WindowID, bool) { return h.sepID, h.sepID != 0 }
func (h *fakeHost) SeparatorFrame() (model.Rect, bool)        { return h.frame, h.frameOK }
func (h *fakeHost) ChevronWindowID() (model.WindowID, bool)   { return h.chevID, h.chevID != 0 }
func (h *fakeHost) Close()                                    { h.created = false }

func (h *fakeHost) SetSeparatorWidth(width float64) error {
	if h.widthErr != nil {
		return h.widthErr
	}
	h.widths = append(h.widths, width)
	h.frame.W = width
	if h.onWidth != nil {
		h.onWidth(width)
	}
	return nil
}

type inputEvent struct {
	kind string // "down", "drag", "up"
	x, y float64
	cmd  bool
}

type fakeInput struct {
	events  []inputEvent
	trusted bool
	failOn  string // event kind that fails, "" for none
}

func (in *fakeInput) post(kind string, x, y float64, cmd bool) error {
	if in.failOn == kind {
		return fmt.Errorf("host refused %s event", kind)
	}
	in.events = append(in.events, inputEvent{kind: kind, x: x, y: y, cmd: cmd})
	return nil
}

func (in *fakeInput) MouseDown(x, y float64, cmd bool) error { return in.post("down", x, y, cmd) }
func (in *fakeInput) MouseDrag(x, y float64, cmd bool) error { return in.post("drag", x, y, cmd) }
func (in *fakeInput) MouseUp(x, y float64, cmd bool) error   { return in.post("up", x, y, cmd) }
func (in *fakeInput) Trusted() bool                          { return in.trusted }

type fakeProcs struct {
	infos     map[int]platform.ProcessInfo
	activated []int
}

func (p *fakeProcs) Lookup(pid int) (platform.ProcessInfo, bool) {
	info, ok := p.infos[pid]
	return info, ok
}

func (p *fakeProcs) Activate(pid int) error {
	p.activated = append(p.activated, pid)
	return nil
}

func (p *fakeProcs) IconPNG(pid int) ([]byte, error) {
	return nil, fmt.Errorf("no icon for pid %d", pid)
}

type fakeDisplay struct{}

func (fakeDisplay) MenuBarHeight() float64       { return 24 }
func (fakeDisplay) MainScreenBounds() model.Rect { return model.Rect{X: 0, Y: 0, W: 1440, H: 900} }

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

type testFixture struct {
	engine  *Engine
	gateway *fakeGateway
	host    *fakeHost
	input   *fakeInput
	procs   *fakeProcs
	clock   *fakeClock
}

func newFixture() *testFixture {
	gw := &fakeGateway{}
	host := &fakeHost{sepID: 9001, chevID: 9002, frameOK: true}
	input := &fakeInput{trusted: true}
	procs := &fakeProcs{infos: make(map[int]platform.ProcessInfo)}
	clock := &fakeClock{now: time.Unix(1700000000, 0)}

	eng := New(Options{
		Provider: &platform.Provider{
			Gateway:     gw,
			StatusItems: host,
			Input:       input,
			Processes:   procs,
			Display:     fakeDisplay{},
		},
		Clock:  clock,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &testFixture{
		engine:  eng,
		gateway: gw,
		host:    host,
		input:   input,
		procs:   procs,
		clock:   clock,
	}
}
