package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/landline-sh/landline/audio"
	"github.com/landline-sh/landline/config"
	"github.com/landline-sh/landline/content"
	"github.com/landline-sh/landline/motion"
	"github.com/landline-sh/landline/page"
	"github.com/landline-sh/landline/render"
	"github.com/landline-sh/landline/term"
	"github.com/landline-sh/landline/tui"
)

// Wake tags identify the synthetic events posted back to the main loop
// by timers and background work. All page state is owned by the loop
// goroutine; async completions only ever post one of these.
const (
	wakeContent = "content"
	wakeHold    = "hold"
	wakeSubmit  = "submit"
	wakeResize  = "resize"
)

const (
	keyScrollStep  = 2
	wheelStep      = 3
	scrollThrottle = 100 * time.Millisecond
	resizeDebounce = 150 * time.Millisecond
	submitDelay    = 900 * time.Millisecond
	submitFailRate = 0.1
	toastSeconds   = 4
	eventBuffer    = 64
)

type loadResult struct {
	doc *content.Document
	err error
}

var errEmptyDocument = errors.New("app: empty document")

// Sound is the slice of audio.Player the controller drives. Cue
// playback is fire-and-forget; only Init can report failure.
type Sound interface {
	Init() error
	Play(audio.Cue)
	Close()
}

// Options wires a Controller's collaborators. Nil fields get
// production defaults, so callers only override what they need;
// tests swap in the mock screen, clock and scheduler.
type Options struct {
	Config    *config.Config
	Screen    term.Screen
	Clock     page.Clock
	Scheduler page.Scheduler
	Log       *slog.Logger
	Rand      *rand.Rand
	Sound     Sound

	// Fetch retrieves the page document. Defaults to a content.Loader
	// reading Config.Content.
	Fetch func(ctx context.Context) (*content.Document, error)
}

// Controller owns the frame loop and every piece of page state. It is
// not safe for concurrent use: all methods run on the loop goroutine.
type Controller struct {
	cfg    *config.Config
	screen term.Screen
	clock  page.Clock
	sched  page.Scheduler
	log    *slog.Logger
	rng    *rand.Rand
	sound  Sound
	fetch  func(ctx context.Context) (*content.Document, error)

	renderer *render.Renderer
	registry *page.Registry
	animator *motion.Animator
	overlays *render.Overlays
	cursor   *motion.Cursor

	state State
	root  *page.Node
	doc   *content.Document
	theme tui.Theme

	width  int
	height int

	// scrollY is the page row at the top of the viewport, fractional
	// while a smooth scroll is in flight.
	scrollY float64
	pageH   int

	loadStart   time.Time
	loadCh      chan loadResult
	loadErr     error
	contentDone bool
	holdDone    bool

	menuOpen  bool
	activeNav string
	focus     []*page.Node
	focusIdx  int
	hover     *page.Node
	form      *formState

	hits []hitRegion

	scrollFx      func(float64)
	resizeSettled func(term.Event)

	buf   []term.Cell
	frame int
	quit  bool
}

type hitRegion struct {
	node       *page.Node
	x, y, w, h int
}

// New builds a Controller from opts, filling in defaults for any nil
// collaborator.
func New(opts Options) *Controller {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = page.SystemClock{}
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = page.TimerScheduler{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.NewPlayer(cfg.Sound)
	}
	fetch := opts.Fetch
	if fetch == nil {
		loader := content.NewLoader(nil, log)
		fetch = func(ctx context.Context) (*content.Document, error) {
			return loader.Load(ctx, cfg.Content)
		}
	}

	c := &Controller{
		cfg:      cfg,
		screen:   opts.Screen,
		clock:    clock,
		sched:    sched,
		log:      log,
		rng:      rng,
		sound:    sound,
		fetch:    fetch,
		renderer: render.NewRenderer(log),
		registry: page.NewRegistry(),
		overlays: render.NewOverlays(),
		theme:    tui.DefaultTheme,
		focusIdx: -1,
	}
	c.animator = motion.NewAnimator(clock, motion.Options{ReducedMotion: cfg.ReducedMotion}, log)
	c.cursor = motion.NewCursor(nil)
	c.scrollFx = page.Throttle(c.applyScrollEffects, scrollThrottle, clock)
	c.resizeSettled = page.Debounce(func(ev term.Event) {
		c.screen.PostEvent(term.Event{Type: term.EventWake, WakeTag: wakeResize, Width: ev.Width, Height: ev.Height})
	}, resizeDebounce, sched)
	return c
}

// Run initializes the screen and drives the frame loop until the user
// quits. It always restores the terminal, including on panic.
func (c *Controller) Run() error {
	if err := c.bootstrap(); err != nil {
		return err
	}
	defer func() {
		r := recover()
		c.screen.Fini()
		c.sound.Close()
		term.HandleCrash(r)
	}()

	events := make(chan term.Event, eventBuffer)
	term.Go(func() {
		for {
			ev := c.screen.PollEvent()
			if ev.Type == term.EventClosed {
				close(events)
				return
			}
			events <- ev
		}
	})

	fps := c.cfg.FPS
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for !c.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				c.quit = true
				break
			}
			c.handleEvent(ev)
			// Drain bursts (paste, mouse sweeps) before the next frame.
			for len(events) > 0 && !c.quit {
				c.handleEvent(<-events)
			}
		case <-ticker.C:
			c.tick()
		}
	}

	c.teardown()
	c.log.Info("session ended", "frames", c.frame)
	return nil
}

// bootstrap prepares the screen and kicks off the loading sequence.
// Split from Run so tests can drive the loop by hand.
func (c *Controller) bootstrap() error {
	if c.screen == nil {
		scr, err := term.New()
		if err != nil {
			return fmt.Errorf("app: open terminal: %w", err)
		}
		c.screen = scr
	}
	if err := c.screen.Init(); err != nil {
		return fmt.Errorf("app: screen init: %w", err)
	}
	if c.cfg.Pointer && c.screen.HasMouse() {
		c.screen.EnableMouse()
	}
	c.width, c.height = c.screen.Size()
	// A page without sound still works, log and move on
	if err := c.sound.Init(); err != nil {
		c.log.Warn("audio unavailable", "error", err)
	}
	c.startLoading()
	return nil
}

// tick advances animations and observers and paints one frame.
func (c *Controller) tick() {
	now := c.clock.Now()
	c.animator.Update(now)
	c.cursor.Update()
	if c.state == StateReady {
		c.registry.EvaluateAll(c.scrollTop(), c.viewHeight())
	}
	c.overlays.Tick()
	c.render()
	c.frame++
}

// handleEvent dispatches one terminal or synthetic event.
func (c *Controller) handleEvent(ev term.Event) {
	switch ev.Type {
	case term.EventKey:
		c.handleKey(ev)
	case term.EventMouse:
		c.handleMouse(ev)
	case term.EventResize:
		c.width, c.height = ev.Width, ev.Height
		c.resizeSettled(ev)
	case term.EventWake:
		c.handleWake(ev.WakeTag)
	}
}

func (c *Controller) handleWake(tag string) {
	switch tag {
	case wakeContent:
		select {
		case res := <-c.loadCh:
			c.contentDone = true
			c.doc = res.doc
			c.loadErr = res.err
		default:
		}
		c.maybeFinishLoading()
	case wakeHold:
		c.holdDone = true
		c.maybeFinishLoading()
	case wakeSubmit:
		c.finishSubmit()
	case wakeResize:
		c.log.Debug("resize settled", "width", c.width, "height", c.height)
		c.clampScroll()
		c.applyScrollEffects(c.scrollY)
	}
}

// startLoading builds the shell, starts the fetch in the background
// and arms the minimum-hold timer. Entered from bootstrap and from a
// reload after failure.
func (c *Controller) startLoading() {
	c.state = StateLoading
	c.loadStart = c.clock.Now()
	c.loadCh = make(chan loadResult, 1)
	c.contentDone = false
	c.holdDone = false
	c.loadErr = nil

	c.root = c.renderer.BuildShell()
	c.cursor = motion.NewCursor(c.root.ByID(render.IDCursor))

	fetch := c.fetch
	ch := c.loadCh
	term.Go(func() {
		doc, err := fetch(context.Background())
		ch <- loadResult{doc: doc, err: err}
		c.screen.PostEvent(term.Event{Type: term.EventWake, WakeTag: wakeContent})
	})

	hold := time.Duration(c.cfg.MinLoadingMS) * time.Millisecond
	c.sched.AfterFunc(hold, func() {
		c.screen.PostEvent(term.Event{Type: term.EventWake, WakeTag: wakeHold})
	})

	c.log.Info("loading", "source", c.cfg.Content, "hold", hold)
}

// maybeFinishLoading leaves the splash only once both the fetch and
// the minimum hold have settled, so the splash never flashes.
func (c *Controller) maybeFinishLoading() {
	if c.state != StateLoading || !c.contentDone || !c.holdDone {
		return
	}
	if c.loadErr == nil && c.doc == nil {
		c.loadErr = errEmptyDocument
	}
	if c.loadErr != nil {
		c.fail(c.loadErr)
		return
	}
	c.becomeReady()
}

// becomeReady populates the page, arms the reveal and counter
// observers, and crossfades the splash away.
func (c *Controller) becomeReady() {
	c.renderer.Populate(c.root, c.doc)
	c.layoutPage(c.width)
	c.prepareReveals()
	c.observeReveals()
	c.observeCounters()
	c.buildFocus()
	c.form = newFormState(c.root)
	c.scrollY = 0
	c.activeNav = ""
	c.menuOpen = false

	if terminal := c.root.ByID(render.IDTerminal); terminal != nil && len(c.doc.Hero.Terminal) > 0 {
		c.animator.Typewriter(terminal, c.doc.Hero.Terminal)
	}

	loading := c.root.ByID(render.IDLoadingScreen)
	c.animator.FadeOut(loading, func() {
		c.sound.Play(audio.CueReady)
	})

	c.state = StateReady
	c.log.Info("page ready", "site", c.doc.Site.Name, "sections", len(c.root.ByKind(page.KindSection)))
}

// fail shows the blocking connection dialog. The splash stays behind
// it with its status line swapped for the classic modem verdict.
func (c *Controller) fail(err error) {
	c.state = StateFailed
	if status := c.root.ByID(render.IDLoadingStatus); status != nil {
		status.SetText("NO CARRIER")
	}
	c.overlays.ShowModal(
		"connection failed",
		fmt.Sprintf("The content feed did not answer.\n%v", err),
		"r redial · q hang up",
		true,
	)
	c.log.Error("load failed", "error", err)
}

// reload tears the page down and dials again.
func (c *Controller) reload() {
	c.log.Info("reload requested")
	c.teardown()
	c.startLoading()
}

// teardown releases observers, animations and per-page state. Safe to
// call twice; Run calls it on exit and reload calls it first.
func (c *Controller) teardown() {
	c.registry.DisconnectAll()
	c.animator.CancelAll()
	c.overlays = render.NewOverlays()
	c.form = nil
	c.focus = nil
	c.focusIdx = -1
	c.hover = nil
	c.hits = c.hits[:0]
	c.scrollY = 0
	c.pageH = 0
	c.menuOpen = false
	c.activeNav = ""
	c.root = nil
	c.doc = nil
	c.cursor = motion.NewCursor(nil)
	c.state = StateUninitialized
}

// prepareReveals hides every reveal-annotated node before the first
// observer pass so nothing pops in already visible.
func (c *Controller) prepareReveals() {
	for _, n := range c.root.ByClass(render.ClassReveal) {
		if !n.HasClass(motion.VisibleClass) {
			n.Alpha = 0
		}
	}
}

// observeReveals plays the rise-and-fade entrance once per node as it
// first intersects the viewport band.
func (c *Controller) observeReveals() {
	var obs *page.Observer
	obs = c.registry.NewObserver(func(entries []page.Entry) {
		for _, e := range entries {
			if !e.Intersecting {
				continue
			}
			c.animator.Reveal(e.Node, render.StaggerIndex(e.Node))
			obs.Unobserve(e.Node)
		}
	}, page.ObserverOpts{Threshold: 0.1, MarginRows: 5})
	for _, n := range c.root.ByClass(render.ClassReveal) {
		obs.Observe(n)
	}
}

// observeCounters starts each stat count-up the first time half the
// card is on screen.
func (c *Controller) observeCounters() {
	var obs *page.Observer
	obs = c.registry.NewObserver(func(entries []page.Entry) {
		for _, e := range entries {
			if !e.Intersecting {
				continue
			}
			n := e.Node
			target, err := strconv.Atoi(n.Attr(render.TargetAttr))
			if err != nil {
				c.log.Warn("bad counter target", "id", n.ID, "value", n.Attr(render.TargetAttr))
				obs.Unobserve(n)
				continue
			}
			suffix := n.Attr(render.SuffixAttr)
			c.animator.Counter(n, target, func(v int) string {
				return strconv.Itoa(v) + suffix
			})
			obs.Unobserve(n)
		}
	}, page.ObserverOpts{Threshold: 0.5})
	for _, n := range c.root.ByClass(render.ClassStatNumber) {
		obs.Observe(n)
	}
}

// buildFocus collects the keyboard-reachable nodes in document order.
func (c *Controller) buildFocus() {
	c.focus = c.focus[:0]
	c.focusIdx = -1
	c.root.Walk(func(n *page.Node) bool {
		if isInteractive(n) {
			c.focus = append(c.focus, n)
		}
		return true
	})
}

func isInteractive(n *page.Node) bool {
	switch {
	case n.Kind == page.KindButton:
		return true
	case n.Kind == page.KindField:
		return true
	case n.HasClass(render.ClassNavLink):
		return true
	case n.Kind == page.KindLink && n.Attr(render.HrefAttr) != "":
		return true
	}
	return false
}

// visible reports whether n and all its ancestors are shown.
func visible(n *page.Node) bool {
	for p := n; p != nil; p = p.Parent() {
		if p.Hidden {
			return false
		}
	}
	return true
}

func (c *Controller) focused() *page.Node {
	if c.focusIdx < 0 || c.focusIdx >= len(c.focus) {
		return nil
	}
	return c.focus[c.focusIdx]
}

// moveFocus advances the focus ring by dir, skipping hidden nodes,
// and scrolls the newly focused node into view.
func (c *Controller) moveFocus(dir int) {
	if len(c.focus) == 0 {
		return
	}
	idx := c.focusIdx
	for range c.focus {
		idx += dir
		if idx >= len(c.focus) {
			idx = 0
		}
		if idx < 0 {
			idx = len(c.focus) - 1
		}
		if visible(c.focus[idx]) {
			c.focusIdx = idx
			c.ensureVisible(c.focus[idx])
			return
		}
	}
}

func (c *Controller) blur() {
	c.focusIdx = -1
}
