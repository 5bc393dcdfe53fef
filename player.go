package speedreading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultRate is the starting speed in words per minute.
	DefaultRate = 300
	MinRate     = 50
	MaxRate     = 2000
)

var (
	ErrNoWords        = errors.New("no words to read")
	ErrRateOutOfRange = errors.New("rate out of range")
)

// Ticker is the repeating clock driving playback.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

// NewTicker wraps time.Ticker.
func NewTicker(d time.Duration) Ticker {
	return stdTicker{time.NewTicker(d)}
}

type stdTicker struct {
	t *time.Ticker
}

func (s stdTicker) C() <-chan time.Time   { return s.t.C }
func (s stdTicker) Reset(d time.Duration) { s.t.Reset(d) }
func (s stdTicker) Stop()                 { s.t.Stop() }

// Interval converts words per minute into the time each word is shown.
func Interval(wpm int) time.Duration {
	if wpm <= 0 {
		return 0
	}
	return time.Minute / time.Duration(wpm)
}

// Option configures a Player.
type Option func(*playerOptions)

type playerOptions struct {
	rate      int
	minRate   int
	maxRate   int
	newTicker TickerFunc
	listener  func(from, to State)
	logger    *slog.Logger
}

// WithRate sets the initial speed, clamped to the player's rate limits.
func WithRate(wpm int) Option {
	return func(o *playerOptions) {
		o.rate = wpm
	}
}

// WithRateLimits overrides MinRate and MaxRate.
func WithRateLimits(minRate, maxRate int) Option {
	return func(o *playerOptions) {
		o.minRate = minRate
		o.maxRate = maxRate
	}
}

// WithTicker replaces the wall-clock ticker.
func WithTicker(fn TickerFunc) Option {
	return func(o *playerOptions) {
		o.newTicker = fn
	}
}

// WithStateListener is called on every state change, with the player lock
// held. It must not call back into the Player.
func WithStateListener(fn func(from, to State)) Option {
	return func(o *playerOptions) {
		o.listener = fn
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *playerOptions) {
		o.logger = logger
	}
}

// Player advances through a token sequence at a fixed rate and hands each
// word's layout to a Renderer. At most one ticker is live at any time.
type Player struct {
	mu        sync.Mutex
	renderer  Renderer
	newTicker TickerFunc
	listener  func(from, to State)
	logger    *slog.Logger
	minRate   int
	maxRate   int

	tokens []string
	state  State
	pos    int
	rate   int

	// session identifies the live ticker goroutine; ticks from older
	// sessions are dropped.
	session uint64
	ticker  Ticker
	cancel  context.CancelFunc
}

func NewPlayer(r Renderer, opts ...Option) *Player {
	options := &playerOptions{
		rate:      DefaultRate,
		minRate:   MinRate,
		maxRate:   MaxRate,
		newTicker: NewTicker,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.minRate < 1 {
		options.minRate = 1
	}
	if options.maxRate < options.minRate {
		options.maxRate = options.minRate
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	if r == nil {
		r = RendererFunc(func(Frame) {})
	}

	return &Player{
		renderer:  r,
		newTicker: options.newTicker,
		listener:  options.listener,
		logger:    options.logger,
		minRate:   options.minRate,
		maxRate:   options.maxRate,
		rate:      min(max(options.rate, options.minRate), options.maxRate),
	}
}

// Load replaces the token sequence. Any running playback is stopped first.
func (p *Player) Load(tokens []string) error {
	if len(tokens) == 0 {
		return ErrNoWords
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.tokens = append([]string(nil), tokens...)
	p.logger.Debug("loaded tokens", "total", len(p.tokens))
	return nil
}

// Start begins playback from the first word, showing it immediately. A
// paused player resumes instead; a playing one is restarted from the top.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.tokens) == 0 {
		return ErrNoWords
	}

	switch p.state {
	case Paused:
		return p.resumeLocked()
	case Playing:
		p.stopLocked()
	}

	if err := p.setState(EventStart); err != nil {
		return err
	}
	p.pos = 0
	p.renderLocked()
	p.launch()
	return nil
}

// Pause halts the ticker and keeps the position.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.setState(EventPause); err != nil {
		return err
	}
	p.halt()
	return nil
}

// Resume restarts the ticker; the next word appears on the next tick.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resumeLocked()
}

// Stop halts playback, rewinds to the first word and clears the display.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// SetRate changes the speed. While playing the ticker is rescheduled so the
// new interval applies from the very next tick.
func (p *Player) SetRate(wpm int) error {
	if wpm < p.minRate || wpm > p.maxRate {
		return fmt.Errorf("%w: %d wpm not in %d..%d", ErrRateOutOfRange, wpm, p.minRate, p.maxRate)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.rate = wpm
	if p.state != Playing {
		return nil
	}
	if err := p.setState(EventReschedule); err != nil {
		return err
	}
	p.ticker.Reset(Interval(wpm))
	return nil
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position is the index of the next word to be shown.
func (p *Player) Position() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}

func (p *Player) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tokens)
}

func (p *Player) Rate() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rate
}

func (p *Player) resumeLocked() error {
	if err := p.setState(EventResume); err != nil {
		return err
	}
	p.launch()
	return nil
}

func (p *Player) stopLocked() {
	p.halt()
	if p.state != Idle {
		_ = p.setState(EventStop)
	}
	p.pos = 0
	p.renderer.Clear()
}

func (p *Player) setState(ev Event) error {
	next, err := Transition(p.state, ev)
	if err != nil {
		return err
	}
	prev := p.state
	p.state = next
	if prev == next {
		p.logger.Debug("playback rescheduled", "state", next, "wpm", p.rate)
		return nil
	}
	p.logger.Info("playback state changed", "from", prev, "to", next, "event", ev, "position", p.pos)
	if p.listener != nil {
		p.listener(prev, next)
	}
	return nil
}

func (p *Player) renderLocked() {
	layout := ResolveAnchor(p.tokens[p.pos])
	p.renderer.Render(Frame{Layout: layout, Position: p.pos, Total: len(p.tokens)})
	p.pos++
}

// launch starts a new ticker session. Callers must hold p.mu.
func (p *Player) launch() {
	p.halt()
	ctx, cancel := context.WithCancel(context.Background())
	t := p.newTicker(Interval(p.rate))
	p.ticker = t
	p.cancel = cancel
	go p.run(ctx, p.session, t)
}

// halt cancels the live session, if any. Callers must hold p.mu.
func (p *Player) halt() {
	p.session++
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.ticker.Stop()
	p.cancel = nil
	p.ticker = nil
}

func (p *Player) run(ctx context.Context, session uint64, t Ticker) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			if !p.tick(session) {
				return
			}
		}
	}
}

// tick shows the next word, or completes playback past the last one. It
// reports whether the session is still live.
func (p *Player) tick(session uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if session != p.session || p.state != Playing {
		return false
	}
	if p.pos >= len(p.tokens) {
		p.halt()
		p.pos = 0
		p.renderer.Clear()
		_ = p.setState(EventComplete)
		return false
	}
	p.logger.Debug("tick", "position", p.pos, "total", len(p.tokens))
	p.renderLocked()
	return true
}
