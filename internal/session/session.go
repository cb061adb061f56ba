package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/DoyleJ11/freecell-client/internal/render"
	"github.com/DoyleJ11/freecell-client/internal/selection"
	"github.com/DoyleJ11/freecell-client/internal/types"
)

const DefaultSimulations = 100

const (
	MsgMoveOK        = "Move successful!"
	MsgMoveRejected  = "Invalid move. Please try again."
	MsgNewGame       = "New game started!"
	MsgNewGameFailed = "Failed to start new game."
	MsgThinking      = "Computer is thinking..."
	MsgNoComputer    = "Computer could not find a valid move or game is stuck."
	MsgComputerFail  = "Failed for computer to make a move."
	MsgUndoOK        = "Undo successful!"
	MsgUndoRejected  = "Cannot undo further."
	MsgUndoFailed    = "Failed to undo move."
	MsgQuit          = "Game quit. Goodbye!"
	MsgWon           = "Congratulations! You won the game!"
	MsgLoadFailed    = "Failed to load game state. Please try starting a new game."
)

// Engine is the remote engine as the session uses it.
type Engine interface {
	render.Engine
	Start(ctx context.Context) error
	Move(ctx context.Context, m selection.MoveRequest) (bool, error)
	ComputerPlay(ctx context.Context, sim int) (types.ComputerMove, error)
	Undo(ctx context.Context) (bool, error)
}

type Msg interface{ isSessionMsg() }

// Click is a click on a card or an empty slot.
type Click struct {
	Target selection.Target
}

func (Click) isSessionMsg() {}

type NewGame struct{}

func (NewGame) isSessionMsg() {}

type ComputerMove struct{}

func (ComputerMove) isSessionMsg() {}

type Undo struct{}

func (Undo) isSessionMsg() {}

// Quit clears the board locally. The engine is not told.
type Quit struct{}

func (Quit) isSessionMsg() {}

type Refresh struct{}

func (Refresh) isSessionMsg() {}

// Join subscribes a client. Outbox must be buffered: the current frame is
// sent without blocking.
type Join struct {
	ClientID string
	Outbox   chan Frame // where this client wants to receive frames
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

type GetState struct {
	Reply chan Frame
}

func (GetState) isSessionMsg() {}

// Frame is everything a front end needs to draw one moment of the game.
type Frame struct {
	Version int
	View    render.View
	Armed   *selection.Selection
	Status  selection.Notice
	Busy    bool
}

type Options struct {
	Simulations int
	Logger      *zap.Logger
}

// Session owns the selection, the last good view and the status line. All
// clicks, actions and render passes run one at a time on its goroutine.
type Session struct {
	inbox    chan Msg
	engine   Engine
	renderer *render.Renderer
	sim      int
	log      *zap.Logger

	view    render.View
	sel     selection.State
	status  selection.Notice
	busy    bool
	version int
	clients map[string]chan Frame

	ctx    context.Context
	cancel context.CancelFunc
}

func New(parent context.Context, engine Engine, opts Options) *Session {
	ctx, cancel := context.WithCancel(parent)

	sim := opts.Simulations
	if sim <= 0 {
		sim = DefaultSimulations
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Session{
		inbox:    make(chan Msg, 64),
		engine:   engine,
		renderer: render.New(engine),
		sim:      sim,
		log:      log,
		view:     render.NotStarted(),
		status:   selection.Notice{Text: selection.PromptDefault},
		clients:  make(map[string]chan Frame),
		ctx:      ctx,
		cancel:   cancel,
	}

	go s.loop()
	return s
}

// Inbox accepts messages from front ends and tests.
func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	s.refresh(nil)

	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				s.join(msg)

			case Leave:
				if ch, ok := s.clients[msg.ClientID]; ok {
					close(ch)
					delete(s.clients, msg.ClientID)
				}

			case Click:
				if !s.view.Started {
					s.log.Debug("click ignored, no board shown", zap.Stringer("target", msg.Target.Location))
					continue
				}
				s.click(msg.Target)

			case NewGame:
				s.newGame()

			case ComputerMove:
				s.computerMove()

			case Undo:
				s.undo()

			case Quit:
				s.view = render.NotStarted()
				s.sel = selection.Idle()
				s.status = selection.Notice{Text: MsgQuit}
				s.publish()

			case Refresh:
				s.refresh(nil)

			case GetState:
				msg.Reply <- s.frame()

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

// join registers a client and hands it the current frame. An outbox that
// cannot take the frame right away is closed and never registered.
func (s *Session) join(msg Join) {
	select {
	case msg.Outbox <- s.frame():
		s.clients[msg.ClientID] = msg.Outbox
	default:
		s.log.Warn("rejecting client with full outbox", zap.String("client", msg.ClientID))
		close(msg.Outbox)
	}
}

func (s *Session) click(t selection.Target) {
	res, next := selection.Apply(s.sel, t)
	s.sel = next
	if res.NoOp {
		return
	}
	if res.Err != nil {
		s.log.Debug("click rejected", zap.Stringer("target", t.Location), zap.Error(res.Err))
	}
	s.status = res.Notice
	if res.Move == nil {
		s.publish()
		return
	}

	s.busy = true
	s.publish()

	outcome := s.submit(*res.Move)
	s.refresh(&outcome)
}

func (s *Session) submit(m selection.MoveRequest) selection.Notice {
	ok, err := s.engine.Move(s.ctx, m)
	if err != nil {
		s.log.Warn("move failed", zap.String("kind", string(m.Kind)), zap.Int("src", m.Src), zap.Int("dst", m.Dst), zap.Error(err))
		return selection.Notice{Text: fmt.Sprintf("Failed to perform move: %v", err), IsError: true}
	}
	if !ok {
		s.log.Info("move rejected by engine", zap.String("kind", string(m.Kind)), zap.Int("src", m.Src), zap.Int("dst", m.Dst))
		return selection.Notice{Text: MsgMoveRejected, IsError: true}
	}
	return selection.Notice{Text: MsgMoveOK}
}

func (s *Session) newGame() {
	outcome := selection.Notice{Text: MsgNewGame}
	if err := s.engine.Start(s.ctx); err != nil {
		s.log.Warn("start failed", zap.Error(err))
		outcome = selection.Notice{Text: MsgNewGameFailed, IsError: true}
	}
	s.refresh(&outcome)
}

func (s *Session) computerMove() {
	s.status = selection.Notice{Text: MsgThinking}
	s.busy = true
	s.publish()

	var outcome selection.Notice
	mv, err := s.engine.ComputerPlay(s.ctx, s.sim)
	switch {
	case err != nil:
		s.log.Warn("computer play failed", zap.Int("sim", s.sim), zap.Error(err))
		outcome = selection.Notice{Text: MsgComputerFail, IsError: true}
	case mv.Found():
		outcome = selection.Notice{Text: "Computer made move: " + mv.Describe()}
	default:
		outcome = selection.Notice{Text: MsgNoComputer, IsError: true}
	}
	s.refresh(&outcome)
}

func (s *Session) undo() {
	var outcome selection.Notice
	ok, err := s.engine.Undo(s.ctx)
	switch {
	case err != nil:
		s.log.Warn("undo failed", zap.Error(err))
		outcome = selection.Notice{Text: MsgUndoFailed, IsError: true}
	case ok:
		outcome = selection.Notice{Text: MsgUndoOK}
	default:
		outcome = selection.Notice{Text: MsgUndoRejected, IsError: true}
	}
	s.refresh(&outcome)
}

// refresh runs a render pass. The selection is always cleared. On failure
// the last good view stays up. The status line shows, in order of
// precedence: a load failure, a win, the outcome that triggered the
// refresh, the default prompt.
func (s *Session) refresh(outcome *selection.Notice) {
	res, err := s.renderer.Render(s.ctx)
	s.sel = selection.Idle()
	s.busy = false

	switch {
	case err != nil:
		s.log.Warn("render failed", zap.Error(err))
		s.status = selection.Notice{Text: MsgLoadFailed, IsError: true}
	case res.Won:
		s.view = res.View
		s.status = selection.Notice{Text: MsgWon}
	case outcome != nil:
		s.view = res.View
		s.status = *outcome
	default:
		s.view = res.View
		s.status = selection.Notice{Text: selection.PromptDefault}
	}
	s.publish()
}

func (s *Session) frame() Frame {
	f := Frame{
		Version: s.version,
		View:    s.view,
		Status:  s.status,
		Busy:    s.busy,
	}
	if s.sel.Armed != nil {
		armed := *s.sel.Armed
		f.Armed = &armed
	}
	return f
}

func (s *Session) publish() {
	s.version++
	s.broadcast(s.frame())
}

func (s *Session) broadcast(f Frame) {
	for id, ch := range s.clients {
		select {
		case ch <- f:
			//ok
		default:
			// Client is slow/full - drop them.
			s.log.Warn("dropping slow client", zap.String("client", id))
			close(ch)
			delete(s.clients, id)
		}
	}
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch) // Tell client no more frames
		delete(s.clients, id)
	}
	s.cancel()
}
