package game

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goban/internal/domain"
	"goban/internal/domain/game"
	"goban/internal/domain/sgf"
	"goban/internal/errors"
)

// EventPublisher receives every committed change of the board.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// eventQueueSize bounds the events waiting for slow publishers.
const eventQueueSize = 256

type command struct {
	run  func(g *game.Game, s *game.Scratch) []domain.Event
	done chan struct{}
}

// GameUseCase owns the single game of this process. Every engine call runs
// on the goroutine started with Run, one command at a time.
type GameUseCase struct {
	id         string
	log        *zap.SugaredLogger
	publishers []EventPublisher
	commands   chan command
	events     chan domain.Event
	closed     chan struct{}
	createdAt  time.Time

	game    *game.Game
	scratch *game.Scratch
}

func NewGameUseCase(log *zap.SugaredLogger, width, height int, komi float64, publishers ...EventPublisher) (*GameUseCase, error) {
	komi2, err := validateSetup(width, height, komi)
	if err != nil {
		return nil, err
	}

	return &GameUseCase{
		id:         uuid.New().String(),
		log:        log,
		publishers: publishers,
		commands:   make(chan command),
		events:     make(chan domain.Event, eventQueueSize),
		closed:     make(chan struct{}),
		createdAt:  time.Now(),
		game:       game.New(width, height, komi2),
		scratch:    game.NewScratch(),
	}, nil
}

func (u *GameUseCase) SessionID() string {
	return u.id
}

// Run executes commands until ctx is done. Events are handed to a separate
// publishing goroutine so publishers never hold up the next command.
func (u *GameUseCase) Run(ctx context.Context) {
	defer close(u.closed)
	go u.publishLoop(ctx)
	u.log.Infof("Game session %s started: %dx%d, komi %.1f",
		u.id, u.game.Width(), u.game.Height(), u.game.Komi())

	for {
		select {
		case <-ctx.Done():
			u.log.Infof("Game session %s stopped after %d moves", u.id, u.game.MoveCount())
			return
		case cmd := <-u.commands:
			events := cmd.run(u.game, u.scratch)
			close(cmd.done)
			u.enqueue(events)
		}
	}
}

func (u *GameUseCase) do(ctx context.Context, run func(g *game.Game, s *game.Scratch) []domain.Event) error {
	cmd := command{run: run, done: make(chan struct{})}
	select {
	case u.commands <- cmd:
	case <-u.closed:
		return errors.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	// Commands never block, so waiting here is bounded.
	<-cmd.done
	return nil
}

func (u *GameUseCase) enqueue(events []domain.Event) {
	if len(u.publishers) == 0 {
		return
	}
	for _, event := range events {
		select {
		case u.events <- event:
		default:
			u.log.Warnf("event queue is full, dropped %s event %s", event.Type, event.ID)
		}
	}
}

func (u *GameUseCase) publishLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-u.events:
			for _, p := range u.publishers {
				if err := p.Publish(ctx, event); err != nil {
					u.log.Errorf("publish %s event %s: %v", event.Type, event.ID, err)
				}
			}
		}
	}
}

func (u *GameUseCase) newEvent(eventType string) domain.Event {
	return domain.Event{
		ID:        uuid.New().String(),
		SessionID: u.id,
		Type:      eventType,
		Time:      time.Now(),
	}
}

func validateSetup(width, height int, komi float64) (int, error) {
	if !game.ValidSize(width) || !game.ValidSize(height) {
		return 0, fmt.Errorf("%w: got %dx%d", errors.ErrBoardSize, width, height)
	}
	komi2 := math.Round(komi * 2)
	if math.IsNaN(komi2) || komi2 < math.MinInt8 || komi2 > math.MaxInt8 {
		return 0, fmt.Errorf("%w: got %v", errors.ErrKomi, komi)
	}
	return int(komi2), nil
}

func parseColor(g *game.Game, color string) (game.Color, error) {
	if color == "" {
		return g.ColorToPlay(), nil
	}
	c, ok := game.ParseColor(color)
	if !ok {
		return c, fmt.Errorf("%w: got %q", errors.ErrColor, color)
	}
	return c, nil
}

// Reset starts a new game on the same session.
func (u *GameUseCase) Reset(ctx context.Context, width, height int, komi float64) (domain.BoardState, error) {
	komi2, err := validateSetup(width, height, komi)
	if err != nil {
		return domain.BoardState{}, err
	}

	var state domain.BoardState
	err = u.do(ctx, func(g *game.Game, s *game.Scratch) []domain.Event {
		g.Reset(width, height, komi2)
		u.createdAt = time.Now()
		state = boardState(g)
		u.log.Infof("Game session %s reset: %dx%d, komi %.1f", u.id, width, height, g.Komi())

		event := u.newEvent(domain.EventReset)
		event.Board = &state
		return []domain.Event{event}
	})
	return state, err
}

// Play places a stone. An empty color means the color to play. Rejected
// moves are reported in the result, not as errors.
func (u *GameUseCase) Play(ctx context.Context, col, row int, color string) (domain.MoveResult, error) {
	var (
		result domain.MoveResult
		opErr  error
	)
	err := u.do(ctx, func(g *game.Game, s *game.Scratch) []domain.Event {
		c, err := parseColor(g, color)
		if err != nil {
			opErr = err
			return nil
		}
		if g.HistoryFull() {
			opErr = errors.ErrHistoryFull
			return nil
		}

		legality, changed := g.Play(col, row, c, s)
		result = moveResult(g, legality, changed)
		if legality != game.Legal {
			u.log.Infof("Illegal (%s): %s at (%d,%d)", legality, c.SGF(), col, row)
			return nil
		}

		u.log.Infof("Legal: %s at (%d,%d), captured %d", c.SGF(), col, row, result.Captured)
		u.log.Debugf("Board %dx%d\n%s", g.Width(), g.Height(), g)

		event := u.newEvent(domain.EventMove)
		event.Result = &result
		return []domain.Event{event}
	})
	if err != nil {
		return domain.MoveResult{}, err
	}
	return result, opErr
}

func (u *GameUseCase) Pass(ctx context.Context, color string) (domain.MoveResult, error) {
	var (
		result domain.MoveResult
		opErr  error
	)
	err := u.do(ctx, func(g *game.Game, s *game.Scratch) []domain.Event {
		c, err := parseColor(g, color)
		if err != nil {
			opErr = err
			return nil
		}
		if g.HistoryFull() {
			opErr = errors.ErrHistoryFull
			return nil
		}

		legality, changed := g.PlayMove(game.Pass, c, s)
		result = moveResult(g, legality, changed)
		u.log.Infof("Pass: %s", c.SGF())

		event := u.newEvent(domain.EventPass)
		event.Result = &result
		return []domain.Event{event}
	})
	if err != nil {
		return domain.MoveResult{}, err
	}
	return result, opErr
}

func (u *GameUseCase) Turn(ctx context.Context) (string, error) {
	var color string
	err := u.do(ctx, func(g *game.Game, s *game.Scratch) []domain.Event {
		color = g.ColorToPlay().String()
		return nil
	})
	return color, err
}

// CanPlay is the cheap hint: not ko-blocked and not occupied. It does not
// detect suicide.
func (u *GameUseCase) CanPlay(ctx context.Context, col, row int) (bool, error) {
	var ok bool
	err := u.do(ctx, func(g *game.Game, s *game.Scratch) []domain.Event {
		ok = g.CanPlayApprox(col, row)
		return nil
	})
	return ok, err
}

func (u *GameUseCase) Board(ctx context.Context) (domain.BoardState, error) {
	var state domain.BoardState
	err := u.do(ctx, func(g *game.Game, s *game.Scratch) []domain.Event {
		state = boardState(g)
		return nil
	})
	return state, err
}

func (u *GameUseCase) History(ctx context.Context) ([]domain.Move, error) {
	var moves []domain.Move
	err := u.do(ctx, func(g *game.Game, s *game.Scratch) []domain.Event {
		moves = historyMoves(g.History())
		return nil
	})
	return moves, err
}

// SGF renders the game record.
func (u *GameUseCase) SGF(ctx context.Context) (string, error) {
	var record string
	err := u.do(ctx, func(g *game.Game, s *game.Scratch) []domain.Event {
		tree := u.PrepareSgfFile(g)
		AddMovesToSgf(tree.Root, historyMoves(g.History()))
		record = sgf.Serialize(&tree)
		return nil
	})
	return record, err
}

func (u *GameUseCase) PrepareSgfFile(g *game.Game) sgf.SGF {
	return sgf.SGF{
		Root: &sgf.GameTree{
			Nodes: []sgf.Node{
				{
					Properties: map[string][]string{
						"FF": {"4"},
						"GM": {"1"},
						"SZ": {sgf.Size(g.Width(), g.Height())},
						"DT": {u.createdAt.Format("2006-01-02")},
						"KM": {fmt.Sprintf("%.1f", g.Komi())},
						"RU": {"Japanese"},
						"AP": {"goban"},
					},
				},
			},
		},
	}
}

func AddMovesToSgf(tree *sgf.GameTree, moves []domain.Move) {
	for _, move := range moves {
		node := sgf.Node{
			Properties: map[string][]string{
				move.Color: {move.Coordinates},
			},
		}
		tree.Nodes = append(tree.Nodes, node)
	}
}
