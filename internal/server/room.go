package server

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemd/internal/game"
)

const maxUsernameLen = 32

// session is a connected client from the room's point of view. Connection
// implements it over a websocket; tests substitute in-memory fakes.
type session interface {
	ID() string
	Send(msg *Message)
}

// Room owns the table and serializes every mutation through a single
// command loop. Sessions enqueue closures; only the loop goroutine touches
// the table, the session map and the username registry.
type Room struct {
	logger        *log.Logger
	clock         quartz.Clock
	table         *game.Table
	showdownDelay time.Duration

	commands chan func()
	done     chan struct{}

	// owned by the command loop
	sessions    map[string]session
	names       map[string]string
	finishTimer *quartz.Timer
}

// NewRoom creates a room around the given table. The clock is injectable
// so tests can step the showdown timer.
func NewRoom(table *game.Table, showdownDelay time.Duration, clock quartz.Clock, logger *log.Logger) *Room {
	return &Room{
		logger:        logger.WithPrefix("room"),
		clock:         clock,
		table:         table,
		showdownDelay: showdownDelay,
		commands:      make(chan func(), 64),
		done:          make(chan struct{}),
		sessions:      make(map[string]session),
		names:         make(map[string]string),
	}
}

// Run processes commands until the context is cancelled
func (r *Room) Run(ctx context.Context) error {
	defer close(r.done)
	for {
		select {
		case fn := <-r.commands:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Room) do(fn func()) {
	select {
	case r.commands <- fn:
	case <-r.done:
	}
}

// Join registers a session and sends its welcome and initial state
func (r *Room) Join(s session) {
	r.do(func() {
		r.sessions[s.ID()] = s
		r.logger.Info("Client joined", "client", s.ID(), "total", len(r.sessions))

		welcome, err := NewMessage(MsgWelcome, "", WelcomeData{
			ClientID:   s.ID(),
			SmallBlind: r.table.Config().SmallBlind,
			BigBlind:   r.table.Config().BigBlind,
			MinBuyIn:   r.table.Config().MinBuyIn,
			MaxBuyIn:   r.table.Config().MaxBuyIn,
		})
		if err != nil {
			r.logger.Error("Failed to build welcome message", "error", err)
			return
		}
		s.Send(welcome)
		r.sendState(s)
	})
}

// Leave removes a session, folding its player out of any live hand and
// releasing table ownership
func (r *Room) Leave(clientID string) {
	r.do(func() {
		if _, ok := r.sessions[clientID]; !ok {
			return
		}
		delete(r.sessions, clientID)
		delete(r.names, clientID)
		r.table.ClientGone(clientID)
		r.logger.Info("Client left", "client", clientID, "total", len(r.sessions))
		r.afterMutation()
		r.broadcast()
	})
}

// Handle dispatches a client command. It runs on the room loop; the ack
// carries the command's correlation ID and, on failure, the error tag.
func (r *Room) Handle(s session, msg *Message) {
	r.do(func() {
		err := r.dispatch(s, msg)
		r.ack(s, msg.ID, err)
		// Validation failures leave the table untouched, so only they
		// skip the broadcast. An internal abort mutated the table (hand
		// cleared, stacks restored) and every client must see it.
		var kind game.ErrKind
		if err == nil || !errors.As(err, &kind) {
			r.afterMutation()
			r.broadcast()
		}
	})
}

func (r *Room) dispatch(s session, msg *Message) error {
	clientID := s.ID()

	switch msg.Type {
	case MsgUsername:
		var data UsernameData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return game.ErrNoUsername
		}
		name := strings.TrimSpace(data.Name)
		if name == "" || len(name) > maxUsernameLen {
			return game.ErrNoUsername
		}
		r.names[clientID] = name
		return nil

	case MsgOwner:
		return r.table.ClaimOwner(clientID)

	case MsgSit:
		var data SitData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return game.ErrInvalidSeat
		}
		return r.table.Sit(clientID, r.names[clientID], data.Seat, data.BuyIn)

	case MsgStand:
		return r.table.Stand(clientID)

	case MsgKick:
		var data KickData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return game.ErrInvalidSeat
		}
		return r.table.Kick(clientID, data.Seat)

	case MsgStart:
		return r.table.StartHand(clientID)

	case MsgAction:
		var data ActionData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return game.ErrUnknownAction
		}
		typ, err := game.ParseActionType(data.Action)
		if err != nil {
			return err
		}
		return r.table.Act(clientID, game.Action{Type: typ, Amount: data.Amount})

	default:
		r.logger.Debug("Unknown command type", "type", msg.Type, "client", clientID)
		return game.ErrUnknownAction
	}
}

func (r *Room) ack(s session, id string, cmdErr error) {
	data := AckData{OK: cmdErr == nil}
	if cmdErr != nil {
		data.Error = cmdErr.Error()
	}
	msg, err := NewMessage(MsgAck, id, data)
	if err != nil {
		r.logger.Error("Failed to build ack", "error", err)
		return
	}
	s.Send(msg)
}

// afterMutation schedules the showdown-to-idle transition once a hand
// reaches settlement. The timer callback re-enters through the command
// loop, so the transition is serialized like any other command.
func (r *Room) afterMutation() {
	if r.table.Phase() != game.Showdown || r.finishTimer != nil {
		return
	}
	r.finishTimer = r.clock.AfterFunc(r.showdownDelay, func() {
		r.do(func() {
			r.finishTimer = nil
			r.table.FinishHand()
			r.broadcast()
		})
	})
}

func (r *Room) broadcast() {
	for _, s := range r.sessions {
		r.sendState(s)
	}
}

func (r *Room) sendState(s session) {
	msg, err := NewMessage(MsgState, "", r.table.Project(s.ID()))
	if err != nil {
		r.logger.Error("Failed to build state message", "error", err)
		return
	}
	s.Send(msg)
}
