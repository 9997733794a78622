package server

import (
	"encoding/json"
)

// Message is the envelope for every frame in both directions. ID is a
// client-chosen correlation token echoed back on the matching ack.
type Message struct {
	Type string          `json:"type"`
	ID   string          `json:"id,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewMessage marshals data into a message envelope
func NewMessage(msgType, id string, data any) (*Message, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return &Message{Type: msgType, ID: id, Data: raw}, nil
}

// Client → Server commands

const (
	MsgUsername = "username"
	MsgOwner    = "owner"
	MsgSit      = "sit"
	MsgStand    = "stand"
	MsgKick     = "kick"
	MsgStart    = "start"
	MsgAction   = "action"
)

type UsernameData struct {
	Name string `json:"name"`
}

type SitData struct {
	Seat  int `json:"seat"`
	BuyIn int `json:"buy_in"`
}

type KickData struct {
	Seat int `json:"seat"`
}

type ActionData struct {
	Action string `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

// Server → Client events

const (
	MsgAck     = "ack"
	MsgState   = "state"
	MsgWelcome = "welcome"
)

type AckData struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// WelcomeData is sent once on connect so clients learn their ID and the
// table stakes before issuing commands
type WelcomeData struct {
	ClientID   string `json:"client_id"`
	SmallBlind int    `json:"small_blind"`
	BigBlind   int    `json:"big_blind"`
	MinBuyIn   int    `json:"min_buy_in"`
	MaxBuyIn   int    `json:"max_buy_in"`
}
