package models

import (
	"time"
)

// Phase represents where the active turn is in its life cycle
type Phase string

const (
	// PhaseIdle indicates the engine is waiting for the active player's roll
	PhaseIdle Phase = "idle"

	// PhaseMoving indicates the active token is advancing cell by cell
	PhaseMoving Phase = "moving"

	// PhaseMissionOffered indicates a mission card is shown and may be accepted or swapped
	PhaseMissionOffered Phase = "mission_offered"

	// PhaseBuilding indicates the player is composing the amount with coins and notes
	PhaseBuilding Phase = "building"
)

// EventKind classifies the last message shown to the players
type EventKind string

const (
	EventKindBank           EventKind = "bank"
	EventKindMissionSuccess EventKind = "mission_success"
	EventKindMissionFailure EventKind = "mission_failure"
	EventKindTurnSkipped    EventKind = "turn_skipped"
)

// Event is the outcome of a turn-ending action
type Event struct {
	Kind     EventKind
	PlayerID string

	// Built is the amount the player submitted, for mission outcomes
	Built int

	// Target is the mission amount, for mission outcomes
	Target int

	// Amount is the money that moved after flooring (negative for debits)
	Amount int

	// Charged is what the mission asked to deduct, before flooring
	Charged int

	// MissionID is set for mission outcomes
	MissionID string

	// Reason is set for bank events
	Reason LedgerReason

	// Balance is the player's effective total after the event
	Balance int
}

// Session is a snapshot of one timed play-through
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// ChannelID is the Discord channel hosting the session
	ChannelID string

	// CreatorID is the user who opened the session
	CreatorID string

	// Phase is the current turn phase
	Phase Phase

	// Turn is the active player index
	Turn int

	// Difficulty is the session-wide mission tier
	Difficulty Difficulty

	// DurationSeconds is the configured session length
	DurationSeconds int

	// TimeLeft is the countdown in whole seconds
	TimeLeft int

	// ActivePlace is the place being resolved, empty when none
	ActivePlace Place

	// Mission is the current mission, nil when none
	Mission *Mission

	// Builder is the tray of coins and notes while building
	Builder Wallet

	// StepsRemaining is the pending movement while moving
	StepsRemaining int

	// LastRoll is the most recent die throw
	LastRoll *Roll

	// LastEvent is the most recent turn outcome
	LastEvent *Event

	// Players are in turn order
	Players []*Player

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the snapshot was taken
	UpdatedAt time.Time
}

// Expired reports whether the countdown has reached zero
func (s *Session) Expired() bool {
	return s.TimeLeft <= 0
}

// DangerSeconds is when the countdown is shown as running out
const DangerSeconds = 60

// Danger reports whether the countdown is in its last minute
func (s *Session) Danger() bool {
	return s.TimeLeft > 0 && s.TimeLeft <= DangerSeconds
}

// ActivePlayer returns the player whose turn it is
func (s *Session) ActivePlayer() *Player {
	if s.Turn < 0 || s.Turn >= len(s.Players) {
		return nil
	}
	return s.Players[s.Turn]
}

// Lobby gathers players in a channel before a session starts
type Lobby struct {
	ChannelID string

	// CreatorID is the user allowed to start the session
	CreatorID string

	Minutes    int
	Difficulty Difficulty

	// Players are in join order, which becomes turn order
	Players []PlayerSetup

	CreatedAt time.Time
}

// HasPlayer reports whether id already joined
func (l *Lobby) HasPlayer(id string) bool {
	for _, p := range l.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}
