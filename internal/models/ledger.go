package models

import (
	"time"
)

// LedgerReason represents why money moved
type LedgerReason string

const (
	// LedgerReasonMission is a debit for a completed mission
	LedgerReasonMission LedgerReason = "mission"

	// LedgerReasonBankCommission is the bank commission debit
	LedgerReasonBankCommission LedgerReason = "bank_commission"

	// LedgerReasonBankCorrection is the administrative error credit
	LedgerReasonBankCorrection LedgerReason = "bank_correction"

	// LedgerReasonBankMaintenance is the maintenance fee debit
	LedgerReasonBankMaintenance LedgerReason = "bank_maintenance"
)

// LedgerEntry records a change to a player's effective total
type LedgerEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// SessionID is the session the movement belongs to
	SessionID string

	// PlayerID is whose money moved
	PlayerID string

	// Reason is why the money moved
	Reason LedgerReason

	// Delta is the signed change actually applied after clamping
	Delta int

	// Balance is the effective total after the movement
	Balance int

	// MissionID is set for mission debits
	MissionID string

	// Timestamp is when the movement happened
	Timestamp time.Time
}
