// Package telemetry provides run statistics, CSV output and per-phase
// performance tracking for the farm simulation.
package telemetry

import "github.com/DipFlip/farmpire-survivors/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventShot EventType = iota
	EventMeleeHit
	EventTreeFelled
	EventPlantLevelUp
	EventHarvestReady
	EventCollectStarted
	EventCollectBanked
	EventCollectCancelled
	EventDeposit
	EventStationComplete
	EventSiteDug
	EventSitePlanted
)

// Event represents a single telemetry event.
type Event struct {
	Type EventType
	Tick int64

	// Optional fields depending on event type
	Item   components.ItemType // collect/deposit events
	Amount float32             // hit amount or flight seconds
}

// NewCollectBankedEvent creates a banked-collection event carrying the
// flight duration for aggregate stats.
func NewCollectBankedEvent(tick int64, item components.ItemType, flightSec float32) Event {
	return Event{
		Type:   EventCollectBanked,
		Tick:   tick,
		Item:   item,
		Amount: flightSec,
	}
}

// NewDepositEvent creates a deposit event for one transferred unit.
func NewDepositEvent(tick int64, item components.ItemType) Event {
	return Event{
		Type: EventDeposit,
		Tick: tick,
		Item: item,
	}
}
