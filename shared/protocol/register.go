package protocol

import (
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition  uint = 10
	SyncIDNetVelocity  uint = 11
	SyncIDNetFighter   uint = 12
	SyncIDNetAnimation uint = 13
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
	InterpIDNetVelocity uint8 = 11
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetVelocity,
		netcomponents.NetVelocityData{},
		netcomponents.NetVelocity,
		esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
	); err != nil {
		return err
	}

	// Fighter: no interpolation (discrete state changes)
	if err := esync.RegisterComponent(
		SyncIDNetFighter,
		netcomponents.NetFighterData{},
		netcomponents.NetFighter,
	); err != nil {
		return err
	}

	// Animation: never interpolated, timestamps must arrive bit-for-bit
	if err := esync.RegisterComponent(
		SyncIDNetAnimation,
		netcomponents.NetAnimationData{},
		netcomponents.NetAnimation,
	); err != nil {
		return err
	}

	return nil
}
