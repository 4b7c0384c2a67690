package netcomponents

import "github.com/yohamta/donburi"

// NetPositionData is a fighter's feet position in arena pixels.
type NetPositionData struct {
	X, Y float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

// LerpNetPosition interpolates between two positions
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	return &NetPositionData{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
	}
}

type NetVelocityData struct {
	SpeedX, SpeedY float64
	OnGround       bool
}

var NetVelocity = donburi.NewComponentType[NetVelocityData]()

// LerpNetVelocity interpolates speeds; OnGround snaps to the newer state.
func LerpNetVelocity(from, to NetVelocityData, t float64) *NetVelocityData {
	return &NetVelocityData{
		SpeedX:   from.SpeedX + (to.SpeedX-from.SpeedX)*t,
		SpeedY:   from.SpeedY + (to.SpeedY-from.SpeedY)*t,
		OnGround: to.OnGround,
	}
}
