package netcomponents

import "github.com/yohamta/donburi"

type NetFighterData struct {
	Name         string
	Direction    int // -1 left, 1 right
	Health       int
	Guarding     bool
	KOs          int
	LastSequence uint32 // Last input sequence processed by the server
}

var NetFighter = donburi.NewComponentType[NetFighterData]()
