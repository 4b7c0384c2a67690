// Package leveldata parses arena TMX files shared between client and server.
// It has no dependency on ebiten, donburi or resolv.
package leveldata

// Arena holds the collision and spawn data of one arena map.
type Arena struct {
	Name        string
	Solids      []Rect
	SpawnPoints []SpawnPoint
	Width       int
	Height      int
}

// Rect is an axis-aligned solid region in pixels.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is a fighter spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn point for the n-th fighter, cycling through the
// available points. A map without spawns yields the map's top centre.
func (a *Arena) Spawn(n int) SpawnPoint {
	if len(a.SpawnPoints) == 0 {
		return SpawnPoint{X: float64(a.Width) / 2}
	}
	if n < 0 {
		n = -n
	}
	return a.SpawnPoints[n%len(a.SpawnPoints)]
}
