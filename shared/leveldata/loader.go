package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	groupSolids = "Solids"
	groupSpawns = "PlayerSpawn"
)

// LoadArena parses a TMX file from fsys. Solids come from the Solids object
// group, spawn points from PlayerSpawn ordered by their spawnIndex property.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupSolids:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Solids = append(arena.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case groupSpawns:
			for _, o := range og.Objects {
				arena.SpawnPoints = append(arena.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(arena.Solids) == 0 {
		return nil, fmt.Errorf("arena %s has no %s objects", tmxPath, groupSolids)
	}

	sort.SliceStable(arena.SpawnPoints, func(i, j int) bool {
		return arena.SpawnPoints[i].Index < arena.SpawnPoints[j].Index
	})

	return arena, nil
}
