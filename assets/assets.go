// Package assets embeds the keyframe tables and arena maps so both binaries
// run without a data directory.
package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed keyframes/*.yaml
	keyframeFS embed.FS

	//go:embed levels/*.tmx
	levelFS embed.FS
)

const (
	KeyframeDir  = "keyframes"
	DefaultArena = "levels/arena.tmx"
)

// Keyframes returns the embedded keyframe tables; they live under KeyframeDir.
func Keyframes() fs.FS {
	return keyframeFS
}

// Levels returns the embedded arena maps.
func Levels() fs.FS {
	return levelFS
}
