package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Render layers.
const (
	LayerArena ecs.LayerID = iota
	LayerFighters
	LayerHUD
)

type Config struct {
	Width  int
	Height int
	Title  string
}

// BodyConfig is the rest pose of a stick figure. Lengths are in pixels,
// angles in radians clockwise from pointing right; keyframe transforms are
// offsets from these.
type BodyConfig struct {
	HipHeight   float64 // feet to hip
	TorsoLength float64
	HeadRadius  float64
	ArmLength   float64
	LegLength   float64
	TorsoAngle  float64
	ArmAngle    float64
	LegAngle    float64
	StrokeWidth float32
	NameOffsetY float64
	HealthBarW  float64
	HealthBarH  float64
	HitFlashMs  int64
	MaxHealth   int
}

type ColorConfig struct {
	Background color.RGBA
	Solid      color.RGBA
	Fighters   []color.RGBA // by network id
	Local      color.RGBA
	HitFlash   color.RGBA
	Guarded    color.RGBA
	Text       color.RGBA
	HealthBack color.RGBA
	HealthFill color.RGBA
}

// NetConfig controls client networking.
type NetConfig struct {
	DefaultAddr    string
	Version        string
	ResendInterval int64 // ms between unchanged input resends
	EventBuffer    int
}

var C *Config
var Body BodyConfig
var Colors ColorConfig
var Net NetConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 368,
		Title:  "Stickbrawl",
	}

	Body = BodyConfig{
		HipHeight:   28,
		TorsoLength: 20,
		HeadRadius:  6,
		ArmLength:   17,
		LegLength:   28,
		TorsoAngle:  -math.Pi / 2,
		ArmAngle:    math.Pi / 2,
		LegAngle:    math.Pi / 2,
		StrokeWidth: 2.5,
		NameOffsetY: 72,
		HealthBarW:  30,
		HealthBarH:  3,
		HitFlashMs:  150,
		MaxHealth:   100,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 24, G: 24, B: 32, A: 255},
		Solid:      color.RGBA{R: 70, G: 74, B: 96, A: 255},
		Fighters: []color.RGBA{
			{R: 240, G: 240, B: 240, A: 255},
			{R: 255, G: 120, B: 100, A: 255},
			{R: 110, G: 190, B: 255, A: 255},
			{R: 140, G: 230, B: 120, A: 255},
		},
		Local:      color.RGBA{R: 255, G: 220, B: 90, A: 255},
		HitFlash:   color.RGBA{R: 255, G: 60, B: 60, A: 255},
		Guarded:    color.RGBA{R: 120, G: 200, B: 255, A: 255},
		Text:       color.RGBA{R: 230, G: 230, B: 230, A: 255},
		HealthBack: color.RGBA{R: 60, G: 20, B: 20, A: 255},
		HealthFill: color.RGBA{R: 90, G: 220, B: 90, A: 255},
	}

	Net = NetConfig{
		DefaultAddr:    "localhost:7373",
		Version:        "",
		ResendInterval: 50,
		EventBuffer:    64,
	}
}

// FighterColor returns the body colour for a network id.
func FighterColor(id uint, local bool) color.RGBA {
	if local {
		return Colors.Local
	}
	if len(Colors.Fighters) == 0 {
		return Colors.Text
	}
	return Colors.Fighters[int(id)%len(Colors.Fighters)]
}
