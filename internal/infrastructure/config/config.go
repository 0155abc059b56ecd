// Package config loads game configuration from JSON files using the fs.FS
// interface, falling back to built-in defaults when no file is present.
package config

import "image/color"

// Color is a JSON-friendly RGBA color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGBA converts to the image/color representation.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func rgb(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ScreenConfig describes the window.
type ScreenConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// GameplayConfig holds the pattern engine tuning.
type GameplayConfig struct {
	PatternLength    int     `json:"patternLength"`
	SymbolCount      int     `json:"symbolCount"`
	PlaybackInterval float64 `json:"playbackInterval"`
}

// ButtonColors is a base/hover color pair.
type ButtonColors struct {
	Base  Color `json:"base"`
	Hover Color `json:"hover"`
}

// Palette holds every color the scenes use.
type Palette struct {
	Background    Color           `json:"background"`
	Text          Color           `json:"text"`
	Pads          [4]ButtonColors `json:"pads"`
	StartButton   ButtonColors    `json:"startButton"`
	CreditsButton ButtonColors    `json:"creditsButton"`
	ReturnButton  ButtonColors    `json:"returnButton"`
}

// Config holds all loaded configuration.
type Config struct {
	Screen   ScreenConfig   `json:"screen"`
	Gameplay GameplayConfig `json:"gameplay"`
	SavePath string         `json:"savePath"`
	Palette  Palette        `json:"palette"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			Title:  "Simon",
		},
		Gameplay: GameplayConfig{
			PatternLength:    255,
			SymbolCount:      4,
			PlaybackInterval: 1.0,
		},
		SavePath: "local.data",
		Palette: Palette{
			Background: rgb(245, 245, 245),
			Text:       rgb(0, 0, 0),
			Pads: [4]ButtonColors{
				{Base: rgb(254, 205, 205), Hover: rgb(252, 156, 156)}, // red
				{Base: rgb(209, 254, 205), Hover: rgb(164, 252, 156)}, // green
				{Base: rgb(205, 209, 254), Hover: rgb(156, 164, 252)}, // blue
				{Base: rgb(254, 254, 205), Hover: rgb(252, 252, 156)}, // yellow
			},
			StartButton:   ButtonColors{Base: rgb(0, 228, 48), Hover: rgb(0, 117, 44)},
			CreditsButton: ButtonColors{Base: rgb(0, 121, 241), Hover: rgb(0, 82, 172)},
			ReturnButton:  ButtonColors{Base: rgb(106, 118, 251), Hover: rgb(4, 16, 149)},
		},
	}
}
