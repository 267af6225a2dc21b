package wld

import "strings"

// TileOrientation selects the sub-sprite variant used by slope-capable
// tiles (tile.h's TILE_ORIENTATION_*).
type TileOrientation uint8

const (
	TileOrientationNone TileOrientation = 0
	TileOrientationHalf TileOrientation = 1
)

func (o TileOrientation) String() string {
	switch o {
	case TileOrientationNone:
		return "None"
	case TileOrientationHalf:
		return "Half"
	default:
		return "Unknown"
	}
}

// LiquidType identifies the fluid occupying a tile, if any.
type LiquidType uint8

const (
	LiquidNone    LiquidType = 0
	LiquidWater   LiquidType = 1
	LiquidLava    LiquidType = 2
	LiquidHoney   LiquidType = 3
	LiquidShimmer LiquidType = 4
)

func (l LiquidType) String() string {
	switch l {
	case LiquidNone:
		return "None"
	case LiquidWater:
		return "Water"
	case LiquidLava:
		return "Lava"
	case LiquidHoney:
		return "Honey"
	case LiquidShimmer:
		return "Shimmer"
	default:
		return "Unknown"
	}
}

// WireFlags is the tile's wiring bitset (tile.h's WIRE_* family).
type WireFlags uint8

const (
	WireRed WireFlags = 1 << iota
	WireBlue
	WireGreen
	WireYellow
	WireActuator
	WireActiveActuator
)

func (f WireFlags) String() string {
	var opt []string
	if f&WireRed != 0 {
		opt = append(opt, "Red")
	}
	if f&WireBlue != 0 {
		opt = append(opt, "Blue")
	}
	if f&WireGreen != 0 {
		opt = append(opt, "Green")
	}
	if f&WireYellow != 0 {
		opt = append(opt, "Yellow")
	}
	if f&WireActuator != 0 {
		opt = append(opt, "Actuator")
	}
	if f&WireActiveActuator != 0 {
		opt = append(opt, "ActiveActuator")
	}
	return strings.Join(opt, "|")
}

// Has reports whether every bit in what is set in f.
func (f WireFlags) Has(what WireFlags) bool {
	return f&what == what
}
