package wld

// TileMatrix is the owned width×height grid of Tile, stored column-major
// to match the on-disk record order (tilefuncs.c iterates x outer, y inner).
type TileMatrix struct {
	Width  int32
	Height int32
	cells  []Tile // len == Width*Height, index (x*Height + y)
}

// NewTileMatrix allocates a matrix of the given dimensions with every cell
// defaulted (tile/wall id -1, everything else zero).
func NewTileMatrix(width, height int32) *TileMatrix {
	m := &TileMatrix{Width: width, Height: height, cells: make([]Tile, int(width)*int(height))}
	def := defaultTile()
	for i := range m.cells {
		m.cells[i] = def
	}
	return m
}

func defaultTile() Tile {
	return Tile{Tile: -1, Wall: -1}
}

// At returns the tile at column x, row y.
func (m *TileMatrix) At(x, y int32) Tile {
	return m.cells[int(x)*int(m.Height)+int(y)]
}

// Set replaces the tile at column x, row y.
func (m *TileMatrix) Set(x, y int32, t Tile) {
	m.cells[int(x)*int(m.Height)+int(y)] = t
}

func tileEqual(a, b Tile) bool {
	return a == b
}

func important(uvs []byte, id int32) bool {
	if id < 0 {
		return false
	}
	idx := id / 8
	if int(idx) >= len(uvs) {
		return false
	}
	return uvs[idx]&(1<<uint(id%8)) != 0
}

// ParseTileMatrix decodes the tile-data section beginning at c's current
// position, per the record layout documented for the hot path: a cascade of
// up to four dispatch bytes selects which fields the record carries, then a
// u8 or i16 run-length count replicates the decoded tile down the column.
func ParseTileMatrix(c *ByteCursor, width, height int32, uvs []byte, sectionEnd int, log *Logger) (*TileMatrix, error) {
	m := NewTileMatrix(width, height)

	for x := int32(0); x < width; x++ {
		y := int32(0)
		for y < height {
			if c.Pos() >= sectionEnd {
				return nil, newErr(SectionOverrun, "ParseTileMatrix", nil)
			}

			active, err := c.ReadU8()
			if err != nil {
				return nil, err
			}

			var low, high, extra byte
			if Bit(active, 0) {
				low, err = c.ReadU8()
				if err != nil {
					return nil, err
				}
				if Bit(low, 0) {
					high, err = c.ReadU8()
					if err != nil {
						return nil, err
					}
					if Bit(high, 0) {
						extra, err = c.ReadU8()
						if err != nil {
							return nil, err
						}
					}
				}
			}
			_ = extra

			t := defaultTile()

			if Bit(active, 1) {
				var id int32
				if Bit(active, 5) {
					v, err := c.ReadU16()
					if err != nil {
						return nil, err
					}
					id = int32(v)
				} else {
					v, err := c.ReadU8()
					if err != nil {
						return nil, err
					}
					id = int32(v)
				}
				t.Tile = int16(id)
				if important(uvs, id) {
					u, err := c.ReadI16()
					if err != nil {
						return nil, err
					}
					v, err := c.ReadI16()
					if err != nil {
						return nil, err
					}
					t.U, t.V = u, v
				}
				if Bit(high, 3) {
					p, err := c.ReadU8()
					if err != nil {
						return nil, err
					}
					t.TilePaint = p
				}
			}

			if Bit(active, 2) {
				wallID, err := c.ReadU8()
				if err != nil {
					return nil, err
				}
				t.Wall = int16(wallID)
				if Bit(high, 4) {
					p, err := c.ReadU8()
					if err != nil {
						return nil, err
					}
					t.WallPaint = p
				}
			}

			if Field(active, 4, 3) != 0 {
				var lt LiquidType
				if Bit(high, 7) {
					lt = LiquidShimmer
				} else {
					lt = LiquidType(Field(active, 4, 3))
				}
				amt, err := c.ReadU8()
				if err != nil {
					return nil, err
				}
				t.LiquidType = lt
				t.LiquidAmt = amt
			}

			var wiring WireFlags
			if Bit(low, 1) {
				wiring |= WireRed
			}
			if Bit(low, 2) {
				wiring |= WireBlue
			}
			if Bit(low, 3) {
				wiring |= WireGreen
			}
			if Field(low, 6, 4) != 0 {
				t.Orientation = TileOrientation(Field(low, 6, 4))
			}
			if Bit(high, 1) {
				wiring |= WireActuator
			}
			if Bit(high, 2) {
				wiring |= WireActiveActuator
			}
			if Bit(high, 5) {
				wiring |= WireYellow
			}
			if Bit(high, 6) {
				ext, err := c.ReadU8()
				if err != nil {
					return nil, err
				}
				t.Wall |= int16(ext) << 8
			}
			t.Wiring = wiring

			var copies int32
			switch Field(active, 7, 6) {
			case 1:
				v, err := c.ReadU8()
				if err != nil {
					return nil, err
				}
				copies = int32(v)
			case 2:
				v, err := c.ReadU16()
				if err != nil {
					return nil, err
				}
				copies = int32(v)
			}

			for i := int32(0); y+i < height && i <= copies; i++ {
				m.Set(x, y+i, t)
			}
			y += copies + 1
		}
	}

	return m, nil
}

// WriteTileMatrix encodes m into c using the same record layout ParseTileMatrix
// understands, grouping runs of tile-equal cells within a column into a
// single record with the minimal run-length width.
func WriteTileMatrix(c *ByteCursor, m *TileMatrix, uvs []byte) {
	for x := int32(0); x < m.Width; x++ {
		y := int32(0)
		for y < m.Height {
			t := m.At(x, y)

			run := int32(0)
			for y+run+1 < m.Height && tileEqual(m.At(x, y+run+1), t) {
				run++
			}

			var high, low, active byte

			hasTile := t.Tile != -1
			hasWall := t.Wall != -1
			hasLiquid := t.LiquidType != LiquidNone
			wide16 := hasTile && uint16(t.Tile) > 0xFF

			if t.TilePaint != 0 {
				high = SetField(high, 3, 3, 1)
			}
			if t.WallPaint != 0 {
				high = SetField(high, 4, 4, 1)
			}
			if t.Wiring.Has(WireActuator) {
				high = SetField(high, 1, 1, 1)
			}
			if t.Wiring.Has(WireActiveActuator) {
				high = SetField(high, 2, 2, 1)
			}
			if t.Wiring.Has(WireYellow) {
				high = SetField(high, 5, 5, 1)
			}
			if t.LiquidType == LiquidShimmer {
				high = SetField(high, 7, 7, 1)
			}
			extendedWall := hasWall && uint16(t.Wall) > 0xFF
			if extendedWall {
				high = SetField(high, 6, 6, 1)
			}

			if high != 0 {
				low = SetField(low, 0, 0, 1)
			}
			if t.Wiring.Has(WireRed) {
				low = SetField(low, 1, 1, 1)
			}
			if t.Wiring.Has(WireBlue) {
				low = SetField(low, 2, 2, 1)
			}
			if t.Wiring.Has(WireGreen) {
				low = SetField(low, 3, 3, 1)
			}
			if t.Orientation != TileOrientationNone {
				low = SetField(low, 6, 4, byte(t.Orientation))
			}

			if low != 0 {
				active = SetField(active, 0, 0, 1)
			}
			if hasTile {
				active = SetField(active, 1, 1, 1)
			}
			if hasWall {
				active = SetField(active, 2, 2, 1)
			}
			if hasLiquid {
				lt := t.LiquidType
				if lt == LiquidShimmer {
					// The type comes from high.bit7; the active bits only need
					// to be nonzero so the parser reads the amount byte.
					lt = LiquidWater
				}
				active = SetField(active, 4, 3, byte(lt))
			}
			if wide16 {
				active = SetField(active, 5, 5, 1)
			}

			var widthSel byte
			switch {
			case run == 0:
				widthSel = 0
			case run <= 0xFF:
				widthSel = 1
			default:
				widthSel = 2
			}
			active = SetField(active, 7, 6, widthSel)

			c.WriteU8(active)
			if low != 0 {
				c.WriteU8(low)
				if high != 0 {
					c.WriteU8(high)
				}
			}

			if hasTile {
				id := int32(uint16(t.Tile))
				if wide16 {
					c.WriteU16(uint16(id))
				} else {
					c.WriteU8(uint8(id))
				}
				if important(uvs, id) {
					c.WriteI16(t.U)
					c.WriteI16(t.V)
				}
				if t.TilePaint != 0 {
					c.WriteU8(t.TilePaint)
				}
			}

			if hasWall {
				c.WriteU8(uint8(t.Wall & 0xFF))
				if t.WallPaint != 0 {
					c.WriteU8(t.WallPaint)
				}
			}

			if hasLiquid {
				c.WriteU8(t.LiquidAmt)
			}

			if extendedWall {
				c.WriteU8(uint8((t.Wall >> 8) & 0xFF))
			}

			switch widthSel {
			case 1:
				c.WriteU8(uint8(run))
			case 2:
				c.WriteU16(uint16(run))
			}

			y += run + 1
		}
	}
}
