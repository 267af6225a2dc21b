package wld

// Item is a single chest inventory slot.
type Item struct {
	Stack  int16
	ID     int32
	Prefix uint8
}

// Chest is a placed storage container with a fixed 40-slot inventory.
type Chest struct {
	X, Y  int32
	Name  string
	Items [40]Item
}

// ParseChests decodes the chests section (index 2).
func ParseChests(c *ByteCursor) ([]Chest, error) {
	count, err := c.ReadI16()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseChests.count", err)
	}
	itemsPerChest, err := c.ReadI16()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseChests.itemsPerChest", err)
	}

	chests := make([]Chest, count)
	for i := range chests {
		ch := &chests[i]
		if ch.X, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if ch.Y, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if ch.Name, err = ParseString(c); err != nil {
			return nil, newErr(UnexpectedEof, "ParseChests.name", err)
		}

		n := int(itemsPerChest)
		if n > 40 {
			n = 40
		}
		for j := 0; j < n; j++ {
			stack, err := c.ReadI16()
			if err != nil {
				return nil, err
			}
			if stack == 0 {
				continue
			}
			ch.Items[j].Stack = stack
			if ch.Items[j].ID, err = c.ReadI32(); err != nil {
				return nil, err
			}
			if ch.Items[j].Prefix, err = c.ReadU8(); err != nil {
				return nil, err
			}
		}
		// Slots beyond index 40 on disk are discarded.
		if extra := int(itemsPerChest) - 40; extra > 0 {
			if _, err := c.ReadBytes(extra * 7); err != nil {
				return nil, newErr(UnexpectedEof, "ParseChests.overflowSlots", err)
			}
		}
	}
	return chests, nil
}

// WriteChests encodes chests with a fixed 40-slot-per-chest layout,
// matching write_chests's hard-coded item_count.
func WriteChests(c *ByteCursor, chests []Chest) {
	c.WriteI16(int16(len(chests)))
	c.WriteI16(40)
	for _, ch := range chests {
		c.WriteI32(ch.X)
		c.WriteI32(ch.Y)
		EmitString(c, ch.Name)
		for j := 0; j < 40; j++ {
			item := ch.Items[j]
			if item.Stack == 0 {
				c.WriteI16(0)
				continue
			}
			c.WriteI16(item.Stack)
			c.WriteI32(item.ID)
			c.WriteU8(item.Prefix)
		}
	}
}

// Sign is a placed sign or its text-bearing equivalents (tombstones etc).
type Sign struct {
	Text string
	X, Y int32
}

func ParseSigns(c *ByteCursor) ([]Sign, error) {
	count, err := c.ReadI16()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseSigns.count", err)
	}
	signs := make([]Sign, count)
	for i := range signs {
		if signs[i].Text, err = ParseString(c); err != nil {
			return nil, newErr(UnexpectedEof, "ParseSigns.text", err)
		}
		if signs[i].X, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if signs[i].Y, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}
	return signs, nil
}

func WriteSigns(c *ByteCursor, signs []Sign) {
	c.WriteI16(int16(len(signs)))
	for _, s := range signs {
		EmitString(c, s.Text)
		c.WriteI32(s.X)
		c.WriteI32(s.Y)
	}
}

// NPC is a town NPC or pet entry. Pets (pre-1.4 "pet" slots) only carry
// ID/X/Y; Name/Homeless/HomeX/HomeY/Variation are zero for them.
type NPC struct {
	IsPet     bool
	ID        int32
	Name      string
	X, Y      float32
	Homeless  bool
	HomeX     int32
	HomeY     int32
	Variation int32
}

// ParseNPCs decodes the NPCs+pets section (index 4), including the v268+
// shimmered-NPC id table that precedes the NPC list.
func ParseNPCs(c *ByteCursor, version uint32) (shimmered []int32, npcs []NPC, err error) {
	if version >= 268 {
		n, err := c.ReadI32()
		if err != nil {
			return nil, nil, err
		}
		if shimmered, err = c.ReadI32Array(int(n)); err != nil {
			return nil, nil, newErr(UnexpectedEof, "ParseNPCs.shimmered", err)
		}
	}

	cont, err := c.ReadU8()
	if err != nil {
		return nil, nil, err
	}
	for cont != 0 {
		var n NPC
		if version < 190 {
			return nil, nil, newErr(UnsupportedSubfield, "ParseNPCs.npc", nil)
		}
		if n.ID, err = c.ReadI32(); err != nil {
			return nil, nil, err
		}
		if n.Name, err = ParseString(c); err != nil {
			return nil, nil, newErr(UnexpectedEof, "ParseNPCs.name", err)
		}
		if n.X, err = c.ReadF32(); err != nil {
			return nil, nil, err
		}
		if n.Y, err = c.ReadF32(); err != nil {
			return nil, nil, err
		}
		h, err := c.ReadU8()
		if err != nil {
			return nil, nil, err
		}
		n.Homeless = h != 0
		if n.HomeX, err = c.ReadI32(); err != nil {
			return nil, nil, err
		}
		if n.HomeY, err = c.ReadI32(); err != nil {
			return nil, nil, err
		}
		variant, err := c.ReadU8()
		if err != nil {
			return nil, nil, err
		}
		if version >= 213 && Bit(variant, 0) {
			if n.Variation, err = c.ReadI32(); err != nil {
				return nil, nil, err
			}
		}
		npcs = append(npcs, n)
		if cont, err = c.ReadU8(); err != nil {
			return nil, nil, err
		}
	}

	if version < 140 {
		return shimmered, npcs, nil
	}

	if cont, err = c.ReadU8(); err != nil {
		return nil, nil, err
	}
	for cont != 0 {
		var p NPC
		p.IsPet = true
		if version < 190 {
			return nil, nil, newErr(UnsupportedSubfield, "ParseNPCs.pet", nil)
		}
		if p.ID, err = c.ReadI32(); err != nil {
			return nil, nil, err
		}
		if p.X, err = c.ReadF32(); err != nil {
			return nil, nil, err
		}
		if p.Y, err = c.ReadF32(); err != nil {
			return nil, nil, err
		}
		npcs = append(npcs, p)
		if cont, err = c.ReadU8(); err != nil {
			return nil, nil, err
		}
	}

	return shimmered, npcs, nil
}

// WriteNPCs encodes the shimmer table (v268+), NPC list, and pet list.
func WriteNPCs(c *ByteCursor, version uint32, shimmered []int32, npcs []NPC) {
	if version >= 268 {
		c.WriteI32(int32(len(shimmered)))
		c.WriteI32Array(shimmered)
	}

	for _, n := range npcs {
		if n.IsPet {
			continue
		}
		c.WriteU8(1)
		c.WriteI32(n.ID)
		EmitString(c, n.Name)
		c.WriteF32(n.X)
		c.WriteF32(n.Y)
		writeBool(c, n.Homeless)
		c.WriteI32(n.HomeX)
		c.WriteI32(n.HomeY)
		if version >= 213 && n.Variation != 0 {
			c.WriteU8(1)
			c.WriteI32(n.Variation)
		} else {
			c.WriteU8(0)
		}
	}
	c.WriteU8(0)

	if version < 140 {
		return
	}

	hasPets := false
	for _, n := range npcs {
		if n.IsPet {
			hasPets = true
			break
		}
	}
	if !hasPets {
		c.WriteU8(0)
		return
	}
	for _, n := range npcs {
		if !n.IsPet {
			continue
		}
		c.WriteU8(1)
		c.WriteI32(n.ID)
		c.WriteF32(n.X)
		c.WriteF32(n.Y)
	}
	c.WriteU8(0)
}

// TileEntity is a logic-block entity (training dummy, item frame, weapon
// rack, food plate, logic sensor, ...), keyed by Kind.
type TileEntity struct {
	Kind  uint8
	Inner int32
	X, Y  int16
}

func ParseTileEntities(c *ByteCursor) ([]TileEntity, error) {
	count, err := c.ReadI32()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseTileEntities.count", err)
	}
	ents := make([]TileEntity, count)
	for i := range ents {
		if ents[i].Kind, err = c.ReadU8(); err != nil {
			return nil, err
		}
		if ents[i].Inner, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if ents[i].X, err = c.ReadI16(); err != nil {
			return nil, err
		}
		if ents[i].Y, err = c.ReadI16(); err != nil {
			return nil, err
		}
	}
	return ents, nil
}

func WriteTileEntities(c *ByteCursor, ents []TileEntity) {
	c.WriteI32(int32(len(ents)))
	for _, e := range ents {
		c.WriteU8(e.Kind)
		c.WriteI32(e.Inner)
		c.WriteI16(e.X)
		c.WriteI16(e.Y)
	}
}

// PressurePlate is a placed logic pressure plate. Some releases of the
// host format carry i32 coordinates here instead of i16; the version
// parameter is threaded through so a future fork point has somewhere to
// attach without changing the call signature (see DESIGN.md's resolution
// of the pressure-plate coordinate width open question — every supported
// version in this package reads i16, matching the source).
type PressurePlate struct {
	X, Y int32
}

func ParsePressurePlates(c *ByteCursor, version uint32) ([]PressurePlate, error) {
	count, err := c.ReadI32()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParsePressurePlates.count", err)
	}
	plates := make([]PressurePlate, count)
	for i := range plates {
		x, err := c.ReadI16()
		if err != nil {
			return nil, err
		}
		y, err := c.ReadI16()
		if err != nil {
			return nil, err
		}
		plates[i].X, plates[i].Y = int32(x), int32(y)
	}
	return plates, nil
}

func WritePressurePlates(c *ByteCursor, version uint32, plates []PressurePlate) {
	c.WriteI32(int32(len(plates)))
	for _, p := range plates {
		c.WriteI16(int16(p.X))
		c.WriteI16(int16(p.Y))
	}
}

// TownElement records a named NPC's town-room assignment.
type TownElement struct {
	ID   int32
	X, Y int32
}

func ParseTownElements(c *ByteCursor) ([]TownElement, error) {
	count, err := c.ReadI32()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseTownElements.count", err)
	}
	elems := make([]TownElement, count)
	for i := range elems {
		if elems[i].ID, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if elems[i].X, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if elems[i].Y, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}
	return elems, nil
}

func WriteTownElements(c *ByteCursor, elems []TownElement) {
	c.WriteI32(int32(len(elems)))
	for _, e := range elems {
		c.WriteI32(e.ID)
		c.WriteI32(e.X)
		c.WriteI32(e.Y)
	}
}

// Kill is a per-creature bestiary kill counter.
type Kill struct {
	Name string
	Val  int32
}

// Bestiary is the game-side kill/sighting/chat log persisted per world.
type Bestiary struct {
	Kills    []Kill
	Trackers []string
	Chatters []string
}

func ParseBestiary(c *ByteCursor) (*Bestiary, error) {
	b := &Bestiary{}

	n, err := c.ReadI32()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseBestiary.killCount", err)
	}
	b.Kills = make([]Kill, n)
	for i := range b.Kills {
		if b.Kills[i].Name, err = ParseString(c); err != nil {
			return nil, newErr(UnexpectedEof, "ParseBestiary.killName", err)
		}
		if b.Kills[i].Val, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}

	n, err = c.ReadI32()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseBestiary.trackerCount", err)
	}
	b.Trackers = make([]string, n)
	for i := range b.Trackers {
		if b.Trackers[i], err = ParseString(c); err != nil {
			return nil, newErr(UnexpectedEof, "ParseBestiary.tracker", err)
		}
	}

	n, err = c.ReadI32()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseBestiary.chatterCount", err)
	}
	b.Chatters = make([]string, n)
	for i := range b.Chatters {
		if b.Chatters[i], err = ParseString(c); err != nil {
			return nil, newErr(UnexpectedEof, "ParseBestiary.chatter", err)
		}
	}

	return b, nil
}

func WriteBestiary(c *ByteCursor, b *Bestiary) {
	c.WriteI32(int32(len(b.Kills)))
	for _, k := range b.Kills {
		EmitString(c, k.Name)
		c.WriteI32(k.Val)
	}

	c.WriteI32(int32(len(b.Trackers)))
	for _, t := range b.Trackers {
		EmitString(c, t)
	}

	c.WriteI32(int32(len(b.Chatters)))
	for _, ch := range b.Chatters {
		EmitString(c, ch)
	}
}

// defaultCreativePowers is the literal 31-byte creative-powers blob the
// source synthesizes for a brand-new world (wld_new).
var defaultCreativePowers = []byte{
	0x01, 0x00, 0x00, 0x00, 0x01, 0x08, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x01, 0x09, 0x00, 0x00, 0x01,
	0x0a, 0x00, 0x00, 0x01, 0x0c, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x01, 0x0d, 0x00, 0x00, 0x00,
}

// ParseCreativePowers captures the bytes from the current position up to
// offset end as an opaque blob, preserved byte-for-byte on write.
func ParseCreativePowers(c *ByteCursor, end int) ([]byte, error) {
	n := end - c.Pos()
	if n < 0 {
		return nil, newErr(SectionOverrun, "ParseCreativePowers", nil)
	}
	return c.ReadBytes(n)
}

func WriteCreativePowers(c *ByteCursor, blob []byte) {
	c.WriteBytes(blob)
}
