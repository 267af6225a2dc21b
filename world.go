package wld

import (
	"io"

	"github.com/google/renameio"
)

// supportedVersions is the allow-list Open checks a world's version
// against by default, extendable via WithAllowedVersions. 279 is the
// current release format; 244-246 cover the older pre-1.4 saves the
// reference implementation was built against.
var supportedVersions = []uint32{244, 245, 246, 279}

// State is World's lifecycle stage.
type State int

const (
	StateUnloaded State = iota
	StateLoaded
	StateDirty
	StateWritten
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "Unloaded"
	case StateLoaded:
		return "Loaded"
	case StateDirty:
		return "Dirty"
	case StateWritten:
		return "Written"
	default:
		return "Unknown"
	}
}

// World is a fully decoded (or freshly generated) save, owning every
// section's data and able to re-serialize itself byte-for-byte when
// nothing has been mutated.
type World struct {
	state State
	log   *Logger

	Info   *InfoHeader
	Header *Header
	Tiles  *TileMatrix

	Chests          []Chest
	Signs           []Sign
	ShimmeredNPCIDs []int32
	NPCs            []NPC
	TileEntities    []TileEntity
	PressurePlates  []PressurePlate
	TownElements    []TownElement
	Bestiary        *Bestiary
	CreativePowers  []byte
}

// Open decodes path into a World, dispatching InfoHeader -> Header ->
// TileMatrix -> each auxiliary section in declared order, skipping the
// tile-entity, pressure-plate, town-element and bestiary sections when the
// world's version or section count does not carry them.
func Open(path string, opts ...OpenOption) (*World, error) {
	cfg := defaultOpenConfig()
	for _, o := range opts {
		o(cfg)
	}

	c, err := OpenCursor(path)
	if err != nil {
		return nil, err
	}
	return openCursor(c, cfg)
}

func openCursor(c *ByteCursor, cfg *openConfig) (*World, error) {
	info, err := ParseInfoHeader(c)
	if err != nil {
		return nil, newErr(IoError, "Open.infoHeader", err)
	}

	if !cfg.allowed[info.Version] {
		cfg.log.Warn("world version %d is not in the allowed set", info.Version)
		return nil, newErr(UnsupportedVersion, "Open", nil)
	}

	header, err := ParseHeader(c, info.Version)
	if err != nil {
		return nil, newErr(IoError, "Open.header", err)
	}

	w := &World{state: StateLoaded, log: cfg.log, Info: info, Header: header}

	tileEnd := sectionEnd(info, 2)
	tiles, err := ParseTileMatrix(c, header.Width, header.Height, info.Uvs, tileEnd, cfg.log)
	if err != nil {
		return nil, newErr(IoError, "Open.tiles", err)
	}
	w.Tiles = tiles
	w.reseekTo(c, tileEnd)

	w.Chests, err = ParseChests(c)
	if err != nil {
		return nil, newErr(IoError, "Open.chests", err)
	}
	w.reseekTo(c, sectionEnd(info, 3))

	w.Signs, err = ParseSigns(c)
	if err != nil {
		return nil, newErr(IoError, "Open.signs", err)
	}
	w.reseekTo(c, sectionEnd(info, 4))

	w.ShimmeredNPCIDs, w.NPCs, err = ParseNPCs(c, info.Version)
	if err != nil {
		return nil, newErr(IoError, "Open.npcs", err)
	}
	w.reseekTo(c, sectionEnd(info, 5))

	if info.Version >= 116 && len(info.Sections) > 6 {
		w.TileEntities, err = ParseTileEntities(c)
		if err != nil {
			return nil, newErr(IoError, "Open.tileEntities", err)
		}
		w.reseekTo(c, sectionEnd(info, 6))
	}

	if info.Version >= 170 && len(info.Sections) > 7 {
		w.PressurePlates, err = ParsePressurePlates(c, info.Version)
		if err != nil {
			return nil, newErr(IoError, "Open.pressurePlates", err)
		}
		w.reseekTo(c, sectionEnd(info, 7))
	}

	if info.Version >= 189 && len(info.Sections) > 8 {
		w.TownElements, err = ParseTownElements(c)
		if err != nil {
			return nil, newErr(IoError, "Open.townElements", err)
		}
		w.reseekTo(c, sectionEnd(info, 8))
	}

	if info.Version >= 210 && len(info.Sections) > 9 {
		w.Bestiary, err = ParseBestiary(c)
		if err != nil {
			return nil, newErr(IoError, "Open.bestiary", err)
		}
		w.reseekTo(c, sectionEnd(info, 9))
	}

	w.CreativePowers, err = ParseCreativePowers(c, sectionEnd(info, 10))
	if err != nil {
		cfg.log.Warn("failed to capture creative-powers blob: %v", err)
	}

	return w, nil
}

// sectionEnd returns the offset at which section index ends (the start of
// the next section), or 1<<30 (no effective bound) if the offset table
// doesn't carry that many entries.
func sectionEnd(info *InfoHeader, index int) int {
	if index < len(info.Sections) {
		return int(info.Sections[index])
	}
	return 1 << 30
}

// reseekTo enforces the cross-section consistency rule: if the cursor
// doesn't land exactly on want, warn and reseek rather than fail outright.
func (w *World) reseekTo(c *ByteCursor, want int) {
	if c.Pos() == want {
		return
	}
	if c.Pos() > want {
		w.log.Warn("section overran expected boundary (%d > %d)", c.Pos(), want)
	} else {
		w.log.Warn("section underran expected boundary (%d < %d)", c.Pos(), want)
	}
	c.Seek(want)
}

// New constructs an empty world of the given dimensions, optionally handing
// tile-matrix population off to a Generator (see worldgen.go). Without one,
// every tile stays at its empty default (tile and wall id -1).
func New(width, height int32, name, seed string, opts ...NewOption) (*World, error) {
	cfg := defaultNewConfig()
	for _, o := range opts {
		o(cfg)
	}

	var seedInt int32
	if n, ok := parseSeedInt(seed); ok {
		seedInt = n
	} else {
		seedInt = int32(Crc32([]byte(seed)))
	}

	info := &InfoHeader{
		Version:  279,
		WorldType: 0,
		NumSections: 11,
		Sections:  make([]int32, 11),
		TileMask:  0,
		Uvs:       []byte{},
	}
	copy(info.Sig[:], []byte("relogic"))

	header := &Header{
		Version: info.Version,
		Name:    name,
		Seed:    seed,
		Width:   width,
		Height:  height,
	}

	w := &World{
		state:          StateDirty,
		log:            cfg.log,
		Info:           info,
		Header:         header,
		Tiles:          NewTileMatrix(width, height),
		Bestiary:       &Bestiary{},
		CreativePowers: append([]byte(nil), defaultCreativePowers...),
	}

	if cfg.generator != nil {
		if err := cfg.generator.Generate(w, seedInt); err != nil {
			return nil, newErr(InvariantViolation, "New.generate", err)
		}
	}

	return w, nil
}

func parseSeedInt(seed string) (int32, bool) {
	if seed == "" {
		return 0, false
	}
	var n int64
	neg := false
	i := 0
	if seed[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(seed) {
		return 0, false
	}
	for ; i < len(seed); i++ {
		d := seed[i]
		if d < '0' || d > '9' {
			return 0, false
		}
		n = n*10 + int64(d-'0')
	}
	if neg {
		n = -n
	}
	if n == 0 {
		return 0, false
	}
	return int32(n), true
}

// Write serializes the world and atomically replaces path's contents,
// recomputing the section offset table from each section's actual
// encoded length rather than trusting whatever was read from disk.
func (w *World) Write(path string) error {
	sections := make([][]byte, 11)

	headerC := NewWriteCursor()
	WriteHeader(headerC, w.Header)
	sections[1] = headerC.Bytes()

	tilesC := NewWriteCursor()
	WriteTileMatrix(tilesC, w.Tiles, w.Info.Uvs)
	sections[2] = tilesC.Bytes()

	chestsC := NewWriteCursor()
	WriteChests(chestsC, w.Chests)
	sections[3] = chestsC.Bytes()

	signsC := NewWriteCursor()
	WriteSigns(signsC, w.Signs)
	sections[4] = signsC.Bytes()

	npcsC := NewWriteCursor()
	WriteNPCs(npcsC, w.Info.Version, w.ShimmeredNPCIDs, w.NPCs)
	sections[5] = npcsC.Bytes()

	tileEntitiesC := NewWriteCursor()
	WriteTileEntities(tileEntitiesC, w.TileEntities)
	sections[6] = tileEntitiesC.Bytes()

	platesC := NewWriteCursor()
	WritePressurePlates(platesC, w.Info.Version, w.PressurePlates)
	sections[7] = platesC.Bytes()

	townC := NewWriteCursor()
	WriteTownElements(townC, w.TownElements)
	sections[8] = townC.Bytes()

	bestiary := w.Bestiary
	if bestiary == nil {
		bestiary = &Bestiary{}
	}
	bestiaryC := NewWriteCursor()
	WriteBestiary(bestiaryC, bestiary)
	sections[9] = bestiaryC.Bytes()

	powers := w.CreativePowers
	if powers == nil {
		powers = defaultCreativePowers
	}
	sections[10] = powers

	offsets := make([]int32, 11)
	total := int32(0)
	infoLen := infoHeaderLen(w.Info)
	total += infoLen
	offsets[0] = total
	for i := 1; i < 11; i++ {
		total += int32(len(sections[i]))
		offsets[i] = total
	}

	w.Info.Sections = offsets
	w.Info.NumSections = int16(len(offsets))

	out := NewWriteCursor()
	WriteInfoHeader(out, w.Info)
	for i := 1; i < 11; i++ {
		out.WriteBytes(sections[i])
	}

	footerC := NewWriteCursor()
	footerC.WriteU8(1)
	EmitString(footerC, w.Header.Name)
	footerC.WriteI32(w.Header.ID)
	out.WriteBytes(footerC.Bytes())

	if err := renameio.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return newErr(IoError, "World.Write", err)
	}

	w.state = StateWritten
	return nil
}

func infoHeaderLen(h *InfoHeader) int32 {
	c := NewWriteCursor()
	WriteInfoHeader(c, h)
	return int32(c.Len())
}

// Close releases resources held by the world (currently a no-op, since
// wldgo keeps everything in owned Go slices rather than C heap
// allocations, but kept for symmetry with the source's wld_free and to
// give callers a stable defer target).
func (w *World) Close() error {
	w.state = StateUnloaded
	return nil
}

var _ io.Closer = (*World)(nil)
