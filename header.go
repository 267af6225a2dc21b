package wld

// Rect is a four-corner integer bounding box (rect_t).
type Rect struct {
	X0, X, Y0, Y int32
}

// Header is the world's metadata block: spawn state, world generation
// flags, boss/event progress, and the decorative "style" selections,
// parsed immediately after the InfoHeader (wld_header_t).
//
// Parse and Write execute the identical linear field script gated on
// Header.Version; this is what guarantees round-trip fidelity across the
// ~279 versions the format has shipped.
type Header struct {
	Version uint32

	Name          string
	Seed          string
	GeneratorVer  int64
	Guid          [16]byte
	ID            int32
	Bounds        Rect
	Height        int32
	Width         int32
	GameMode      int32
	Drunk         bool
	Ftw           bool
	Tenth         bool
	DontStarve    bool
	Bees          bool
	Remix         bool
	NoTraps       bool
	Zenith        bool
	CreationTime  int64
	MoonType      uint8
	TreeX         [3]int32
	TreeStyles    [4]int32
	CaveBackX     [3]int32
	CaveBackStyle [4]int32
	IceBackStyle  int32
	JungleBackStyle int32
	HellBackStyle   int32
	SpawnX, SpawnY  int32
	GroundLevel     float64
	RockLevel       float64
	Time            float64
	Day             bool
	MoonPhase       int32
	BloodMoon       bool
	Eclipse         bool
	DungeonX, DungeonY int32
	Crimson            bool
	KillEoc            bool
	KillEvilBoss       bool
	KillSkeletron      bool
	KillQueenBee       bool
	KillDestroyer      bool
	KillTwins          bool
	KillSkeletronPrime bool
	KillHmBoss         bool
	KillPlantera       bool
	KillGolem          bool
	KillKingSlime      bool
	SavedTinkerer      bool
	SavedWizard        bool
	SavedMechanic      bool
	KillGoblin         bool
	KillClown          bool
	KillFrost          bool
	KillPirate         bool
	BrokeOrb           bool
	Meteor             bool
	OrbSmashed         bool
	AltarCount         int32
	Hardmode           bool
	AfterDoomParty     bool
	InvasionDelay      int32
	InvasionSize       int32
	InvasionType       int32
	InvasionX          float64
	SlimeRainTime      float64
	SundialCooldown    bool
	IsRaining          bool
	RainTime           int32
	MaxRain            float32
	OreTier1           int32
	OreTier2           int32
	OreTier3           int32
	TreeStyle          uint8
	CorruptionStyle    uint8
	JungleStyle        uint8
	SnowStyle          uint8
	HallowStyle        uint8
	CrimsonStyle       uint8
	DesertStyle        uint8
	OceanStyle         uint8
	CloudBg            int32
	NumClouds          int16
	WindSpeed          float32
	PlayerNames        []string
	SavedAngler        bool
	AnglerQuest        int32
	SavedStylist       bool
	SavedTaxCollector  bool
	SavedGolfer        bool
	InvasionStartSize  int32
	CultistDelay       int32
	KillCounts         []int32
	FastForwardTime    bool
	KillFishron        bool
	KillMartian        bool
	KillCultist        bool
	KillMoonlord       bool
	KillPumpking       bool
	KillWood           bool
	KillIceQueen       bool
	KillTank           bool
	KillEverscream     bool
	KillSolar          bool
	KillVortex         bool
	KillNebula         bool
	KillStardust       bool
	ActiveSolar        bool
	ActiveVortex       bool
	ActiveNebula       bool
	ActiveStardust     bool
	ActiveLunar        bool
	ManualParty        bool
	InviteParty        bool
	PartyCooldown      int32
	Partiers           []int32
	ActiveSandstorm    bool
	SandstormTime      int32
	SandstormSeverity    float32
	SandstormMaxSeverity float32
	SavedBartender     bool
	KillDd2_1          bool
	KillDd2_2          bool
	KillDd2_3          bool
	Style8             bool
	Style9             bool
	Style10            bool
	Style11            bool
	Style12            bool
	CombatBook         bool
	LanternNightCooldown int32
	LanternNight          bool
	ManualLanternNight    bool
	NextLanternReal       bool
	TreeTops              []int32
	ForcedHalloween       bool
	ForcedChristmas       bool
	CopperID              int32
	IronID                int32
	SilverID              int32
	GoldID                int32
	BoughtCat             bool
	BoughtDog             bool
	BoughtBunny           bool
	KillEol               bool
	KillQueenSlime        bool
	KillDeer              bool
	BlueSlime             bool
	UnlockedMerchant      bool
	UnlockedDemo          bool
	UnlockedParty         bool
	UnlockedDye           bool
	UnlockedTruffle       bool
	UnlockedArmsDealer    bool
	UnlockedNurse         bool
	UnlockedPrincess      bool
	CombatBook2           bool
	PeddlerSatchel        bool
	GreenSlime            bool
	OldSlime              bool
	PurpleSlime           bool
	RainbowSlime          bool
	RedSlime              bool
	YellowSlime           bool
	CopperSlime           bool
	MoondialActive        bool
	MoondialCooldown      bool
}

// IsExpert reports whether the world's game mode is Expert or higher, per
// the version-209+ gamemode encoding (0 normal, 1 expert, 2 master, 3 journey).
func (h *Header) IsExpert() bool { return h.GameMode == 1 || h.GameMode == 2 }

// IsMaster reports whether the world's game mode is Master.
func (h *Header) IsMaster() bool { return h.GameMode == 2 }

// IsJourney reports whether the world's game mode is Journey (creative).
func (h *Header) IsJourney() bool { return h.GameMode == 3 }

func parseBool(c *ByteCursor) (bool, error) {
	v, err := c.ReadU8()
	return v != 0, err
}

func writeBool(c *ByteCursor, v bool) {
	if v {
		c.WriteU8(1)
	} else {
		c.WriteU8(0)
	}
}

// ParseHeader decodes the header block following the InfoHeader, as the
// single linear field script described on Header. version must be
// the InfoHeader's already-parsed version field.
func ParseHeader(c *ByteCursor, version uint32) (*Header, error) {
	h := &Header{Version: version}
	v := version

	var err error
	if h.Name, err = ParseString(c); err != nil {
		return nil, newErr(UnexpectedEof, "ParseHeader.name", err)
	}

	if v >= 179 {
		if h.Seed, err = ParseString(c); err != nil {
			return nil, newErr(UnexpectedEof, "ParseHeader.seed", err)
		}
		if h.GeneratorVer, err = c.ReadI64(); err != nil {
			return nil, newErr(UnexpectedEof, "ParseHeader.generatorVer", err)
		}
	}

	if v >= 181 {
		guid, err := c.ReadBytes(16)
		if err != nil {
			return nil, newErr(UnexpectedEof, "ParseHeader.guid", err)
		}
		copy(h.Guid[:], guid)
	}

	if h.ID, err = c.ReadI32(); err != nil {
		return nil, newErr(UnexpectedEof, "ParseHeader.id", err)
	}
	if h.Bounds.X0, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.Bounds.X, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.Bounds.Y0, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.Bounds.Y, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.Height, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.Width, err = c.ReadI32(); err != nil {
		return nil, err
	}

	if v >= 209 {
		if h.GameMode, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if v >= 222 {
			if h.Drunk, err = parseBool(c); err != nil {
				return nil, err
			}
		}
		if v >= 227 {
			if h.Ftw, err = parseBool(c); err != nil {
				return nil, err
			}
		}
		if v >= 238 {
			if h.Tenth, err = parseBool(c); err != nil {
				return nil, err
			}
		}
		if v >= 239 {
			if h.DontStarve, err = parseBool(c); err != nil {
				return nil, err
			}
		}
		if v >= 241 {
			if h.Bees, err = parseBool(c); err != nil {
				return nil, err
			}
		}
		if v >= 249 {
			if h.Remix, err = parseBool(c); err != nil {
				return nil, err
			}
		}
		if v >= 266 {
			if h.NoTraps, err = parseBool(c); err != nil {
				return nil, err
			}
		}
		if v >= 267 {
			if h.Zenith, err = parseBool(c); err != nil {
				return nil, err
			}
		} else {
			h.Zenith = h.Remix && h.Drunk
		}
	} else {
		if v >= 112 {
			gm, err := c.ReadU8()
			if err != nil {
				return nil, err
			}
			h.GameMode = int32(gm)
		} else {
			h.GameMode = 0
		}
		if v >= 208 {
			peek, err := c.PeekByte()
			if err != nil {
				return nil, err
			}
			if peek != 0 {
				h.GameMode = 2
			}
		}
	}

	if v >= 141 {
		if h.CreationTime, err = c.ReadI64(); err != nil {
			return nil, err
		}
	}
	if v >= 63 {
		if h.MoonType, err = c.ReadU8(); err != nil {
			return nil, err
		}
	}

	if v >= 44 {
		if h.TreeX[:], err = readI32Into(c, h.TreeX[:]); err != nil {
			return nil, err
		}
		if h.TreeStyles[:], err = readI32Into(c, h.TreeStyles[:]); err != nil {
			return nil, err
		}
	}

	if v >= 60 {
		if h.CaveBackX[:], err = readI32Into(c, h.CaveBackX[:]); err != nil {
			return nil, err
		}
		if h.CaveBackStyle[:], err = readI32Into(c, h.CaveBackStyle[:]); err != nil {
			return nil, err
		}
		if h.IceBackStyle, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}

	if v >= 61 {
		if h.JungleBackStyle, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if h.HellBackStyle, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}

	if h.SpawnX, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.SpawnY, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.GroundLevel, err = c.ReadF64(); err != nil {
		return nil, err
	}
	if h.RockLevel, err = c.ReadF64(); err != nil {
		return nil, err
	}
	if h.Time, err = c.ReadF64(); err != nil {
		return nil, err
	}
	if h.Day, err = parseBool(c); err != nil {
		return nil, err
	}
	if h.MoonPhase, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.BloodMoon, err = parseBool(c); err != nil {
		return nil, err
	}

	if v >= 63 {
		if h.Eclipse, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if h.DungeonX, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.DungeonY, err = c.ReadI32(); err != nil {
		return nil, err
	}

	if v >= 56 {
		if h.Crimson, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if h.KillEoc, err = parseBool(c); err != nil {
		return nil, err
	}
	if h.KillEvilBoss, err = parseBool(c); err != nil {
		return nil, err
	}
	if h.KillSkeletron, err = parseBool(c); err != nil {
		return nil, err
	}

	if v >= 66 {
		if h.KillQueenBee, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 44 {
		for _, p := range []*bool{&h.KillDestroyer, &h.KillTwins, &h.KillSkeletronPrime, &h.KillHmBoss} {
			if *p, err = parseBool(c); err != nil {
				return nil, err
			}
		}
	}

	if v >= 64 {
		if h.KillPlantera, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.KillGolem, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 118 {
		if h.KillKingSlime, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 29 {
		if h.SavedTinkerer, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.SavedWizard, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 34 {
		if h.SavedMechanic, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 29 {
		if h.KillGoblin, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 32 {
		if h.KillClown, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 37 {
		if h.KillFrost, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 56 {
		if h.KillPirate, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if h.BrokeOrb, err = parseBool(c); err != nil {
		return nil, err
	}
	if h.Meteor, err = parseBool(c); err != nil {
		return nil, err
	}
	if h.OrbSmashed, err = parseBool(c); err != nil {
		return nil, err
	}

	if v >= 23 {
		if h.AltarCount, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if h.Hardmode, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 257 {
		if h.AfterDoomParty, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if h.InvasionDelay, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.InvasionSize, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.InvasionType, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if h.InvasionX, err = c.ReadF64(); err != nil {
		return nil, err
	}

	if v >= 118 {
		if h.SlimeRainTime, err = c.ReadF64(); err != nil {
			return nil, err
		}
	}
	if v >= 113 {
		if h.SundialCooldown, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 53 {
		if h.IsRaining, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.RainTime, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if h.MaxRain, err = c.ReadF32(); err != nil {
			return nil, err
		}
	}

	if v >= 54 {
		if h.OreTier1, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if h.OreTier2, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if h.OreTier3, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}

	if v >= 55 {
		if h.TreeStyle, err = c.ReadU8(); err != nil {
			return nil, err
		}
		if h.CorruptionStyle, err = c.ReadU8(); err != nil {
			return nil, err
		}
		if h.JungleStyle, err = c.ReadU8(); err != nil {
			return nil, err
		}
	}

	if v >= 60 {
		if h.SnowStyle, err = c.ReadU8(); err != nil {
			return nil, err
		}
		if h.HallowStyle, err = c.ReadU8(); err != nil {
			return nil, err
		}
		if h.CrimsonStyle, err = c.ReadU8(); err != nil {
			return nil, err
		}
		if h.DesertStyle, err = c.ReadU8(); err != nil {
			return nil, err
		}
		if h.OceanStyle, err = c.ReadU8(); err != nil {
			return nil, err
		}
		if h.CloudBg, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}

	if v >= 62 {
		if h.NumClouds, err = c.ReadI16(); err != nil {
			return nil, err
		}
		if h.WindSpeed, err = c.ReadF32(); err != nil {
			return nil, err
		}
	}

	if v >= 95 {
		players, err := c.ReadI32()
		if err != nil {
			return nil, err
		}
		h.PlayerNames = make([]string, players)
		for i := range h.PlayerNames {
			if h.PlayerNames[i], err = ParseString(c); err != nil {
				return nil, newErr(UnexpectedEof, "ParseHeader.playerName", err)
			}
		}
	}

	if v >= 99 {
		if h.SavedAngler, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 101 {
		if h.AnglerQuest, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}
	if v >= 104 {
		if h.SavedStylist, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 129 {
		if h.SavedTaxCollector, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 201 {
		if h.SavedGolfer, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 107 {
		if h.InvasionStartSize, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}
	if v >= 108 {
		if h.CultistDelay, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}

	if v >= 109 {
		n, err := c.ReadI16()
		if err != nil {
			return nil, err
		}
		if h.KillCounts, err = c.ReadI32Array(int(n)); err != nil {
			return nil, newErr(UnexpectedEof, "ParseHeader.killCounts", err)
		}
	}

	if v >= 128 {
		if h.FastForwardTime, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 131 {
		for _, p := range []*bool{&h.KillFishron, &h.KillMartian, &h.KillCultist, &h.KillMoonlord,
			&h.KillPumpking, &h.KillWood, &h.KillIceQueen, &h.KillTank, &h.KillEverscream} {
			if *p, err = parseBool(c); err != nil {
				return nil, err
			}
		}
	}

	if v >= 140 {
		for _, p := range []*bool{&h.KillSolar, &h.KillVortex, &h.KillNebula, &h.KillStardust,
			&h.ActiveSolar, &h.ActiveVortex, &h.ActiveNebula, &h.ActiveStardust, &h.ActiveLunar} {
			if *p, err = parseBool(c); err != nil {
				return nil, err
			}
		}
	}

	if v >= 170 {
		if h.ManualParty, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.InviteParty, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.PartyCooldown, err = c.ReadI32(); err != nil {
			return nil, err
		}
		n, err := c.ReadI32()
		if err != nil {
			return nil, err
		}
		if h.Partiers, err = c.ReadI32Array(int(n)); err != nil {
			return nil, newErr(UnexpectedEof, "ParseHeader.partiers", err)
		}
	}

	if v >= 174 {
		if h.ActiveSandstorm, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.SandstormTime, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if h.SandstormSeverity, err = c.ReadF32(); err != nil {
			return nil, err
		}
		if h.SandstormMaxSeverity, err = c.ReadF32(); err != nil {
			return nil, err
		}
	}

	if v >= 178 {
		for _, p := range []*bool{&h.SavedBartender, &h.KillDd2_1, &h.KillDd2_2, &h.KillDd2_3} {
			if *p, err = parseBool(c); err != nil {
				return nil, err
			}
		}
	}

	if v >= 194 {
		if h.Style8, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 215 {
		if h.Style9, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 195 {
		if h.Style10, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.Style11, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.Style12, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 204 {
		if h.CombatBook, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 207 {
		if h.LanternNightCooldown, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if h.LanternNight, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.ManualLanternNight, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.NextLanternReal, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 211 {
		n, err := c.ReadI32()
		if err != nil {
			return nil, err
		}
		if h.TreeTops, err = c.ReadI32Array(int(n)); err != nil {
			return nil, newErr(UnexpectedEof, "ParseHeader.treeTops", err)
		}
	}

	if v >= 212 {
		if h.ForcedHalloween, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.ForcedChristmas, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 216 {
		if h.CopperID, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if h.IronID, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if h.SilverID, err = c.ReadI32(); err != nil {
			return nil, err
		}
		if h.GoldID, err = c.ReadI32(); err != nil {
			return nil, err
		}
	}

	if v >= 217 {
		if h.BoughtCat, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.BoughtDog, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.BoughtBunny, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 223 {
		if h.KillEol, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.KillQueenSlime, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	if v >= 240 {
		if h.KillDeer, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 250 {
		if h.BlueSlime, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 251 {
		for _, p := range []*bool{&h.UnlockedMerchant, &h.UnlockedDemo, &h.UnlockedParty, &h.UnlockedDye,
			&h.UnlockedTruffle, &h.UnlockedArmsDealer, &h.UnlockedNurse, &h.UnlockedPrincess} {
			if *p, err = parseBool(c); err != nil {
				return nil, err
			}
		}
	}
	if v >= 259 {
		if h.CombatBook2, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 260 {
		if h.PeddlerSatchel, err = parseBool(c); err != nil {
			return nil, err
		}
	}
	if v >= 261 {
		for _, p := range []*bool{&h.GreenSlime, &h.OldSlime, &h.PurpleSlime, &h.RainbowSlime,
			&h.RedSlime, &h.YellowSlime, &h.CopperSlime} {
			if *p, err = parseBool(c); err != nil {
				return nil, err
			}
		}
	}
	if v >= 264 {
		if h.MoondialActive, err = parseBool(c); err != nil {
			return nil, err
		}
		if h.MoondialCooldown, err = parseBool(c); err != nil {
			return nil, err
		}
	}

	return h, nil
}

func readI32Into(c *ByteCursor, dst []int32) ([]int32, error) {
	for i := range dst {
		v, err := c.ReadI32()
		if err != nil {
			return nil, err
		}
		dst[i] = v
	}
	return dst, nil
}

// WriteHeader encodes h using the same version-gated script ParseHeader
// reads, so a parse/write round trip reproduces the source bytes exactly
// whenever no field was mutated in between.
func WriteHeader(c *ByteCursor, h *Header) {
	v := h.Version

	EmitString(c, h.Name)

	if v >= 179 {
		EmitString(c, h.Seed)
		c.WriteI64(h.GeneratorVer)
	}

	if v >= 181 {
		guid := h.Guid
		c.WriteBytes(guid[:])
	}

	c.WriteI32(h.ID)
	c.WriteI32(h.Bounds.X0)
	c.WriteI32(h.Bounds.X)
	c.WriteI32(h.Bounds.Y0)
	c.WriteI32(h.Bounds.Y)
	c.WriteI32(h.Height)
	c.WriteI32(h.Width)

	if v >= 209 {
		c.WriteI32(h.GameMode)
		if v >= 222 {
			writeBool(c, h.Drunk)
		}
		if v >= 227 {
			writeBool(c, h.Ftw)
		}
		if v >= 238 {
			writeBool(c, h.Tenth)
		}
		if v >= 239 {
			writeBool(c, h.DontStarve)
		}
		if v >= 241 {
			writeBool(c, h.Bees)
		}
		if v >= 249 {
			writeBool(c, h.Remix)
		}
		if v >= 266 {
			writeBool(c, h.NoTraps)
		}
		if v >= 267 {
			writeBool(c, h.Zenith)
		}
	} else {
		if v >= 112 {
			c.WriteU8(uint8(h.GameMode))
		}
	}

	if v >= 141 {
		c.WriteI64(h.CreationTime)
	}
	if v >= 63 {
		c.WriteU8(h.MoonType)
	}

	if v >= 44 {
		c.WriteI32Array(h.TreeX[:])
		c.WriteI32Array(h.TreeStyles[:])
	}

	if v >= 60 {
		c.WriteI32Array(h.CaveBackX[:])
		c.WriteI32Array(h.CaveBackStyle[:])
		c.WriteI32(h.IceBackStyle)
	}

	if v >= 61 {
		c.WriteI32(h.JungleBackStyle)
		c.WriteI32(h.HellBackStyle)
	}

	c.WriteI32(h.SpawnX)
	c.WriteI32(h.SpawnY)
	c.WriteF64(h.GroundLevel)
	c.WriteF64(h.RockLevel)
	c.WriteF64(h.Time)
	writeBool(c, h.Day)
	c.WriteI32(h.MoonPhase)
	writeBool(c, h.BloodMoon)

	if v >= 63 {
		writeBool(c, h.Eclipse)
	}

	c.WriteI32(h.DungeonX)
	c.WriteI32(h.DungeonY)

	if v >= 56 {
		writeBool(c, h.Crimson)
	}

	writeBool(c, h.KillEoc)
	writeBool(c, h.KillEvilBoss)
	writeBool(c, h.KillSkeletron)

	if v >= 66 {
		writeBool(c, h.KillQueenBee)
	}

	if v >= 44 {
		for _, b := range []bool{h.KillDestroyer, h.KillTwins, h.KillSkeletronPrime, h.KillHmBoss} {
			writeBool(c, b)
		}
	}

	if v >= 64 {
		writeBool(c, h.KillPlantera)
		writeBool(c, h.KillGolem)
	}

	if v >= 118 {
		writeBool(c, h.KillKingSlime)
	}

	if v >= 29 {
		writeBool(c, h.SavedTinkerer)
		writeBool(c, h.SavedWizard)
	}
	if v >= 34 {
		writeBool(c, h.SavedMechanic)
	}
	if v >= 29 {
		writeBool(c, h.KillGoblin)
	}
	if v >= 32 {
		writeBool(c, h.KillClown)
	}
	if v >= 37 {
		writeBool(c, h.KillFrost)
	}
	if v >= 56 {
		writeBool(c, h.KillPirate)
	}

	writeBool(c, h.BrokeOrb)
	writeBool(c, h.Meteor)
	writeBool(c, h.OrbSmashed)

	if v >= 23 {
		c.WriteI32(h.AltarCount)
		writeBool(c, h.Hardmode)
	}

	if v >= 257 {
		writeBool(c, h.AfterDoomParty)
	}

	c.WriteI32(h.InvasionDelay)
	c.WriteI32(h.InvasionSize)
	c.WriteI32(h.InvasionType)
	c.WriteF64(h.InvasionX)

	if v >= 118 {
		c.WriteF64(h.SlimeRainTime)
	}
	if v >= 113 {
		writeBool(c, h.SundialCooldown)
	}

	if v >= 53 {
		writeBool(c, h.IsRaining)
		c.WriteI32(h.RainTime)
		c.WriteF32(h.MaxRain)
	}

	if v >= 54 {
		c.WriteI32(h.OreTier1)
		c.WriteI32(h.OreTier2)
		c.WriteI32(h.OreTier3)
	}

	if v >= 55 {
		c.WriteU8(h.TreeStyle)
		c.WriteU8(h.CorruptionStyle)
		c.WriteU8(h.JungleStyle)
	}

	if v >= 60 {
		c.WriteU8(h.SnowStyle)
		c.WriteU8(h.HallowStyle)
		c.WriteU8(h.CrimsonStyle)
		c.WriteU8(h.DesertStyle)
		c.WriteU8(h.OceanStyle)
		c.WriteI32(h.CloudBg)
	}

	if v >= 62 {
		c.WriteI16(h.NumClouds)
		c.WriteF32(h.WindSpeed)
	}

	if v >= 95 {
		c.WriteI32(int32(len(h.PlayerNames)))
		for _, name := range h.PlayerNames {
			EmitString(c, name)
		}
	}

	if v >= 99 {
		writeBool(c, h.SavedAngler)
	}
	if v >= 101 {
		c.WriteI32(h.AnglerQuest)
	}
	if v >= 104 {
		writeBool(c, h.SavedStylist)
	}
	if v >= 129 {
		writeBool(c, h.SavedTaxCollector)
	}
	if v >= 201 {
		writeBool(c, h.SavedGolfer)
	}
	if v >= 107 {
		c.WriteI32(h.InvasionStartSize)
	}
	if v >= 108 {
		c.WriteI32(h.CultistDelay)
	}

	if v >= 109 {
		c.WriteI16(int16(len(h.KillCounts)))
		c.WriteI32Array(h.KillCounts)
	}

	if v >= 128 {
		writeBool(c, h.FastForwardTime)
	}

	if v >= 131 {
		for _, b := range []bool{h.KillFishron, h.KillMartian, h.KillCultist, h.KillMoonlord,
			h.KillPumpking, h.KillWood, h.KillIceQueen, h.KillTank, h.KillEverscream} {
			writeBool(c, b)
		}
	}

	if v >= 140 {
		for _, b := range []bool{h.KillSolar, h.KillVortex, h.KillNebula, h.KillStardust,
			h.ActiveSolar, h.ActiveVortex, h.ActiveNebula, h.ActiveStardust, h.ActiveLunar} {
			writeBool(c, b)
		}
	}

	if v >= 170 {
		writeBool(c, h.ManualParty)
		writeBool(c, h.InviteParty)
		c.WriteI32(h.PartyCooldown)
		c.WriteI32(int32(len(h.Partiers)))
		c.WriteI32Array(h.Partiers)
	}

	if v >= 174 {
		writeBool(c, h.ActiveSandstorm)
		c.WriteI32(h.SandstormTime)
		c.WriteF32(h.SandstormSeverity)
		c.WriteF32(h.SandstormMaxSeverity)
	}

	if v >= 178 {
		for _, b := range []bool{h.SavedBartender, h.KillDd2_1, h.KillDd2_2, h.KillDd2_3} {
			writeBool(c, b)
		}
	}

	if v >= 194 {
		writeBool(c, h.Style8)
	}
	if v >= 215 {
		writeBool(c, h.Style9)
	}
	if v >= 195 {
		writeBool(c, h.Style10)
		writeBool(c, h.Style11)
		writeBool(c, h.Style12)
	}
	if v >= 204 {
		writeBool(c, h.CombatBook)
	}

	if v >= 207 {
		c.WriteI32(h.LanternNightCooldown)
		writeBool(c, h.LanternNight)
		writeBool(c, h.ManualLanternNight)
		writeBool(c, h.NextLanternReal)
	}

	if v >= 211 {
		c.WriteI32(int32(len(h.TreeTops)))
		c.WriteI32Array(h.TreeTops)
	}

	if v >= 212 {
		writeBool(c, h.ForcedHalloween)
		writeBool(c, h.ForcedChristmas)
	}

	if v >= 216 {
		c.WriteI32(h.CopperID)
		c.WriteI32(h.IronID)
		c.WriteI32(h.SilverID)
		c.WriteI32(h.GoldID)
	}

	if v >= 217 {
		writeBool(c, h.BoughtCat)
		writeBool(c, h.BoughtDog)
		writeBool(c, h.BoughtBunny)
	}

	if v >= 223 {
		writeBool(c, h.KillEol)
		writeBool(c, h.KillQueenSlime)
	}

	if v >= 240 {
		writeBool(c, h.KillDeer)
	}
	if v >= 250 {
		writeBool(c, h.BlueSlime)
	}
	if v >= 251 {
		for _, b := range []bool{h.UnlockedMerchant, h.UnlockedDemo, h.UnlockedParty, h.UnlockedDye,
			h.UnlockedTruffle, h.UnlockedArmsDealer, h.UnlockedNurse, h.UnlockedPrincess} {
			writeBool(c, b)
		}
	}
	if v >= 259 {
		writeBool(c, h.CombatBook2)
	}
	if v >= 260 {
		writeBool(c, h.PeddlerSatchel)
	}
	if v >= 261 {
		for _, b := range []bool{h.GreenSlime, h.OldSlime, h.PurpleSlime, h.RainbowSlime,
			h.RedSlime, h.YellowSlime, h.CopperSlime} {
			writeBool(c, b)
		}
	}
	if v >= 264 {
		writeBool(c, h.MoondialActive)
		writeBool(c, h.MoondialCooldown)
	}
}
