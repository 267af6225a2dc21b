package wld

// Generator populates a freshly constructed World's header flags and (when
// it chooses to) tile matrix, given the integer seed New derived from the
// caller's seed string. Installed via WithGenerator; New leaves the world
// at its zero-valued defaults when no Generator is supplied.
type Generator interface {
	Generate(w *World, seed int32) error
}

// GenVars mirrors the source's process-wide _genvars: the ore substitution
// table a generation pass decides on (some worlds get "corruption" ore
// ids, some get "crimson" ore ids).
type GenVars struct {
	CrimsonLeft bool
	Copper      int32
	CopperBar   int32
	Iron        int32
	IronBar     int32
	Silver      int32
	SilverBar   int32
	Gold        int32
	GoldBar     int32
}

// DefaultGenerator reproduces the reference implementation's wld_gen_world
// seed-mode detection and the handful of header fields it derives before
// terrain generation proper would begin. Terrain generation itself
// (placing ore veins, biomes, structures into the TileMatrix) is not
// implemented upstream either — wld_gen_world stops after picking ore ids
// and the first two background-layer x splits, so DefaultGenerator stops
// there too rather than guessing at unwritten behavior.
type DefaultGenerator struct {
	Vars GenVars
}

func (g *DefaultGenerator) Generate(w *World, seed int32) error {
	h := w.Header
	rawSeed := h.Seed

	if seed == 5162020 {
		h.Drunk = true
	}
	switch rawSeed {
	case "not the bees", "not the bees!":
		h.Bees = true
	case "notraps", "no traps":
		h.NoTraps = true
	case "for the worthy":
		h.Ftw = true
	case "celebrationmk10":
		h.Tenth = true
	case "constant", "theconstant", "the constant", "eye4aneye", "eyeforaneye":
		h.DontStarve = true
	case "don't dig up", "dont dig up", "dontdigup":
		h.Remix = true
	case "get fixed boi", "getfixedboi":
		h.Zenith = true
		h.Remix = true
		h.DontStarve = true
		h.Tenth = true
		h.Ftw = true
		h.NoTraps = true
		h.Bees = true
		h.Drunk = true
	}
	if seed == 5162011 || seed == 5162021 {
		h.Tenth = true
	}

	r := NewRng(seed)
	if h.Drunk || h.Bees || h.NoTraps || h.Ftw || h.Tenth || h.DontStarve || h.Remix || h.Zenith {
		seed = r.NextMax(999999999)
		r.SetSeed(seed)
	}

	h.SpawnX = w.Tiles.Width / 2
	h.SpawnY = w.Tiles.Height / 2

	if r.NextMax(2) == 0 {
		g.Vars.CrimsonLeft = false
	} else {
		g.Vars.CrimsonLeft = true
	}

	h.NumClouds = int16(r.NextMinMax(10, 200))
	h.WindSpeed = 0
	for h.WindSpeed == 0 {
		h.WindSpeed = float32(r.NextMinMax(-400, 401)) * 0.001
	}

	hellItems := []int32{274, 220, 112, 218, 3019}
	if h.Remix {
		hellItems[2] = 683
	}
	for count := int32(5); count > 1; {
		count--
		index := r.NextMax(count)
		for i := index; i < count; i++ {
			hellItems[i] = hellItems[i+1]
		}
	}

	h.SlimeRainTime = -float64(r.NextMinMax(86400*2, 86400*3))
	h.CloudBg = -r.NextMinMax(8640, 86400)

	if r.NextMax(2) == 0 {
		g.Vars.Copper, g.Vars.CopperBar, h.CopperID = 166, 703, 166
	} else {
		g.Vars.Copper, g.Vars.CopperBar, h.CopperID = 7, 20, 7
	}

	if (!h.DontStarve || h.Drunk) && r.NextMax(2) == 0 {
		g.Vars.Iron, g.Vars.IronBar, h.IronID = 167, 704, 167
	} else {
		g.Vars.Iron, g.Vars.IronBar, h.IronID = 6, 22, 6
	}

	if r.NextMax(2) == 0 {
		g.Vars.Silver, g.Vars.SilverBar, h.SilverID = 168, 705, 168
	} else {
		g.Vars.Silver, g.Vars.SilverBar, h.SilverID = 9, 21, 9
	}

	if (!h.DontStarve || h.Drunk) && r.NextMax(2) == 0 {
		g.Vars.Gold, g.Vars.GoldBar, h.GoldID = 169, 706, 169
	} else {
		g.Vars.Gold, g.Vars.GoldBar, h.GoldID = 8, 19, 8
	}

	h.Crimson = r.NextMax(2) == 0
	h.ID = r.NextMax(2147483647)

	width := w.Tiles.Width
	if width <= 4200 {
		h.TreeX[0] = r.NextMinMax(int32(float64(width)*0.25), int32(float64(width)*0.75))
		h.TreeStyles[0] = r.NextMax(6)
		h.TreeStyles[1] = r.NextMax(6)
		for h.TreeStyles[1] == h.TreeStyles[0] {
			h.TreeStyles[1] = r.NextMax(6)
		}
		h.TreeX[1] = width
		h.TreeX[2] = width

		for i := 0; i < 2; i++ {
			if h.TreeStyles[i] == 0 && r.NextMax(3) != 0 {
				h.TreeStyles[i] = 4
			}
		}

		h.CaveBackX[0] = r.NextMinMax(int32(float64(width)*0.25), int32(float64(width)*0.75))
		h.CaveBackX[1] = width
		h.CaveBackX[2] = width
		h.CaveBackStyle[0] = r.NextMax(8)
		h.CaveBackStyle[1] = r.NextMax(8)
		for h.CaveBackStyle[1] == h.CaveBackStyle[0] {
			h.CaveBackStyle[1] = r.NextMax(8)
		}
	}

	return nil
}
