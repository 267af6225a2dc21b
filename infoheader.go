package wld

// InfoHeader is the fixed-layout preamble every section offset and the
// important-tile bitmap are keyed against (wld_info_header_t).
type InfoHeader struct {
	Version      uint32
	Sig          [7]byte
	WorldType    int8
	Revisions    int32
	Favorite     uint64
	NumSections  int16
	Sections     []int32
	TileMask     int16
	Uvs          []byte // ceil(TileMask/8) bytes, bit id%8 of byte id/8
}

// ParseInfoHeader decodes the fixed preamble at c's current position.
func ParseInfoHeader(c *ByteCursor) (*InfoHeader, error) {
	h := &InfoHeader{}

	ver, err := c.ReadU32()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseInfoHeader.version", err)
	}
	h.Version = ver

	sig, err := c.ReadBytes(7)
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseInfoHeader.sig", err)
	}
	copy(h.Sig[:], sig)

	wt, err := c.ReadI8()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseInfoHeader.worldType", err)
	}
	h.WorldType = wt

	rev, err := c.ReadI32()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseInfoHeader.revisions", err)
	}
	h.Revisions = rev

	fav, err := c.ReadU64()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseInfoHeader.favorite", err)
	}
	h.Favorite = fav

	numSections, err := c.ReadI16()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseInfoHeader.numSections", err)
	}
	h.NumSections = numSections

	sections, err := c.ReadI32Array(int(numSections))
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseInfoHeader.sections", err)
	}
	h.Sections = sections

	tileMask, err := c.ReadI16()
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseInfoHeader.tileMask", err)
	}
	h.TileMask = tileMask

	bits := int(tileMask) / 8
	if int(tileMask)%8 != 0 {
		bits++
	}
	uvs, err := c.ReadBytes(bits)
	if err != nil {
		return nil, newErr(UnexpectedEof, "ParseInfoHeader.uvs", err)
	}
	h.Uvs = uvs

	return h, nil
}

// WriteInfoHeader encodes h. The caller is responsible for recomputing
// h.Sections before calling this once every section's emitted length is
// known (see World.Write's offset-table pass).
func WriteInfoHeader(c *ByteCursor, h *InfoHeader) {
	c.WriteU32(h.Version)
	sig := h.Sig
	c.WriteBytes(sig[:])
	c.WriteI8(h.WorldType)
	c.WriteI32(h.Revisions)
	c.WriteU64(h.Favorite)
	c.WriteI16(int16(len(h.Sections)))
	c.WriteI32Array(h.Sections)
	c.WriteI16(h.TileMask)
	c.WriteBytes(h.Uvs)
}

// Important reports whether tile id uses framed UV coordinates, per the
// InfoHeader's bitmap.
func (h *InfoHeader) Important(id int32) bool {
	return important(h.Uvs, id)
}
