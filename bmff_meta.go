// SPDX-License-Identifier: MIT

package openmeta

import (
	"bytes"
	"strings"
)

const (
	bmffMaxWalkDepth = 16
	bmffMaxBoxCount  = 1 << 16

	// Stack-sized bounds on the derived-field collections the walker
	// builds per meta box, so a crafted box tree can't force unbounded
	// memory or emission work.
	bmffMaxAuxItems       = 256
	bmffMaxIpcoProps      = 64
	bmffMaxIrefEdges      = 512
	bmffMaxRefCountPerBox = 16384
	bmffMaxTotalRefs      = 262144
)

var (
	metaBoxMeta = fourcc('m', 'e', 't', 'a')
	metaBoxPitm = fourcc('p', 'i', 't', 'm')
	metaBoxIprp = fourcc('i', 'p', 'r', 'p')
	metaBoxIpco = fourcc('i', 'p', 'c', 'o')
	metaBoxIpma = fourcc('i', 'p', 'm', 'a')
	metaBoxIref = fourcc('i', 'r', 'e', 'f')
	metaBoxIspe = fourcc('i', 's', 'p', 'e')
	metaBoxIrot = fourcc('i', 'r', 'o', 't')
	metaBoxImir = fourcc('i', 'm', 'i', 'r')
	metaBoxAuxC = fourcc('a', 'u', 'x', 'C')
	metaBoxFtyp = fourcc('f', 't', 'y', 'p')

	irefAuxl = fourcc('a', 'u', 'x', 'l')
	irefDimg = fourcc('d', 'i', 'm', 'g')
	irefThmb = fourcc('t', 'h', 'm', 'b')
	irefCdsc = fourcc('c', 'd', 's', 'c')
)

// AuxSemantic classifies an auxiliary item's role relative to the primary
// image, derived from its auxC urn/string by substring rules.
type AuxSemantic uint8

const (
	AuxUnknown AuxSemantic = iota
	AuxAlpha
	AuxDepth
	AuxDisparity
	AuxMatte
)

func (s AuxSemantic) String() string {
	switch s {
	case AuxAlpha:
		return "alpha"
	case AuxDepth:
		return "depth"
	case AuxDisparity:
		return "disparity"
	case AuxMatte:
		return "matte"
	default:
		return "unknown"
	}
}

// classifyAuxCType applies the same substring/urn rules as the original
// AuxSemantic classifier: exact urn:mpeg:hevc auxid matches take priority,
// then substring containment against ":aux:<kind>" and, for depth,
// disparity and matte (not alpha), the bare kind word.
func classifyAuxCType(auxType string) AuxSemantic {
	if auxType == "" {
		return AuxUnknown
	}
	lower := asciiLower(auxType)
	switch {
	case lower == "urn:mpeg:hevc:2015:auxid:1", contains(lower, ":aux:alpha"),
		lower == "urn:mpeg:mpegb:cicp:systems:auxiliary:alpha":
		return AuxAlpha
	case lower == "urn:mpeg:hevc:2015:auxid:2", contains(lower, ":aux:depth"), contains(lower, "depth"):
		return AuxDepth
	case lower == "urn:mpeg:hevc:2015:auxid:3", contains(lower, ":aux:disparity"), contains(lower, "disparity"):
		return AuxDisparity
	case contains(lower, "portraitmatte"), contains(lower, ":aux:matte"), contains(lower, "matte"):
		return AuxMatte
	default:
		return AuxUnknown
	}
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func contains(hay, needle string) bool {
	return bytes.Contains([]byte(hay), []byte(needle))
}

// itemRefEdge is one parsed iref reference: ref_type(from_item -> to_item).
type itemRefEdge struct {
	refType    uint32
	fromItemID uint32
	toItemID   uint32
}

// ipcoProperty is one parsed ipco entry, decoded if it is a property kind
// the walker understands (ispe/irot/imir/auxC); otherwise only its box type
// is kept so ipma associations can still count it for 1-based indexing.
type ipcoProperty struct {
	boxType         uint32
	width, height   uint32
	rotationDegrees uint16
	mirrorAxis      uint8
	auxType         string
}

// WalkBmffMeta walks the ftyp+meta box tree of an ISO-BMFF file (HEIF,
// AVIF, CR3) and emits derived BmffField entries for the primary item's
// resolved properties, its auxiliary-item graph, and the ftyp brands, into
// a newly registered block of store. It returns the new BlockId, or
// InvalidBlockID if bytes is not a recognizable ftyp container.
//
// The walk is bounded to bmffMaxWalkDepth nested container boxes and
// bmffMaxBoxCount boxes total, matching bmff_fields_decode.cc's box-count
// and recursion guards, so a crafted or cyclic box tree cannot force
// unbounded work.
func WalkBmffMeta(data []byte, store *MetaStore) BlockId {
	ftyp, ok := readBmffBox(data, 0)
	if !ok || ftyp.boxType != metaBoxFtyp {
		return InvalidBlockID
	}
	if ftyp.payloadStart+8 > ftyp.end {
		return InvalidBlockID
	}

	majorBrand := be32(data[ftyp.payloadStart : ftyp.payloadStart+4])
	minorVersion := be32(data[ftyp.payloadStart+4 : ftyp.payloadStart+8])

	block := store.AddBlock(BlockInfo{Format: uint32(formatForBrand(majorBrand))})
	if block == InvalidBlockID {
		return InvalidBlockID
	}
	arena := store.Arena()
	order := uint32(0)

	emitU32Field(store, block, &order, arena, "ftyp.major_brand", majorBrand)
	emitU32Field(store, block, &order, arena, "ftyp.minor_version", minorVersion)

	var compat []uint32
	for p := ftyp.payloadStart + 8; p+4 <= ftyp.end; p += 4 {
		compat = append(compat, be32(data[p:p+4]))
	}
	if len(compat) > 0 {
		emitU32ArrayField(store, block, &order, arena, "ftyp.compat_brands", compat)
	}

	boxCount := 0
	walkBmffTopLevel(data, ftyp.end, len(data), 0, &boxCount, func(meta bmffBox) {
		decodeMetaPrimary(data, meta, store, block, &order, arena)
	})

	return block
}

func walkBmffTopLevel(data []byte, start, end, depth int, boxCount *int, onMeta func(bmffBox)) {
	if depth > bmffMaxWalkDepth {
		return
	}
	pos := start
	for pos+8 <= end {
		*boxCount++
		if *boxCount > bmffMaxBoxCount {
			return
		}
		box, ok := readBmffBox(data, pos)
		if !ok {
			return
		}
		if box.boxType == metaBoxMeta {
			onMeta(box)
		}
		pos = box.end
	}
}

func decodeMetaPrimary(data []byte, meta bmffBox, store *MetaStore, block BlockId, order *uint32, arena *ByteArena) {
	body := meta.payloadStart + 4 // skip FullBox version+flags
	if body > meta.end {
		return
	}

	var primaryItemID uint32
	havePrimary := false
	var ipcoProps []ipcoProperty
	// itemID -> 1-based ipco index, per ipma entry.
	primaryPropIndices := []int{}
	assocByItem := map[uint32][]int{}
	var itemOrder []uint32
	var edges []itemRefEdge
	edgesTotal := 0

	boxCount := 0
	pos := body
	for pos+8 <= meta.end {
		boxCount++
		if boxCount > bmffMaxBoxCount {
			break
		}
		box, ok := readBmffBox(data, pos)
		if !ok {
			break
		}

		switch box.boxType {
		case metaBoxPitm:
			if box.payloadStart+4 <= box.end {
				vf := be32(data[box.payloadStart : box.payloadStart+4])
				p := box.payloadStart + 4
				if vf>>24 == 0 {
					if p+2 <= box.end {
						primaryItemID = uint32(be16(data[p : p+2]))
						havePrimary = true
					}
				} else if p+4 <= box.end {
					primaryItemID = be32(data[p : p+4])
					havePrimary = true
				}
			}
		case metaBoxIprp:
			ipcoProps, primaryPropIndices, assocByItem, itemOrder = parseIprp(data, box, primaryItemID)
		case metaBoxIref:
			edges, edgesTotal = parseIref(data, box)
		}

		pos = box.end
	}

	if !havePrimary {
		return
	}
	emitU32Field(store, block, order, arena, "meta.primary_item_id", primaryItemID)

	var width, height uint32
	var rotation uint16
	haveRotation := false
	var mirror uint8
	haveMirror := false
	for _, idx := range primaryPropIndices {
		if idx < 1 || idx > len(ipcoProps) {
			continue
		}
		prop := ipcoProps[idx-1]
		switch prop.boxType {
		case metaBoxIspe:
			width, height = prop.width, prop.height
		case metaBoxIrot:
			rotation = uint16(prop.rotationDegrees)
			haveRotation = true
		case metaBoxImir:
			mirror = prop.mirrorAxis
			haveMirror = true
		}
	}
	if width > 0 && height > 0 {
		emitU32Field(store, block, order, arena, "primary.width", width)
		emitU32Field(store, block, order, arena, "primary.height", height)
	}
	if haveRotation {
		emitU16Field(store, block, order, arena, "primary.rotation_degrees", rotation)
	}
	if haveMirror {
		emitU8Field(store, block, order, arena, "primary.mirror", mirror)
	}

	// Auxiliary item catalogue: every item with an ipma-associated auxC
	// property, in first-seen ipma order, capped at bmffMaxAuxItems. This
	// is unconditional (not scoped to the primary's auxl targets), so
	// items only reachable via dimg/thmb (e.g. a depth map fed through a
	// derived-image chain) still appear in the catalogue.
	var auxCatalogueOrder []uint32
	auxCatalogueType := map[uint32]string{}
	for _, itemID := range itemOrder {
		if len(auxCatalogueOrder) >= bmffMaxAuxItems {
			break
		}
		if _, done := auxCatalogueType[itemID]; done {
			continue
		}
		for _, idx := range assocByItem[itemID] {
			if idx < 1 || idx > len(ipcoProps) {
				continue
			}
			if ipcoProps[idx-1].boxType == metaBoxAuxC {
				auxCatalogueType[itemID] = ipcoProps[idx-1].auxType
				auxCatalogueOrder = append(auxCatalogueOrder, itemID)
				break
			}
		}
	}

	if edgesTotal > 0 {
		emitU32Field(store, block, order, arena, "iref.edge_count", uint32(edgesTotal))
		if edgesTotal > len(edges) {
			emitU8Field(store, block, order, arena, "iref.edge_truncated", 1)
		}
		for _, e := range edges {
			emitU32Field(store, block, order, arena, "iref.ref_type", e.refType)
			emitU32Field(store, block, order, arena, "iref.from_item_id", e.fromItemID)
			emitU32Field(store, block, order, arena, "iref.to_item_id", e.toItemID)
			if e.refType == irefAuxl {
				auxType := auxCatalogueType[e.toItemID]
				semantic := classifyAuxCType(auxType)
				emitU32Field(store, block, order, arena, "iref.auxl.from_item_id", e.fromItemID)
				emitU32Field(store, block, order, arena, "iref.auxl.to_item_id", e.toItemID)
				emitTextField(store, block, order, arena, "iref.auxl.semantic", semantic.String())
				if auxType != "" {
					emitTextField(store, block, order, arena, "iref.auxl.type", auxType)
				}
			}
		}
	}

	for _, itemID := range auxCatalogueOrder {
		auxType := auxCatalogueType[itemID]
		emitU32Field(store, block, order, arena, "aux.item_id", itemID)
		emitTextField(store, block, order, arena, "aux.semantic", classifyAuxCType(auxType).String())
		if auxType != "" {
			emitTextField(store, block, order, arena, "aux.type", auxType)
		}
	}

	// Ref buckets: every distinct target of a reference from the primary
	// item, grouped by ref type and deduplicated in first-seen order.
	var auxlTargets, dimgTargets, thmbTargets, cdscTargets []uint32
	seenAuxl := map[uint32]bool{}
	seenDimg := map[uint32]bool{}
	seenThmb := map[uint32]bool{}
	seenCdsc := map[uint32]bool{}
	for _, e := range edges {
		if e.fromItemID != primaryItemID {
			continue
		}
		switch e.refType {
		case irefAuxl:
			if !seenAuxl[e.toItemID] {
				seenAuxl[e.toItemID] = true
				auxlTargets = append(auxlTargets, e.toItemID)
			}
		case irefDimg:
			if !seenDimg[e.toItemID] {
				seenDimg[e.toItemID] = true
				dimgTargets = append(dimgTargets, e.toItemID)
			}
		case irefThmb:
			if !seenThmb[e.toItemID] {
				seenThmb[e.toItemID] = true
				thmbTargets = append(thmbTargets, e.toItemID)
			}
		case irefCdsc:
			if !seenCdsc[e.toItemID] {
				seenCdsc[e.toItemID] = true
				cdscTargets = append(cdscTargets, e.toItemID)
			}
		}
	}

	var alphaTargets, depthTargets, disparityTargets, matteTargets []uint32
	auxlSemantics := make([]string, 0, len(auxlTargets))
	for _, itemID := range auxlTargets {
		semantic := classifyAuxCType(auxCatalogueType[itemID])
		auxlSemantics = append(auxlSemantics, semantic.String())
		switch semantic {
		case AuxAlpha:
			alphaTargets = append(alphaTargets, itemID)
		case AuxDepth:
			depthTargets = append(depthTargets, itemID)
		case AuxDisparity:
			disparityTargets = append(disparityTargets, itemID)
		case AuxMatte:
			matteTargets = append(matteTargets, itemID)
		}
	}

	if len(auxlTargets) > 0 {
		emitU32ArrayField(store, block, order, arena, "primary.auxl_item_id", auxlTargets)
		emitTextArrayField(store, block, order, arena, "primary.auxl_semantic", auxlSemantics)
	}
	if len(alphaTargets) > 0 {
		emitU32ArrayField(store, block, order, arena, "primary.alpha_item_id", alphaTargets)
	}
	if len(depthTargets) > 0 {
		emitU32ArrayField(store, block, order, arena, "primary.depth_item_id", depthTargets)
	}
	if len(disparityTargets) > 0 {
		emitU32ArrayField(store, block, order, arena, "primary.disparity_item_id", disparityTargets)
	}
	if len(matteTargets) > 0 {
		emitU32ArrayField(store, block, order, arena, "primary.matte_item_id", matteTargets)
	}
	if len(dimgTargets) > 0 {
		emitU32ArrayField(store, block, order, arena, "primary.dimg_item_id", dimgTargets)
	}
	if len(thmbTargets) > 0 {
		emitU32ArrayField(store, block, order, arena, "primary.thmb_item_id", thmbTargets)
	}
	if len(cdscTargets) > 0 {
		emitU32ArrayField(store, block, order, arena, "primary.cdsc_item_id", cdscTargets)
	}
}

// parseIprp parses iprp's ipco children into ipcoProps (capped at
// bmffMaxIpcoProps) and its ipma children into a full item -> 1-based
// property index association, plus the 1-based indices primaryItemID
// associates with directly and the first-seen order of every item id
// ipma mentions.
func parseIprp(data []byte, iprp bmffBox, primaryItemID uint32) ([]ipcoProperty, []int, map[uint32][]int, []uint32) {
	var props []ipcoProperty
	var primaryIndices []int
	assoc := map[uint32][]int{}
	var itemOrder []uint32
	seenItem := map[uint32]bool{}

	pos := iprp.payloadStart
	for pos+8 <= iprp.end {
		box, ok := readBmffBox(data, pos)
		if !ok {
			break
		}
		switch box.boxType {
		case metaBoxIpco:
			pp := box.payloadStart
			for pp+8 <= box.end {
				propBox, ok := readBmffBox(data, pp)
				if !ok {
					break
				}
				if len(props) < bmffMaxIpcoProps {
					props = append(props, parseIpcoProperty(data, propBox))
				}
				pp = propBox.end
			}
		case metaBoxIpma:
			if box.payloadStart+4 > box.end {
				break
			}
			vf := be32(data[box.payloadStart : box.payloadStart+4])
			version := uint8(vf >> 24)
			flags := vf & 0xFFFFFF
			p := box.payloadStart + 4
			if p+4 > box.end {
				break
			}
			entryCount := be32(data[p : p+4])
			p += 4
			for i := uint32(0); i < entryCount && p < box.end; i++ {
				var itemID uint32
				if version < 1 {
					if p+2 > box.end {
						break
					}
					itemID = uint32(be16(data[p : p+2]))
					p += 2
				} else {
					if p+4 > box.end {
						break
					}
					itemID = be32(data[p : p+4])
					p += 4
				}
				if p+1 > box.end {
					break
				}
				assocCount := data[p]
				p++
				if !seenItem[itemID] {
					seenItem[itemID] = true
					itemOrder = append(itemOrder, itemID)
				}
				for a := uint8(0); a < assocCount; a++ {
					var idx int
					if flags&1 != 0 {
						if p+2 > box.end {
							break
						}
						idx = int(be16(data[p:p+2]) & 0x7FFF)
						p += 2
					} else {
						if p+1 > box.end {
							break
						}
						idx = int(data[p] & 0x7F)
						p++
					}
					assoc[itemID] = append(assoc[itemID], idx)
					if itemID == primaryItemID && primaryItemID != 0 {
						primaryIndices = append(primaryIndices, idx)
					}
				}
			}
		}
		pos = box.end
	}
	return props, primaryIndices, assoc, itemOrder
}

func parseIpcoProperty(data []byte, box bmffBox) ipcoProperty {
	prop := ipcoProperty{boxType: box.boxType}
	switch box.boxType {
	case metaBoxIspe:
		if box.payloadStart+12 <= box.end {
			prop.width = be32(data[box.payloadStart+4 : box.payloadStart+8])
			prop.height = be32(data[box.payloadStart+8 : box.payloadStart+12])
		}
	case metaBoxIrot:
		if box.payloadStart+1 <= box.end {
			angle := data[box.payloadStart] & 0x03
			prop.rotationDegrees = uint16(angle) * 90
		}
	case metaBoxImir:
		if box.payloadStart+1 <= box.end {
			prop.mirrorAxis = data[box.payloadStart] & 0x01
		}
	case metaBoxAuxC:
		if box.payloadStart+4 <= box.end {
			p := box.payloadStart + 4 // skip version+flags
			if nul := bytes.IndexByte(data[p:box.end], 0); nul >= 0 {
				prop.auxType = string(data[p : p+nul])
			}
		}
	}
	return prop
}

// parseIref parses iref's ref-type child boxes into edges, capped at
// bmffMaxIrefEdges, and returns the true total reference count alongside
// (so callers can report iref.edge_count accurately and flag truncation).
// Per box it enforces ref_count <= bmffMaxRefCountPerBox, and parsing stops
// once the running total exceeds bmffMaxTotalRefs.
func parseIref(data []byte, box bmffBox) ([]itemRefEdge, int) {
	if box.payloadStart+4 > box.end {
		return nil, 0
	}
	vf := be32(data[box.payloadStart : box.payloadStart+4])
	version := uint8(vf >> 24)
	idSize := 2
	if version != 0 {
		idSize = 4
	}

	var edges []itemRefEdge
	total := 0
	pos := box.payloadStart + 4
	for pos+8 <= box.end {
		box2, ok := readBmffBox(data, pos)
		if !ok {
			break
		}
		refType := box2.boxType
		p := box2.payloadStart
		if p+idSize > box2.end {
			pos = box2.end
			continue
		}
		fromID, next, ok := readVarUint(data, p, idSize)
		if !ok {
			pos = box2.end
			continue
		}
		p = next
		if p+2 > box2.end {
			pos = box2.end
			continue
		}
		refCount := int(be16(data[p : p+2]))
		if refCount > bmffMaxRefCountPerBox {
			refCount = bmffMaxRefCountPerBox
		}
		p += 2
		for i := 0; i < refCount; i++ {
			toID, next2, ok := readVarUint(data, p, idSize)
			if !ok {
				break
			}
			p = next2
			total++
			if total > bmffMaxTotalRefs {
				return edges, total
			}
			if len(edges) < bmffMaxIrefEdges {
				edges = append(edges, itemRefEdge{refType: refType, fromItemID: uint32(fromID), toItemID: uint32(toID)})
			}
		}
		pos = box2.end
	}
	return edges, total
}

func emitU32Field(store *MetaStore, block BlockId, order *uint32, arena *ByteArena, field string, v uint32) {
	e := Entry{
		Key:    NewBmffFieldKey(arena, field),
		Value:  NewU32Value(v),
		Origin: Origin{Block: block, OrderInBlock: *order},
		Flags:  FlagDerived,
	}
	*order++
	store.AddEntry(e)
}

func emitU16Field(store *MetaStore, block BlockId, order *uint32, arena *ByteArena, field string, v uint16) {
	e := Entry{
		Key:    NewBmffFieldKey(arena, field),
		Value:  NewU16Value(v),
		Origin: Origin{Block: block, OrderInBlock: *order},
		Flags:  FlagDerived,
	}
	*order++
	store.AddEntry(e)
}

func emitU8Field(store *MetaStore, block BlockId, order *uint32, arena *ByteArena, field string, v uint8) {
	e := Entry{
		Key:    NewBmffFieldKey(arena, field),
		Value:  NewU8Value(v),
		Origin: Origin{Block: block, OrderInBlock: *order},
		Flags:  FlagDerived,
	}
	*order++
	store.AddEntry(e)
}

func emitTextField(store *MetaStore, block BlockId, order *uint32, arena *ByteArena, field, text string) {
	e := Entry{
		Key:    NewBmffFieldKey(arena, field),
		Value:  NewTextValue(arena, []byte(text), TextUtf8),
		Origin: Origin{Block: block, OrderInBlock: *order},
		Flags:  FlagDerived,
	}
	*order++
	store.AddEntry(e)
}

func emitU32ArrayField(store *MetaStore, block BlockId, order *uint32, arena *ByteArena, field string, values []uint32) {
	e := Entry{
		Key:    NewBmffFieldKey(arena, field),
		Value:  NewU32ArrayValue(arena, values),
		Origin: Origin{Block: block, OrderInBlock: *order},
		Flags:  FlagDerived,
	}
	*order++
	store.AddEntry(e)
}

// emitTextArrayField stores items as one NUL-joined Text value with
// Origin.WireCount set to len(items), the same list-of-strings encoding
// decode_xmp.go uses for rdf:Seq/Bag properties — MetaValue has no array
// element type for text, only numeric ones.
func emitTextArrayField(store *MetaStore, block BlockId, order *uint32, arena *ByteArena, field string, items []string) {
	if len(items) == 0 {
		return
	}
	e := Entry{
		Key:    NewBmffFieldKey(arena, field),
		Value:  NewTextValue(arena, []byte(strings.Join(items, "\x00")), TextUtf8),
		Origin: Origin{Block: block, OrderInBlock: *order, WireCount: uint32(len(items))},
		Flags:  FlagDerived,
	}
	*order++
	store.AddEntry(e)
}
