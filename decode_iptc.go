// SPDX-License-Identifier: MIT

package openmeta

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// iptcDatasetFormat is how a dataset's value bytes should be interpreted.
type iptcDatasetFormat uint8

const (
	iptcFormatString iptcDatasetFormat = iota
	iptcFormatUint16
	iptcFormatUint8
)

type iptcDatasetDef struct {
	name       string
	format     iptcDatasetFormat
	repeatable bool
}

// iptcCodedCharacterSetDataset is record 1, dataset 90 — CodedCharacterSet,
// whose value governs how every later string dataset's bytes are decoded.
const iptcCodedCharacterSetDataset = 90

const (
	iptcCharacterSetUTF8     = "UTF-8"
	iptcCharacterSetISO88591 = "ISO-8859-1"
)

// resolveIptcCodedCharacterSet inspects a CodedCharacterSet dataset's raw
// escape-sequence value and reports whether it names UTF-8 or ISO-8859-1, or
// "" if the escape sequence isn't one of those two.
func resolveIptcCodedCharacterSet(b []byte) string {
	const (
		esc           = 0x1B
		percent       = 0x25
		latinCapitalG = 0x47
		dot           = 0x2E
		latinCapitalA = 0x41
		minus         = 0x2D
	)

	switch {
	case len(b) > 2 && b[0] == esc && b[1] == percent && b[2] == latinCapitalG:
		return iptcCharacterSetUTF8
	case len(b) > 2 && b[0] == esc && b[1] == dot && b[2] == latinCapitalA:
		return iptcCharacterSetISO88591
	case len(b) > 4 && b[0] == esc && (b[1] == dot || b[2] == dot || b[3] == dot) && b[4] == latinCapitalA:
		return iptcCharacterSetISO88591
	case len(b) > 2 && b[0] == esc && b[1] == minus && b[2] == latinCapitalA:
		return iptcCharacterSetISO88591
	default:
		return ""
	}
}

// iptcFields is a record-then-dataset lookup for the datasets this decoder
// names. Records not listed here, and datasets not listed within a known
// record, still decode — just as an unnamed string field.
var iptcFields = map[uint8]map[uint8]iptcDatasetDef{
	1: {
		0:  {name: "ModelVersion", format: iptcFormatUint16},
		20: {name: "Destination", format: iptcFormatString, repeatable: true},
		40: {name: "FileFormat", format: iptcFormatUint16},
		50: {name: "FileVersion", format: iptcFormatUint16},
		90: {name: "CodedCharacterSet", format: iptcFormatString},
		100: {name: "EnvelopeRecordVersion", format: iptcFormatUint16},
	},
	2: {
		0:   {name: "ApplicationRecordVersion", format: iptcFormatUint16},
		3:   {name: "ObjectTypeReference", format: iptcFormatString},
		5:   {name: "ObjectName", format: iptcFormatString},
		10:  {name: "Urgency", format: iptcFormatString},
		15:  {name: "Category", format: iptcFormatString},
		20:  {name: "SupplementalCategories", format: iptcFormatString, repeatable: true},
		25:  {name: "Keywords", format: iptcFormatString, repeatable: true},
		40:  {name: "SpecialInstructions", format: iptcFormatString},
		55:  {name: "DateCreated", format: iptcFormatString},
		60:  {name: "TimeCreated", format: iptcFormatString},
		62:  {name: "DigitalCreationDate", format: iptcFormatString},
		63:  {name: "DigitalCreationTime", format: iptcFormatString},
		80:  {name: "By-line", format: iptcFormatString, repeatable: true},
		85:  {name: "By-lineTitle", format: iptcFormatString, repeatable: true},
		90:  {name: "City", format: iptcFormatString},
		92:  {name: "Sub-location", format: iptcFormatString},
		95:  {name: "Province-State", format: iptcFormatString},
		100: {name: "Country-PrimaryLocationCode", format: iptcFormatString},
		101: {name: "Country-PrimaryLocationName", format: iptcFormatString},
		103: {name: "OriginalTransmissionReference", format: iptcFormatString},
		105: {name: "Headline", format: iptcFormatString},
		110: {name: "Credit", format: iptcFormatString},
		115: {name: "Source", format: iptcFormatString},
		116: {name: "CopyrightNotice", format: iptcFormatString},
		118: {name: "Contact", format: iptcFormatString, repeatable: true},
		120: {name: "Caption-Abstract", format: iptcFormatString},
		122: {name: "Writer-Editor", format: iptcFormatString, repeatable: true},
	},
}

// IptcDecoder implements FormatDecoder for BlockIptcIim payloads: a
// sequence of 0x1C-delimited record:dataset entries, each a tag-length-value
// field. One entry per dataset occurrence is emitted, except repeatable
// datasets (keywords, by-lines, ...) which are joined into a single
// NUL-separated Text entry so multiple occurrences don't overwrite each other.
type IptcDecoder struct {
	Warnf func(format string, args ...any)
}

func (d *IptcDecoder) warnf(format string, args ...any) {
	if d.Warnf != nil {
		d.Warnf(format, args...)
	}
}

func (d *IptcDecoder) Decode(block ContainerBlockRef, payload []byte, store *MetaStore) error {
	arena := store.Arena()
	blockID := store.AddBlock(BlockInfo{Format: uint32(block.Format), Container: uint32(block.Kind), ID: block.ID})
	if blockID == InvalidBlockID {
		return nil
	}

	iso88591 := charmap.ISO8859_1.NewDecoder()
	charset := ""
	entryOrder := uint32(0)
	repeated := map[uint16][][]byte{}

	pos := 0
	for pos < len(payload) {
		if payload[pos] != 0x1C {
			pos++
			continue
		}
		if pos+5 > len(payload) {
			break
		}
		recordType := payload[pos+1]
		datasetNumber := payload[pos+2]
		size := int(be16(payload[pos+3 : pos+5]))
		valueStart := pos + 5
		if valueStart+size > len(payload) {
			return newInvalidFormatErrorf("iptc: dataset %d:%d size %d exceeds payload", recordType, datasetNumber, size)
		}
		raw := payload[valueStart : valueStart+size]
		pos = valueStart + size

		def, named := iptcFields[recordType][datasetNumber]
		if !named {
			def = iptcDatasetDef{format: iptcFormatString}
		}

		if recordType == 1 && datasetNumber == iptcCodedCharacterSetDataset {
			if cs := resolveIptcCodedCharacterSet(raw); cs != "" {
				charset = cs
			}
		}

		switch def.format {
		case iptcFormatUint16:
			if len(raw) < 2 {
				d.warnf("iptc: dataset %d:%d too short for uint16", recordType, datasetNumber)
				continue
			}
			d.emitDataset(store, blockID, arena, recordType, datasetNumber, &entryOrder, NewU16Value(be16(raw)))
		case iptcFormatUint8:
			if len(raw) < 1 {
				d.warnf("iptc: dataset %d:%d too short for uint8", recordType, datasetNumber)
				continue
			}
			d.emitDataset(store, blockID, arena, recordType, datasetNumber, &entryOrder, NewU8Value(raw[0]))
		default:
			text := decodeIptcText(raw, charset, iso88591)
			if def.repeatable {
				key := uint16(recordType)<<8 | uint16(datasetNumber)
				repeated[key] = append(repeated[key], text)
				continue
			}
			d.emitDataset(store, blockID, arena, recordType, datasetNumber, &entryOrder, NewTextValue(arena, text, TextUtf8))
		}
	}

	for key, values := range repeated {
		recordType := uint8(key >> 8)
		datasetNumber := uint8(key)
		joined := bytesJoin(values, []byte{0x00})
		d.emitDataset(store, blockID, arena, recordType, datasetNumber, &entryOrder, NewTextValue(arena, joined, TextUtf8))
	}

	return nil
}

func (d *IptcDecoder) emitDataset(store *MetaStore, block BlockId, arena *ByteArena, recordType, datasetNumber uint8, entryOrder *uint32, value MetaValue) {
	store.AddEntry(Entry{
		Key:    NewIptcDatasetKey(uint16(recordType), uint16(datasetNumber)),
		Value:  value,
		Origin: Origin{Block: block, OrderInBlock: *entryOrder},
	})
	*entryOrder++
}

// decodeIptcText trims surrounding whitespace and a trailing NUL run, then
// re-encodes non-UTF-8 charsets to UTF-8 so every Text value this decoder
// emits is UTF-8 regardless of the coded character set on the wire.
func decodeIptcText(raw []byte, charset string, iso88591 *encoding.Decoder) []byte {
	trimmed := trimIptcNulls(raw)
	if charset == iptcCharacterSetISO88591 || charset == "" {
		if out, err := iso88591.Bytes(trimmed); err == nil {
			trimmed = out
		}
	}
	return []byte(strings.TrimSpace(string(trimmed)))
}

func trimIptcNulls(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0x00 {
		end--
	}
	return b[:end]
}

func bytesJoin(parts [][]byte, sep []byte) []byte {
	var out []byte
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep...)
		}
		out = append(out, p...)
	}
	return out
}
