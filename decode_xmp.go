// SPDX-License-Identifier: MIT

package openmeta

import (
	"encoding/xml"
	"strings"
)

// xmpRdf mirrors the subset of an XMP packet's RDF tree this decoder reads:
// one or more rdf:Description elements, each carrying simple attributes,
// known rdf:Seq/Bag/Alt list properties, and a handful of flat GPS elements.
type xmpRdf struct {
	XMLName      xml.Name
	Descriptions []xmpRdfDescription `xml:"Description"`
}

type xmpRdfDescription struct {
	XMLName   xml.Name
	Attrs     []xml.Attr `xml:",any,attr"`
	Creator   xmpSeqList `xml:"creator"`
	Publisher xmpBagList `xml:"publisher"`
	Subject   xmpBagList `xml:"subject"`
	Rights    xmpAltList `xml:"rights"`

	GPSLatitude    string `xml:"GPSLatitude"`
	GPSLongitude   string `xml:"GPSLongitude"`
	GPSAltitude    string `xml:"GPSAltitude"`
	GPSAltitudeRef string `xml:"GPSAltitudeRef"`
}

type xmpAltList struct {
	XMLName xml.Name
	Alt     struct {
		Items []string `xml:"li"`
	} `xml:"Alt"`
}

type xmpSeqList struct {
	XMLName xml.Name
	Seq     struct {
		Items []string `xml:"li"`
	} `xml:"Seq"`
}

type xmpBagList struct {
	XMLName xml.Name
	Bag     struct {
		Items []string `xml:"li"`
	} `xml:"Bag"`
}

type xmpPacket struct {
	XMLName xml.Name
	RDF     xmpRdf `xml:"RDF"`
}

// xmpSkipNamespaces excludes the xmlns and RDF plumbing namespaces from the
// flat-attribute pass below; rdf:Description's own structural
// attributes (rdf:about, xmlns:*) aren't metadata properties.
var xmpSkipNamespaces = map[string]bool{
	"xmlns": true,
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#": true,
}

// XmpDecoder implements FormatDecoder for BlockXmp (and reassembled
// BlockXmpExtended) payloads: a standalone RDF/XML packet. Every
// rdf:Description's flat attributes become one XmpProperty entry each;
// known Seq/Bag/Alt list properties (dc:creator, dc:subject, ...) become one
// Text entry with NUL-joined items; GPS coordinates are left as their
// raw DMS-like strings — converting them to decimal degrees is an EXIF
// concern this decoder does not duplicate.
type XmpDecoder struct {
	Warnf func(format string, args ...any)
}

func (d *XmpDecoder) warnf(format string, args ...any) {
	if d.Warnf != nil {
		d.Warnf(format, args...)
	}
}

func (d *XmpDecoder) Decode(block ContainerBlockRef, payload []byte, store *MetaStore) error {
	var packet xmpPacket
	if err := xml.Unmarshal(payload, &packet); err != nil {
		return newInvalidFormatErrorf("xmp: %w", err)
	}

	arena := store.Arena()
	blockID := store.AddBlock(BlockInfo{Format: uint32(block.Format), Container: uint32(block.Kind), ID: block.ID})
	if blockID == InvalidBlockID {
		return nil
	}
	entryOrder := uint32(0)

	for _, desc := range packet.RDF.Descriptions {
		for _, attr := range desc.Attrs {
			if xmpSkipNamespaces[attr.Name.Space] {
				continue
			}
			d.emitProperty(store, blockID, arena, &entryOrder, attr.Name.Space, attr.Name.Local, attr.Value)
		}

		d.emitList(store, blockID, arena, &entryOrder, desc.Creator.XMLName, desc.Creator.Seq.Items)
		d.emitList(store, blockID, arena, &entryOrder, desc.Publisher.XMLName, desc.Publisher.Bag.Items)
		d.emitList(store, blockID, arena, &entryOrder, desc.Subject.XMLName, desc.Subject.Bag.Items)
		d.emitList(store, blockID, arena, &entryOrder, desc.Rights.XMLName, desc.Rights.Alt.Items)

		if desc.GPSLatitude != "" {
			d.emitProperty(store, blockID, arena, &entryOrder, desc.XMLName.Space, "GPSLatitude", desc.GPSLatitude)
		}
		if desc.GPSLongitude != "" {
			d.emitProperty(store, blockID, arena, &entryOrder, desc.XMLName.Space, "GPSLongitude", desc.GPSLongitude)
		}
		if desc.GPSAltitude != "" {
			d.emitProperty(store, blockID, arena, &entryOrder, desc.XMLName.Space, "GPSAltitude", desc.GPSAltitude)
		}
		if desc.GPSAltitudeRef != "" {
			d.emitProperty(store, blockID, arena, &entryOrder, desc.XMLName.Space, "GPSAltitudeRef", desc.GPSAltitudeRef)
		}
	}

	return nil
}

func (d *XmpDecoder) emitProperty(store *MetaStore, block BlockId, arena *ByteArena, entryOrder *uint32, schemaNS, propertyPath, value string) {
	if propertyPath == "" {
		return
	}
	store.AddEntry(Entry{
		Key:    NewXmpPropertyKey(arena, schemaNS, propertyPath),
		Value:  NewTextValue(arena, []byte(value), TextUtf8),
		Origin: Origin{Block: block, OrderInBlock: *entryOrder},
	})
	*entryOrder++
}

func (d *XmpDecoder) emitList(store *MetaStore, block BlockId, arena *ByteArena, entryOrder *uint32, name xml.Name, items []string) {
	if name.Local == "" || len(items) == 0 {
		return
	}
	joined := strings.Join(items, "\x00")
	store.AddEntry(Entry{
		Key:    NewXmpPropertyKey(arena, name.Space, name.Local),
		Value:  NewTextValue(arena, []byte(joined), TextUtf8),
		Origin: Origin{Block: block, OrderInBlock: *entryOrder, WireCount: uint32(len(items))},
	})
	*entryOrder++
}
