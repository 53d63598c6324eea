// SPDX-License-Identifier: MIT

package openmeta

// PrintImFieldNamer names a PrintIM field by its numeric index within the
// "PrintIM" APP-segment/tag payload. PrintIM's field layout is a vendor
// encoding scheme this module does not decode; the interface exists so a
// caller that does understand it can plug a namer in without the core
// needing to know about PrintIM at all.
//
// There is no shipped implementation: PrintIM decode is explicitly out of
// scope here, the same way it is for ICC, JUMBF CBOR, Photoshop-IRB-inner-
// IPTC, and MakerNote value decode.
type PrintImFieldNamer interface {
	PrintImFieldName(index uint32) string
}

// NewPrintImFieldKey (metakey.go) is how a caller supplying its own
// PrintImFieldNamer would key the resulting entries.
