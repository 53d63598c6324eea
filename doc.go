// SPDX-License-Identifier: MIT

// Package openmeta extracts, normalizes, edits, and re-emits image-file
// metadata (EXIF/TIFF, IPTC-IIM, XMP, ICC, Photoshop IRB, MPF, PrintIM,
// GeoTIFF, JUMBF, ISO-BMFF derived fields) from untrusted JPEG, PNG, WebP,
// GIF, TIFF/DNG, JP2, JXL, HEIF/AVIF, and CR3 bytes.
//
// A ByteArena backs every MetaKey/MetaValue that carries variable-length
// data; a MetaStore indexes a set of Entry values built against one arena
// and, once Finalize is called, never mutates them again. MetaEdit and
// Commit/Compact produce new, independent MetaStore snapshots rather than
// mutating an existing one in place.
//
// ByteArena, MetaStore, and MetaEdit carry no internal locking. Each value
// is owned by a single goroutine for its lifetime; sharing one across
// goroutines without external synchronization is not supported. Note that
// this is not thread safe.
package openmeta
