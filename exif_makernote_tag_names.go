// SPDX-License-Identifier: MIT

package openmeta

import "sort"

// exifMakerNoteTagNames holds one sorted tag-name table per maker note IFD
// token (the same "mk_canon"/"mk_nikon" tokens NewExifTagKey's ifd
// parameter accepts for maker note sub-IFDs). Coverage here is
// representative, not exhaustive: maker note layouts are vendor-private and
// only partially reverse-engineered; unlisted tags simply resolve to "".
var exifMakerNoteTagNames = map[string][]exifTagNameEntry{
	"mk_canon": {
		{0x0001, "CanonCameraSettings"},
		{0x0002, "CanonFocalLength"},
		{0x0003, "CanonFlashInfo"},
		{0x0004, "CanonShotInfo"},
		{0x0005, "CanonPanorama"},
		{0x0006, "CanonImageType"},
		{0x0007, "CanonFirmwareVersion"},
		{0x0008, "FileNumber"},
		{0x0009, "OwnerName"},
		{0x000c, "SerialNumber"},
		{0x000d, "CanonCameraInfo"},
		{0x000f, "CustomFunctions"},
		{0x0010, "CanonModelID"},
		{0x0012, "CanonAFInfo"},
		{0x0026, "CanonAFInfo2"},
		{0x0095, "LensModel"},
		{0x0096, "SerialInfo"},
		{0x00a0, "InternalSerialNumber"},
		{0x00a1, "DustRemovalData"},
		{0x00b4, "ColorSpace"},
	},
	"mk_nikon": {
		{0x0001, "MakerNoteVersion"},
		{0x0002, "ISO"},
		{0x0004, "Quality"},
		{0x0005, "WhiteBalance"},
		{0x0006, "Sharpness"},
		{0x0007, "FocusMode"},
		{0x0008, "FlashSetting"},
		{0x0009, "FlashType"},
		{0x000b, "WhiteBalanceFineTune"},
		{0x000c, "WB_RBLevels"},
		{0x000e, "ExposureDiff"},
		{0x0011, "PreviewIFD"},
		{0x0012, "FlashExposureComp"},
		{0x0013, "ISOSetting"},
		{0x0017, "FlashExposureBracketValue"},
		{0x0018, "FlashExposureComp2"},
		{0x0019, "ExposureMode"},
		{0x001b, "CropHiSpeed"},
		{0x001d, "SerialNumber"},
		{0x001e, "ColorSpace"},
		{0x0025, "AFInfo2"},
		{0x0083, "LensType"},
		{0x0084, "Lens"},
	},
}

// ExifMakerNoteTagName returns a best-effort name for a numeric maker note
// tag id under maker (an ifd token like "mk_canon"), or "" if the maker or
// tag is not in the table.
func ExifMakerNoteTagName(maker string, tagID uint16) string {
	table, ok := exifMakerNoteTagNames[maker]
	if !ok {
		return ""
	}
	i := sort.Search(len(table), func(i int) bool {
		return table[i].tagID >= tagID
	})
	if i < len(table) && table[i].tagID == tagID {
		return table[i].name
	}
	return ""
}
