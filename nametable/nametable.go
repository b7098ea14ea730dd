// seehuhn.de/go/colorfont - build SVG-in-OpenType color fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package nametable assembles the "name" table of a font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package nametable

import "strconv"

// ID identifies the meaning of a name record.
type ID uint16

// Name IDs used in this package.
const (
	Copyright      ID = 0
	Family         ID = 1
	Subfamily      ID = 2
	UniqueID       ID = 3
	FullName       ID = 4
	Version        ID = 5
	PostScriptName ID = 6
	Trademark      ID = 7
	Manufacturer   ID = 8
	Designer       ID = 9
	Description    ID = 10
	VendorURL      ID = 11
	DesignerURL    ID = 12
	License        ID = 13
	LicenseURL     ID = 14
)

// MaxID is the largest name ID used in this package.
const MaxID = LicenseURL

var idNames = [...]string{
	"Copyright", "Family", "Subfamily", "UniqueID", "FullName",
	"Version", "PostScriptName", "Trademark", "Manufacturer", "Designer",
	"Description", "VendorURL", "DesignerURL", "License", "LicenseURL",
}

func (id ID) String() string {
	if int(id) < len(idNames) {
		return idNames[id]
	}
	return "ID(" + strconv.Itoa(int(id)) + ")"
}

// Platform, encoding and language IDs of the records written by this package.
const (
	PlatformUnicode = 0
	PlatformMac     = 1
	PlatformWindows = 3

	EncodingUnicode1 = 0 // Unicode platform: Unicode 1.0 semantics
	EncodingMacRoman = 0
	EncodingWinBMP   = 1

	LanguageNone    = 0
	LanguageMacEn   = 0
	LanguageWinEnUS = 0x0409
)

// Record is a single entry of the "name" table.
type Record struct {
	Value      string
	NameID     ID
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
}

// platforms lists the (platform, encoding, language) triples used for
// every name.
var platforms = [3][3]uint16{
	{PlatformUnicode, EncodingUnicode1, LanguageNone},
	{PlatformMac, EncodingMacRoman, LanguageMacEn},
	{PlatformWindows, EncodingWinBMP, LanguageWinEnUS},
}
