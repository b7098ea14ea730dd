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

package nametable

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Encode converts a list of name records into a binary "name" table.
//
// Records are sorted by platform ID, encoding ID, language ID, and name
// ID.  Strings are stored as UTF-16 on the Unicode and Windows platforms,
// and using the Mac Roman encoding on the Macintosh platform.  Characters
// which cannot be represented in Mac Roman are replaced.
func Encode(records []Record) ([]byte, error) {
	type recInfo struct {
		Record
		offset uint16
		length uint16
	}
	recs := make([]*recInfo, 0, len(records))

	b := newNameBuilder()
	macEnc := encoding.ReplaceUnsupported(charmap.Macintosh.NewEncoder())
	for _, rec := range records {
		var data []byte
		switch rec.PlatformID {
		case PlatformUnicode, PlatformWindows:
			data = utf16Encode(rec.Value)
		case PlatformMac:
			if rec.EncodingID != EncodingMacRoman {
				return nil, fmt.Errorf("name %s: unsupported Mac encoding %d",
					rec.NameID, rec.EncodingID)
			}
			var err error
			data, err = macEnc.Bytes([]byte(rec.Value))
			if err != nil {
				return nil, fmt.Errorf("name %s: %w", rec.NameID, err)
			}
		default:
			return nil, fmt.Errorf("name %s: unsupported platform %d",
				rec.NameID, rec.PlatformID)
		}
		if len(data) > 0xFFFF {
			return nil, fmt.Errorf("name %s: value too long", rec.NameID)
		}

		offset, err := b.Add(data)
		if err != nil {
			return nil, err
		}
		recs = append(recs, &recInfo{
			Record: rec,
			offset: offset,
			length: uint16(len(data)),
		})
	}

	slices.SortStableFunc(recs, func(a, b *recInfo) int {
		if a.PlatformID != b.PlatformID {
			return int(a.PlatformID) - int(b.PlatformID)
		}
		if a.EncodingID != b.EncodingID {
			return int(a.EncodingID) - int(b.EncodingID)
		}
		if a.LanguageID != b.LanguageID {
			return int(a.LanguageID) - int(b.LanguageID)
		}
		return int(a.NameID) - int(b.NameID)
	})

	numRec := len(recs)
	startOfRecords := 6
	startOfStrings := startOfRecords + numRec*12
	if startOfStrings > 0xFFFF {
		return nil, errTooManyRecords
	}
	res := make([]byte, startOfStrings+len(b.data))

	res[2] = byte(numRec >> 8)
	res[3] = byte(numRec)
	res[4] = byte(startOfStrings >> 8)
	res[5] = byte(startOfStrings)
	for i, rec := range recs {
		base := startOfRecords + i*12
		res[base] = byte(rec.PlatformID >> 8)
		res[base+1] = byte(rec.PlatformID)
		res[base+2] = byte(rec.EncodingID >> 8)
		res[base+3] = byte(rec.EncodingID)
		res[base+4] = byte(rec.LanguageID >> 8)
		res[base+5] = byte(rec.LanguageID)
		res[base+6] = byte(rec.NameID >> 8)
		res[base+7] = byte(rec.NameID)
		res[base+8] = byte(rec.length >> 8)
		res[base+9] = byte(rec.length)
		res[base+10] = byte(rec.offset >> 8)
		res[base+11] = byte(rec.offset)
	}
	copy(res[startOfStrings:], b.data)

	return res, nil
}

// Decode reads a binary "name" table.
// Records on platforms other than Unicode, Macintosh/Roman and Windows are
// skipped.
func Decode(data []byte) ([]Record, error) {
	if len(data) < 6 {
		return nil, errMalformedNames
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	if version > 1 {
		return nil, errMalformedNames
	}

	numRec := int(data[2])<<8 + int(data[3])
	storageOffset := int(data[4])<<8 + int(data[5])

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) {
		return nil, errMalformedNames
	}
	if version > 0 {
		if endOfHeader+2 > len(data) {
			return nil, errMalformedNames
		}
		numLang := int(data[endOfHeader])<<8 + int(data[endOfHeader+1])
		endOfHeader += 2 + numLang*4
	}
	if storageOffset < endOfHeader || storageOffset > len(data) {
		return nil, errMalformedNames
	}

	macDec := charmap.Macintosh.NewDecoder()
	var res []Record
	for i := range numRec {
		pos := recBase + i*12
		rec := Record{
			PlatformID: uint16(data[pos])<<8 | uint16(data[pos+1]),
			EncodingID: uint16(data[pos+2])<<8 | uint16(data[pos+3]),
			LanguageID: uint16(data[pos+4])<<8 | uint16(data[pos+5]),
			NameID:     ID(data[pos+6])<<8 | ID(data[pos+7]),
		}
		nameLen := int(data[pos+8])<<8 | int(data[pos+9])
		nameOffset := int(data[pos+10])<<8 | int(data[pos+11])

		start := storageOffset + nameOffset
		if start+nameLen > len(data) {
			return nil, errMalformedNames
		}
		nameBytes := data[start : start+nameLen]

		switch rec.PlatformID {
		case PlatformUnicode, PlatformWindows:
			rec.Value = utf16Decode(nameBytes)
		case PlatformMac:
			if rec.EncodingID != EncodingMacRoman {
				continue
			}
			val, err := macDec.Bytes(nameBytes)
			if err != nil {
				continue
			}
			rec.Value = string(val)
		default:
			continue
		}
		res = append(res, rec)
	}
	return res, nil
}

// Lookup returns the value of the Windows English record with the given
// name ID, falling back to any other record with this ID.
func Lookup(records []Record, id ID) string {
	val := ""
	for _, rec := range records {
		if rec.NameID != id {
			continue
		}
		if rec.PlatformID == PlatformWindows && rec.LanguageID == LanguageWinEnUS {
			return rec.Value
		}
		if val == "" {
			val = rec.Value
		}
	}
	return val
}

type nameBuilder struct {
	data []byte
	idx  map[string]uint16
}

func newNameBuilder() *nameBuilder {
	return &nameBuilder{
		idx: make(map[string]uint16),
	}
}

func (nb *nameBuilder) Add(b []byte) (uint16, error) {
	key := string(b)
	if idx, ok := nb.idx[key]; ok {
		return idx, nil
	}
	if len(nb.data) > 0xFFFF {
		return 0, errTooMuchData
	}
	idx := uint16(len(nb.data))
	nb.idx[key] = idx
	nb.data = append(nb.data, b...)
	return idx, nil
}

func utf16Encode(s string) []byte {
	rr := utf16.Encode([]rune(s))
	res := make([]byte, len(rr)*2)
	for i, r := range rr {
		res[i*2] = byte(r >> 8)
		res[i*2+1] = byte(r)
	}
	return res
}

func utf16Decode(buf []byte) string {
	var nameWords []uint16
	for i := 0; i+1 < len(buf); i += 2 {
		nameWords = append(nameWords, uint16(buf[i])<<8|uint16(buf[i+1]))
	}
	return string(utf16.Decode(nameWords))
}

var (
	errMalformedNames = errors.New("malformed name table")
	errTooManyRecords = errors.New("too many name records")
	errTooMuchData    = errors.New("name table string storage too large")
)
