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

package zwj

const (
	// ZWJ is the ZERO WIDTH JOINER character.
	ZWJ rune = 0x200D

	// VS16 is VARIATION SELECTOR-16, which requests emoji presentation.
	VS16 rune = 0xFE0F
)

// sequences lists the known emoji ZWJ sequences in fully qualified form.
// The lookup key for each sequence is the sequence with all ZWJ and VS16
// characters removed.
//
// See https://unicode.org/emoji/charts/emoji-zwj-sequences.html .
var sequences = [][]rune{
	// kiss: woman, man
	{0x1F469, ZWJ, 0x2764, VS16, ZWJ, 0x1F48B, ZWJ, 0x1F468},
	// kiss: man, man
	{0x1F468, ZWJ, 0x2764, VS16, ZWJ, 0x1F48B, ZWJ, 0x1F468},
	// kiss: woman, woman
	{0x1F469, ZWJ, 0x2764, VS16, ZWJ, 0x1F48B, ZWJ, 0x1F469},

	// couple with heart: woman, man
	{0x1F469, ZWJ, 0x2764, VS16, ZWJ, 0x1F468},
	// couple with heart: man, man
	{0x1F468, ZWJ, 0x2764, VS16, ZWJ, 0x1F468},
	// couple with heart: woman, woman
	{0x1F469, ZWJ, 0x2764, VS16, ZWJ, 0x1F469},

	// family: man, woman, boy
	{0x1F468, ZWJ, 0x1F469, ZWJ, 0x1F466},
	// family: man, woman, girl
	{0x1F468, ZWJ, 0x1F469, ZWJ, 0x1F467},
	// family: man, woman, girl, boy
	{0x1F468, ZWJ, 0x1F469, ZWJ, 0x1F467, ZWJ, 0x1F466},
	// family: man, woman, boy, boy
	{0x1F468, ZWJ, 0x1F469, ZWJ, 0x1F466, ZWJ, 0x1F466},
	// family: man, woman, girl, girl
	{0x1F468, ZWJ, 0x1F469, ZWJ, 0x1F467, ZWJ, 0x1F467},
	// family: man, man, boy
	{0x1F468, ZWJ, 0x1F468, ZWJ, 0x1F466},
	// family: man, man, girl
	{0x1F468, ZWJ, 0x1F468, ZWJ, 0x1F467},
	// family: man, man, girl, boy
	{0x1F468, ZWJ, 0x1F468, ZWJ, 0x1F467, ZWJ, 0x1F466},
	// family: man, man, boy, boy
	{0x1F468, ZWJ, 0x1F468, ZWJ, 0x1F466, ZWJ, 0x1F466},
	// family: man, man, girl, girl
	{0x1F468, ZWJ, 0x1F468, ZWJ, 0x1F467, ZWJ, 0x1F467},
	// family: woman, woman, boy
	{0x1F469, ZWJ, 0x1F469, ZWJ, 0x1F466},
	// family: woman, woman, girl
	{0x1F469, ZWJ, 0x1F469, ZWJ, 0x1F467},
	// family: woman, woman, girl, boy
	{0x1F469, ZWJ, 0x1F469, ZWJ, 0x1F467, ZWJ, 0x1F466},
	// family: woman, woman, boy, boy
	{0x1F469, ZWJ, 0x1F469, ZWJ, 0x1F466, ZWJ, 0x1F466},
	// family: woman, woman, girl, girl
	{0x1F469, ZWJ, 0x1F469, ZWJ, 0x1F467, ZWJ, 0x1F467},

	// eye in speech bubble
	{0x1F441, ZWJ, 0x1F5E8},

	// rainbow flag
	{0x1F3F3, VS16, ZWJ, 0x1F308},
	// pirate flag
	{0x1F3F4, ZWJ, 0x2620, VS16},
	// heart on fire
	{0x2764, VS16, ZWJ, 0x1F525},
	// mending heart
	{0x2764, VS16, ZWJ, 0x1FA79},
	// black cat
	{0x1F408, ZWJ, 0x2B1B},
	// service dog
	{0x1F415, ZWJ, 0x1F9BA},
	// polar bear
	{0x1F43B, ZWJ, 0x2744, VS16},
}

// table maps bare sequences to their fully qualified form.
var table = func() map[string][]rune {
	res := make(map[string][]rune, len(sequences))
	for _, seq := range sequences {
		res[string(strip(seq))] = seq
	}
	return res
}()

// strip returns seq with all ZWJ and VS16 characters removed.
func strip(seq []rune) []rune {
	res := make([]rune, 0, len(seq))
	for _, r := range seq {
		if r != ZWJ && r != VS16 {
			res = append(res, r)
		}
	}
	return res
}
