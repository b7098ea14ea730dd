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

package sfntfile

// MalformedFileError indicates that a font file could not be parsed.
type MalformedFileError struct {
	Reason string
	Err    error
}

func (err *MalformedFileError) Error() string {
	if err.Err != nil {
		return "sfnt: " + err.Reason + ": " + err.Err.Error()
	}
	return "sfnt: " + err.Reason
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}
