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
	"strings"
	"time"
)

// Config holds the font meta data which is stored in the "name" table.
// Empty fields are omitted from the table.
type Config struct {
	Family         string `yaml:"family"`
	Subfamily      string `yaml:"subfamily"`
	FullName       string `yaml:"fullname"`
	Version        string `yaml:"version"`
	UniqueID       string `yaml:"unique_id"`
	Copyright      string `yaml:"copyright"`
	PostScriptName string `yaml:"postscript_name"`
	Trademark      string `yaml:"trademark"`
	Manufacturer   string `yaml:"manufacturer"`
	Designer       string `yaml:"designer"`
	Description    string `yaml:"description"`
	VendorURL      string `yaml:"url_vendor"`
	DesignerURL    string `yaml:"url_designer"`
	License        string `yaml:"license"`
	LicenseURL     string `yaml:"url_license"`
}

// get returns the value for the given name ID, with defaults filled in.
func (cfg *Config) get(id ID, date string) string {
	switch id {
	case Copyright:
		return cfg.Copyright
	case Family:
		return cfg.Family
	case Subfamily:
		return cfg.Subfamily
	case UniqueID:
		if cfg.UniqueID != "" {
			return withDate(cfg.UniqueID, date)
		}
		return withDate(cfg.get(FullName, date), date)
	case FullName:
		if cfg.FullName != "" {
			return cfg.FullName
		}
		return strings.TrimSpace(cfg.Family + " " + cfg.Subfamily)
	case Version:
		return withDate(cfg.Version, date)
	case PostScriptName:
		if cfg.PostScriptName != "" {
			return cfg.PostScriptName
		}
		return postScriptName(cfg.Family, cfg.Subfamily)
	case Trademark:
		return cfg.Trademark
	case Manufacturer:
		return cfg.Manufacturer
	case Designer:
		return cfg.Designer
	case Description:
		return cfg.Description
	case VendorURL:
		return cfg.VendorURL
	case DesignerURL:
		return cfg.DesignerURL
	case License:
		return cfg.License
	case LicenseURL:
		return cfg.LicenseURL
	default:
		return ""
	}
}

// Records returns the name records for the configuration.
//
// Each non-empty field gives three records, one each for the Unicode,
// Macintosh and Windows platforms.  The version and unique ID strings get
// the date of now, in UTC, appended.  If no unique ID is given, the full
// name is used.
func Records(cfg *Config, now time.Time) []Record {
	date := now.UTC().Format("20060102")

	var res []Record
	for id := ID(0); id <= MaxID; id++ {
		val := cfg.get(id, date)
		if val == "" {
			continue
		}
		for _, p := range platforms {
			res = append(res, Record{
				Value:      val,
				NameID:     id,
				PlatformID: p[0],
				EncodingID: p[1],
				LanguageID: p[2],
			})
		}
	}
	return res
}

func withDate(s, date string) string {
	if s == "" {
		return ""
	}
	return s + " " + date
}

// postScriptName constructs a PostScript name like "FooBar-Bold".
// Characters which are not allowed in PostScript names are dropped.
func postScriptName(family, subfamily string) string {
	clean := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r < 33 || r > 126 || strings.ContainsRune("[](){}<>/%", r) {
				return -1
			}
			return r
		}, s)
	}
	family = clean(family)
	if family == "" {
		return ""
	}
	subfamily = clean(subfamily)
	if subfamily == "" {
		return family
	}
	return family + "-" + subfamily
}
