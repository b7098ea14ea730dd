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

package build

import (
	"context"
	"fmt"
	"os"
	"sync"

	"seehuhn.de/go/colorfont/codepoint"
	"seehuhn.de/go/colorfont/engine"
	"seehuhn.de/go/colorfont/glyphindex"
	"seehuhn.de/go/colorfont/svgtable"
)

type colorJob struct {
	art svgtable.Artwork
	key codepoint.Key
	gid int
	doc []byte
}

// addColor rewrites the SVG files in dir into glyph descriptions and stores
// them as the "SVG " table of font.
//
// If skipUnmapped is set, files for which the font has no glyph are left
// out.  Otherwise these files give a warning and are kept, with glyph ID
// [engine.NotFound].
func (b *buildContext) addColor(ctx context.Context, font engine.Font, dir string, skipUnmapped bool) (int, error) {
	paths, keys, err := artworkFiles(dir)
	if err != nil {
		return 0, err
	}
	b.log.Info("importing color artwork", "dir", dir, "files", len(paths))

	// The index is only needed once the first color file is resolved.
	index := sync.OnceValues(func() (*glyphindex.Index, error) {
		subtables, err := font.CMapSubtables()
		if err != nil {
			return nil, err
		}
		return glyphindex.New(subtables, font)
	})

	var jobs []*colorJob
	for i, path := range paths {
		idx, err := index()
		if err != nil {
			return 0, err
		}
		key := keys[i]
		res := glyphindex.NewResolver(idx, font).Resolve(key)
		if !res.Found() {
			if skipUnmapped {
				b.log.Info("skipping file without glyph", "file", path, "key", key.String())
				continue
			}
			detail := fmt.Sprintf("no glyph %q", res.GlyphName)
			if key.IsLigature() {
				b.warn(GlyphNotFound, path, detail, "chars", charNames(key.Sequence))
			} else {
				b.warn(GlyphNotFound, path, detail, "chars", charNames([]rune{key.Code}))
			}
		}
		jobs = append(jobs, &colorJob{
			art: svgtable.Artwork{Path: path},
			key: key,
			gid: res.GlyphID,
		})
	}

	if err := b.rewriteAll(ctx, jobs); err != nil {
		return 0, err
	}

	table := &svgtable.Table{}
	for _, job := range jobs {
		replaced := table.Add(svgtable.Entry{
			Document: job.doc,
			Start:    job.gid,
			End:      job.gid,
			Source:   job.art.Path,
		})
		if replaced {
			b.warn(DuplicateGlyph, job.art.Path,
				fmt.Sprintf("replaces earlier artwork for glyph %d", job.gid))
		}
	}
	table.Sort()

	data, skipped, err := table.Encode()
	if err != nil {
		return 0, err
	}
	for _, e := range skipped {
		b.warn(SkippedEntry, e.Source, fmt.Sprintf("glyph ID %d cannot be stored", e.Start))
	}
	font.SetTable("SVG ", data)
	return table.Len() - len(skipped), nil
}

// rewriteAll reads and rewrites the files for all jobs, using up to
// b.workers goroutines.  The first error stops the remaining work.
func (b *buildContext) rewriteAll(ctx context.Context, jobs []*colorJob) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	todo := make(chan *colorJob)
	var wg sync.WaitGroup
	for range min(b.workers, len(jobs)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range todo {
				if err := b.rewrite(job); err != nil {
					cancel(err)
				}
			}
		}()
	}

feed:
	for _, job := range jobs {
		select {
		case todo <- job:
		case <-ctx.Done():
			break feed
		}
	}
	close(todo)
	wg.Wait()

	return context.Cause(ctx)
}

func (b *buildContext) rewrite(job *colorJob) error {
	data, err := os.ReadFile(job.art.Path)
	if err != nil {
		return err
	}
	job.art.Data = data

	doc, err := svgtable.Rewrite(data, job.gid, b.cfg.ColorSVGTransform, float64(b.cfg.EmSize))
	if err != nil {
		return fmt.Errorf("%s: %w", job.art.Path, err)
	}
	job.doc = doc
	b.log.Debug("rewrote color artwork", "file", job.art.Path, "key", job.key.String(), "gid", job.gid)
	return nil
}
