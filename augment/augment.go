// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package augment inserts error-routing statements into Express-style
// catch blocks.
//
// The target shape is three adjacent lines: a two-space-indented catch
// header, a four-space-indented console.error call and a four-space-indented
// res.status call. Unless the matched span already mentions logRouteError or
// logCriticalError, a logRouteError statement is inserted between the last
// two lines. Because the inserted statement both carries the marker and
// breaks the three-line adjacency, a second pass over augmented output
// changes nothing.
package augment

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"regexp"

	"addroutelog/logger"
)

// catchShape matches the three-line catch-block shape. The groups capture
// the catch header, the error-report line and the start of the
// response-status line; the lines must be exactly adjacent.
var catchShape = regexp.MustCompile(`(  \} catch \([^)]+\) \{[ \t]*\n)(    console\.error\([^\n]+\n)(    res\.status\()`)

// insertLine is the statement added after the error-report line. Failures
// of logRouteError itself are swallowed so that reporting an error can
// never break the response path.
const insertLine = "    await logRouteError(error, req).catch(() => {});\n"

// markers exempt a span from augmentation: their presence means error
// routing already exists there.
var markers = [][]byte{
	[]byte("logRouteError"),
	[]byte("logCriticalError"),
}

// Transform returns src with insertLine added to every non-exempt
// occurrence of catchShape, along with the number of insertions made.
//
// Occurrences are scanned left to right and never overlap. The transform
// only inserts: no existing byte is removed or reordered. When n is zero
// the returned slice is src itself, byte-identical and unchanged.
func Transform(src []byte) (out []byte, n int) {
	locs := catchShape.FindAllSubmatchIndex(src, -1)
	if len(locs) == 0 {
		return src, 0
	}

	var buf bytes.Buffer
	last := 0
	for _, m := range locs {
		if exempt(src[m[0]:m[1]]) {
			continue
		}
		// Insert between the error-report line (second group) and the
		// response-status line (third group).
		at := m[5]
		buf.Write(src[last:at])
		buf.WriteString(insertLine)
		last = at
		n++
	}
	if n == 0 {
		return src, 0
	}
	buf.Write(src[last:])
	return buf.Bytes(), n
}

func exempt(span []byte) bool {
	for _, m := range markers {
		if bytes.Contains(span, m) {
			return true
		}
	}
	return false
}

// File applies [Transform] to the file at path and reports the number of
// insertions made.
//
// The file is rewritten only when the transform changed something; an
// unchanged file is never opened for writing, so its bytes and modification
// time stay untouched. The write replaces the whole file at once, after the
// in-memory transform already succeeded.
func File(ctx context.Context, path string) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	out, n := Transform(src)
	if bytes.Equal(out, src) {
		logger.Debug(ctx, "no augmentable catch blocks", slog.String("path", path))
		return 0, nil
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return 0, err
	}
	logger.Debug(ctx, "rewrote file",
		slog.String("path", path),
		slog.Int("insertions", n))
	return n, nil
}
