// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"io"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/cube/xyz/puzzle"
	"github.com/muesli/termenv"
)

// sideLetters are the letters of the face each side is on when solved.
var sideLetters = [puzzle.SidesN]string{"R", "L", "U", "D", "F", "B"}

// stickerLetter returns the letter of the home side of the given color.
func stickerLetter(c color.RGBA) string {
	for sd, sc := range puzzle.SideColors {
		if sc == c {
			return sideLetters[sd]
		}
	}
	return "?"
}

// writeNet writes the unfolded facelets of the cube, with up above and
// down below the row of left, front, right and back. Each sticker is
// its letter on its color, as far as the output supports color.
func writeNet(w io.Writer, out *termenv.Output, fl [puzzle.SidesN]puzzle.Facelets) {
	k := len(fl[puzzle.PosX])
	sticker := func(c color.RGBA) string {
		s := out.String(stickerLetter(c) + " ")
		if out.Profile != termenv.Ascii {
			s = s.Background(out.Color(colors.AsHex(c)[:7])).Foreground(out.Color("#000000"))
		}
		return s.String()
	}
	row := func(sd puzzle.Sides, r int) string {
		var b strings.Builder
		for _, c := range fl[sd][r] {
			b.WriteString(sticker(c))
		}
		return b.String()
	}
	pad := strings.Repeat("  ", k)
	for r := range k {
		io.WriteString(w, pad+row(puzzle.PosY, r)+"\n")
	}
	for r := range k {
		io.WriteString(w, row(puzzle.NegX, r)+row(puzzle.PosZ, r)+row(puzzle.PosX, r)+row(puzzle.NegZ, r)+"\n")
	}
	for r := range k {
		io.WriteString(w, pad+row(puzzle.NegY, r)+"\n")
	}
}
