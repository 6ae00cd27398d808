// internal/adapters/out/placeholder/letter.go
package placeholder

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"strings"
	"unicode"

	"github.com/disintegration/imaging"
)

// Brand palette for generated stand-in tiles.
var (
	tileBackground = color.NRGBA{R: 0x2d, G: 0x31, B: 0x42, A: 0xff}
	tileGlyph      = color.NRGBA{R: 0xef, G: 0x83, B: 0x54, A: 0xff}
)

const tileSize = 128

// glyphs is a 5x7 pixel font covering A-Z. Each string is one row, '#'
// marks a lit pixel.
var glyphs = map[rune][7]string{
	'A': {".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'B': {"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."},
	'C': {".###.", "#...#", "#....", "#....", "#....", "#...#", ".###."},
	'D': {"####.", "#...#", "#...#", "#...#", "#...#", "#...#", "####."},
	'E': {"#####", "#....", "#....", "####.", "#....", "#....", "#####"},
	'F': {"#####", "#....", "#....", "####.", "#....", "#....", "#...."},
	'G': {".###.", "#...#", "#....", "#.###", "#...#", "#...#", ".###."},
	'H': {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'I': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "#####"},
	'J': {"..###", "...#.", "...#.", "...#.", "...#.", "#..#.", ".##.."},
	'K': {"#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#....", "#....", "#####"},
	'M': {"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#"},
	'N': {"#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'P': {"####.", "#...#", "#...#", "####.", "#....", "#....", "#...."},
	'Q': {".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R': {"####.", "#...#", "#...#", "####.", "#.#..", "#..#.", "#...#"},
	'S': {".####", "#....", "#....", ".###.", "....#", "....#", "####."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'V': {"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "##.##", "#...#"},
	'X': {"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#"},
	'Y': {"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#.."},
	'Z': {"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"},
}

// LetterPNGDataURI renders the first letter of name as a brand-colored PNG
// tile and returns it as a data URI, for use when a catalog image is missing
// from both storage and the document.
func LetterPNGDataURI(name string) string {
	r := firstLetter(name)

	// Glyph with a 2px margin, scaled up without smoothing so the blocks
	// stay crisp.
	small := imaging.New(9, 11, tileBackground)
	if rows, ok := glyphs[r]; ok {
		for y, row := range rows {
			for x, c := range row {
				if c == '#' {
					small.SetNRGBA(x+2, y+2, tileGlyph)
				}
			}
		}
	}
	tile := imaging.Resize(small, tileSize, tileSize, imaging.NearestNeighbor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, tile); err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func firstLetter(name string) rune {
	for _, r := range strings.TrimSpace(name) {
		u := unicode.ToUpper(r)
		if u >= 'A' && u <= 'Z' {
			return u
		}
	}
	return 'R'
}
