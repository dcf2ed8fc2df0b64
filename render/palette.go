// Package render turns game blocks into flat shaded screen polygons that
// any 2D backend can fill in order.
package render

import (
	"image/color"

	"github.com/kamstrup/intmap"

	"github.com/plus3/artris/tris"
)

// DefaultColors are handed out to pieces in order.
var DefaultColors = []color.RGBA{
	{102, 191, 255, 255},
	{255, 203, 0, 255},
	{135, 60, 190, 255},
	{0, 158, 47, 255},
	{255, 109, 194, 255},
	{0, 121, 241, 255},
	{255, 161, 0, 255},
	{230, 41, 55, 255},
}

// Palette gives every piece id a stable color. Blocks keep their piece id
// after cementing, so a piece keeps its color until its last block is
// cleared.
type Palette struct {
	colors   []color.RGBA
	assigned *intmap.Map[int, color.RGBA]
	next     int
}

// NewPalette cycles through colors, or DefaultColors when none are given.
func NewPalette(colors ...color.RGBA) *Palette {
	if len(colors) == 0 {
		colors = DefaultColors
	}
	return &Palette{
		colors:   colors,
		assigned: intmap.New[int, color.RGBA](64),
	}
}

// Color returns the color of pieceId, assigning the next one on first use.
func (p *Palette) Color(pieceId int) color.RGBA {
	if c, ok := p.assigned.Get(pieceId); ok {
		return c
	}
	c := p.colors[p.next%len(p.colors)]
	p.next++
	p.assigned.Put(pieceId, c)
	return c
}

// Len returns the number of pieces with an assigned color.
func (p *Palette) Len() int {
	return p.assigned.Len()
}

// Prune forgets the pieces that no longer own any of blocks and returns
// how many were dropped.
func (p *Palette) Prune(blocks []tris.Block) int {
	live := intmap.NewSet[int](len(blocks))
	for _, b := range blocks {
		live.Add(b.PieceId)
	}

	var stale []int
	p.assigned.ForEach(func(id int, _ color.RGBA) bool {
		if !live.Has(id) {
			stale = append(stale, id)
		}
		return true
	})
	for _, id := range stale {
		p.assigned.Del(id)
	}
	return len(stale)
}
