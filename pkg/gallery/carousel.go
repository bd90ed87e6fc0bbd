package gallery

import "math/rand"

// Carousel is a cursor over a fetched list. Index -1 means nothing is
// selected, which is both the empty state and the closed lightbox.
type Carousel struct {
	index  int
	length int
}

// NewCarousel starts at the first item, or unselected when the list is
// empty.
func NewCarousel(length int) Carousel {
	c := Carousel{}
	c.Reset(length)
	return c
}

// Reset replaces the backing length after a refetch. Position never
// survives new data: first item, or none.
func (c *Carousel) Reset(length int) {
	if length < 0 {
		length = 0
	}
	c.length = length
	if length == 0 {
		c.index = -1
	} else {
		c.index = 0
	}
}

// Next advances with wrap-around. Navigating out of the cleared state
// selects the first item.
func (c *Carousel) Next() {
	if c.length == 0 {
		return
	}
	if c.index < 0 {
		c.index = 0
		return
	}
	c.index = (c.index + 1) % c.length
}

// Prev steps back with wrap-around, so prev from 0 lands on the last
// item.
func (c *Carousel) Prev() {
	if c.length == 0 {
		return
	}
	if c.index < 0 {
		c.index = 0
		return
	}
	c.index = (c.index - 1 + c.length) % c.length
}

// Random jumps to a uniformly chosen index.
func (c *Carousel) Random(rng *rand.Rand) {
	if c.length == 0 {
		return
	}
	c.index = rng.Intn(c.length)
}

// Select moves to i when it is in range. Used to open the lightbox on a
// grid item.
func (c *Carousel) Select(i int) {
	if i < 0 || i >= c.length {
		return
	}
	c.index = i
}

// Close clears the selection.
func (c *Carousel) Close() {
	c.index = -1
}

// Index returns the current position, -1 when nothing is selected.
func (c *Carousel) Index() int {
	return c.index
}

// Len returns the backing list length.
func (c *Carousel) Len() int {
	return c.length
}

// Empty reports whether there is nothing to show.
func (c *Carousel) Empty() bool {
	return c.length == 0
}
