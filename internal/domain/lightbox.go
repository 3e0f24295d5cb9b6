package domain

// Lightbox is the gallery viewer state for one contributor.
type Lightbox struct {
	Items []GalleryItem
	Index int
}

// Open returns a lightbox positioned at i, clamped to the item range.
func (l Lightbox) Open(i int) Lightbox {
	switch {
	case len(l.Items) == 0 || i < 0:
		i = 0
	case i >= len(l.Items):
		i = len(l.Items) - 1
	}
	return Lightbox{Items: l.Items, Index: i}
}

// Current returns the item under the cursor, or false for an empty gallery.
func (l Lightbox) Current() (GalleryItem, bool) {
	if len(l.Items) == 0 {
		return GalleryItem{}, false
	}
	return l.Items[l.Index], true
}

// NextIndex is the index after the cursor, wrapping to the first item.
func (l Lightbox) NextIndex() int {
	if len(l.Items) == 0 {
		return 0
	}
	return (l.Index + 1) % len(l.Items)
}

// PrevIndex is the index before the cursor, wrapping to the last item.
func (l Lightbox) PrevIndex() int {
	if len(l.Items) == 0 {
		return 0
	}
	return (l.Index - 1 + len(l.Items)) % len(l.Items)
}
