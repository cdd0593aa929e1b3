package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GalleryData holds item selection state for the demo gallery.
type GalleryData struct {
	Selected int // tapped item index, -1 for none
	Hovered  int // item index under the pointer, -1 for none
}

var Gallery = donburi.NewComponentType[GalleryData]()

// Space holds the resolv space used for item hit-testing.
var Space = donburi.NewComponentType[resolv.Space]()
