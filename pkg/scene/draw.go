package scene

// Drawer renders a scene. Scene.Draw calls DrawGrid once, then DrawObject
// for every object from the bottom of the z-order to the top, then
// DrawBand if a rubber band is in progress.
type Drawer interface {
	DrawGrid(gridX, gridY, width, height float64)
	DrawObject(v ObjectView)
	DrawBand(r Rect)
}

// ObjectView is a snapshot of everything a Drawer needs to render one
// object. Preview equals Rect unless Hugging is set.
type ObjectView struct {
	Label   string
	Rect    Rect
	Preview Rect
	Hugging bool
	Moving  bool
	Status  Status
	Anchor  Anchor
	Handles [8]Rect
	Payload any
}
