package component

// Camera only scrolls vertically. Y is the world y of the top of the view.
type Camera struct {
	Y float64
}

var CameraComponent = NewComponent[Camera]()
