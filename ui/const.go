package ui

const (
	windowWidth  = 1280
	windowHeight = 860
)

const (
	statusNoFolder = "Choose a folder to start"
	statusNoImages = "No more images"
)

// Button labels
const (
	okLabel      = "OK"
	cropLabel    = "Crop"
	suggestLabel = "Suggest"
)
