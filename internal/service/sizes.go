package service

type Size struct {
	SizeID      string
	Name        string
	Description string
	Width       int
	Height      int
	AspectRatio string
}

var generalSizes = []Size{
	{SizeID: "square", Name: "Square", Description: "1080 x 1080 px", Width: 1080, Height: 1080, AspectRatio: "1:1"},
	{SizeID: "portrait", Name: "Portrait", Description: "1080 x 1350 px", Width: 1080, Height: 1350, AspectRatio: "4:5"},
	{SizeID: "rectangle", Name: "Rectangle", Description: "1080 x 720 px", Width: 1080, Height: 720, AspectRatio: "3:2"},
}

var defaultSize = Size{SizeID: "square", Name: "Square", Description: "1024x1024", Width: 1024, Height: 1024, AspectRatio: "1:1"}

// sizeByCode never fails, an unrecognized code falls back to the default
// square descriptor.
func sizeByCode(code string) Size {
	for _, size := range generalSizes {
		if size.SizeID == code {
			return size
		}
	}

	return defaultSize
}
