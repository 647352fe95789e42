// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package diagram

// Shape is a node shape understood by every renderer.
type Shape string

const (
	ShapeRecord    Shape = "record"
	ShapeRectangle Shape = "rectangle"
	ShapeEllipse   Shape = "ellipse"
)

// Shapes lists every valid shape.
func Shapes() []Shape {
	return []Shape{ShapeRecord, ShapeRectangle, ShapeEllipse}
}

// Valid reports whether s is one of the known shapes.
func (s Shape) Valid() bool {
	for _, known := range Shapes() {
		if s == known {
			return true
		}
	}
	return false
}

// Color is a named color from the fixed palette. The zero value means "renderer default".
type Color string

const (
	ColorNone        Color = ""
	ColorBlack       Color = "black"
	ColorWhite       Color = "white"
	ColorGray        Color = "gray"
	ColorLightGray   Color = "lightgray"
	ColorRed         Color = "red"
	ColorSalmon      Color = "salmon"
	ColorGreen       Color = "green"
	ColorLightGreen  Color = "lightgreen"
	ColorBlue        Color = "blue"
	ColorLightBlue   Color = "lightblue"
	ColorYellow      Color = "yellow"
	ColorLightYellow Color = "lightyellow"
	ColorOrange      Color = "orange"
	ColorPurple      Color = "purple"
	ColorPlum        Color = "plum"
	ColorCyan        Color = "cyan"
)

// Colors lists the palette.
func Colors() []Color {
	return []Color{
		ColorBlack, ColorWhite, ColorGray, ColorLightGray,
		ColorRed, ColorSalmon, ColorGreen, ColorLightGreen,
		ColorBlue, ColorLightBlue, ColorYellow, ColorLightYellow,
		ColorOrange, ColorPurple, ColorPlum, ColorCyan,
	}
}

// Valid reports whether c is in the palette or is ColorNone.
func (c Color) Valid() bool {
	if c == ColorNone {
		return true
	}
	for _, known := range Colors() {
		if c == known {
			return true
		}
	}
	return false
}

// Property maps a model field to the name it is displayed under.
type Property struct {
	Field   string
	Display string
}

// NodeStyle is everything a traversal needs to turn an element into a node.
type NodeStyle struct {
	Properties []Property
	Shape      Shape
	Color      Color
	FontColor  Color
}
