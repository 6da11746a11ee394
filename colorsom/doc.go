// SPDX-License-Identifier: MIT

// Package colorsom is a ready-made SOM over RGB colours.
//
// Each cell of a width×height grid holds a random 3-dimensional weight in
// [0,1)³, interpreted as (red, green, blue). Training on a palette sorts the
// grid into smooth colour regions. The trained map can be exported as JSON
//
//	{"cells":[{"x":0,"y":0,"color":"#1F7A3C"}, ...]}
//
// or rendered as an image (one pixel per cell).
//
// Usage:
//
//	s, _ := colorsom.New(40, 40, colorsom.WithSeed(7))
//	err := s.Start(colorsom.DefaultPalette(), 1000, nil)
//	mj, _ := colorsom.NewMapJSON(s.Map())
//	data, _ := mj.ToJSON()
package colorsom
