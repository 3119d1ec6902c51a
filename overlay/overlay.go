// Package overlay computes where option markers sit around the live bin
// preview. Markers stack into vertical columns of at most six, alternating
// between the right and left edges so they frame the product without
// covering it; once the columns would crowd a narrow container the whole
// layout degrades to 80% scale.
package overlay

import "math"

const (
	padding        = 20.0
	iconSize       = 64.0
	spacing        = 16.0
	maxPerColumn   = 6
	scaleThreshold = 4 // columns beyond this trigger the reduced scale
	reducedScale   = 0.8
)

// Position places one marker relative to the container's top-left corner.
// Scale is 1 unless the layout degraded.
type Position struct {
	X, Y  float64
	Scale float64
}

// Layout returns one position per marker, deterministic for identical
// inputs. Zero or negative counts and degenerate container dimensions
// yield nil.
func Layout(count int, containerWidth, containerHeight float64) []Position {
	if count <= 0 {
		return nil
	}
	if !validDimension(containerWidth) || !validDimension(containerHeight) {
		return nil
	}

	totalColumns := (count + maxPerColumn - 1) / maxPerColumn
	scale := 1.0
	colSpacing := spacing
	if totalColumns > scaleThreshold {
		scale = reducedScale
		colSpacing = spacing * reducedScale
	}

	positions := make([]Position, 0, count)
	for i := 0; i < count; i++ {
		column := i / maxPerColumn
		row := i % maxPerColumn
		sideOffset := float64(column/2) * (iconSize*scale + colSpacing)

		var x float64
		if column%2 == 0 {
			x = containerWidth - iconSize*scale - padding - sideOffset
		} else {
			x = padding + sideOffset
		}

		inColumn := count - column*maxPerColumn
		if inColumn > maxPerColumn {
			inColumn = maxPerColumn
		}
		columnHeight := float64(inColumn)*iconSize*scale + float64(inColumn-1)*spacing
		startY := (containerHeight - columnHeight) / 2
		y := startY + float64(row)*(iconSize*scale+spacing)

		positions = append(positions, Position{X: x, Y: y, Scale: scale})
	}
	return positions
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
