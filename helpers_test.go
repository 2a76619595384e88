package silvox

import "image"

func grayFromRows(rows [][]uint8) *image.Gray {
	var w int
	if len(rows) > 0 {
		w = len(rows[0])
	}
	g := image.NewGray(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		copy(grayRow(g, y), row)
	}
	return g
}

func grayRows(g *image.Gray) [][]uint8 {
	res := make([][]uint8, g.Rect.Dy())
	for y := range res {
		res[y] = append([]uint8{}, grayRow(g, y)...)
	}
	return res
}

func solidGray(w, h int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, w, h))
}
