package render

import "fmt"

// Band is a run of whole rows of the image assigned to one worker
type Band struct {
	RowCount int
	StartRow int
}

func (b *Band) String() string {
	output := "{Band "
	output += fmt.Sprintf("StartRow: %d ", b.StartRow)
	output += fmt.Sprintf("RowCount: %d}", b.RowCount)
	return output
}

// Partition splits height rows into consecutive bands, one per worker. Rows
// per band round up so every row is covered; the last band takes whatever
// remains and may be shorter. More workers than rows degenerates to one row
// per band with the extra capacity unused.
func Partition(height int, workerCount int) []Band {
	rowsPerBand := height/workerCount + 1

	bands := make([]Band, 0, workerCount)
	for top := 0; top < height; top += rowsPerBand {
		rows := rowsPerBand
		if top+rows > height {
			rows = height - top
		}
		bands = append(bands, Band{StartRow: top, RowCount: rows})
	}
	return bands
}
