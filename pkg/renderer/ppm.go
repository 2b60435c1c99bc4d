package renderer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WritePPM writes pixels (row-major, top to bottom, left to right) as a
// plain PPM (P3) image to w.
func WritePPM(w io.Writer, width, height int, pixels [][3]uint8) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", width, height); err != nil {
		return errors.Wrap(err, "failed to write PPM header")
	}

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			px := pixels[j*width+i]
			if _, err := fmt.Fprintf(buf, "%d %d %d ", px[0], px[1], px[2]); err != nil {
				return errors.Wrapf(err, "failed to write pixel (%d, %d)", i, j)
			}
		}
		if _, err := buf.WriteString("\n"); err != nil {
			return errors.Wrap(err, "failed to write row terminator")
		}
	}

	return errors.Wrap(buf.Flush(), "failed to flush PPM output")
}
