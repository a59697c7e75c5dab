package panel

import (
	"fmt"
	"strings"

	"github.com/atomicstack/mountpanel/internal/format/cell"
)

// Surface receives styled text at cell positions.
type Surface interface {
	Put(x, y int, text string) error
}

// ErrOutOfBounds is returned by Canvas for writes outside its rows.
type ErrOutOfBounds struct {
	X, Y int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("write at %d,%d is outside the surface", e.X, e.Y)
}

// Canvas is an in-memory row-oriented Surface. A write replaces the row from
// column x onward.
type Canvas struct {
	rows []string
}

// NewCanvas allocates height blank rows.
func NewCanvas(height int) *Canvas {
	if height < 0 {
		height = 0
	}
	return &Canvas{rows: make([]string, height)}
}

func (c *Canvas) Put(x, y int, text string) error {
	if y < 0 || y >= len(c.rows) || x < 0 {
		return &ErrOutOfBounds{X: x, Y: y}
	}
	c.rows[y] = strings.Repeat(" ", x) + text
	return nil
}

// Rows returns the rendered rows.
func (c *Canvas) Rows() []string {
	return c.rows
}

// String joins the rows with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.rows, "\n")
}

// Blank returns width spaces, the text of an empty cell run.
func Blank(width int) string {
	return cell.Pad("", width, cell.AlignLeft)
}
