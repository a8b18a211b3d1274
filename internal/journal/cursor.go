package journal

import (
	"time"

	"github.com/limbo/glowlog/pkg/datekey"
)

// Cursor is the currently viewed date. It never reads or writes the document.
type Cursor struct {
	selected time.Time
}

// NewCursor starts at the local calendar date of now
func NewCursor(now time.Time) *Cursor {
	// Today can't fail to parse
	day, _ := datekey.Parse(datekey.Today(now))
	return &Cursor{selected: day}
}

func (c *Cursor) Selected() string {
	return datekey.Format(c.selected)
}

func (c *Cursor) Set(date string) error {
	day, err := datekey.Parse(date)
	if err != nil {
		return err
	}
	c.selected = day
	return nil
}

// Shift moves the cursor by offset calendar days and returns the new date
func (c *Cursor) Shift(offset int) string {
	c.selected = c.selected.AddDate(0, 0, offset)
	return c.Selected()
}
