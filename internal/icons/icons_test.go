package icons

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineWidthEndpointsTable(t *testing.T) {
	t.Parallel()

	cases := map[int][2]int{
		8:   {16, 22},
		15:  {14, 24},
		25:  {12, 26},
		35:  {10, 28},
		50:  {8, 30},
		60:  {6, 32},
		100: {4, 34},
	}

	for width, want := range cases {
		t.Run(fmt.Sprintf("width_%d", width), func(t *testing.T) {
			t.Parallel()
			x1, x2 := LineWidthEndpoints(width)
			assert.Equal(t, want[0], x1)
			assert.Equal(t, want[1], x2)
		})
	}
}

func TestLineWidthEndpointsGrowWithWidth(t *testing.T) {
	t.Parallel()

	widths := []int{8, 15, 25, 35, 50, 60, 100}
	prev := -1
	for _, width := range widths {
		x1, x2 := LineWidthEndpoints(width)
		length := x2 - x1
		assert.Greater(t, length, prev, "segment for %d%% should be longer than the previous", width)
		prev = length
	}
}

func TestLineWidthEndpointsUnknownWidthUsesFullSegment(t *testing.T) {
	t.Parallel()

	for _, width := range []int{0, -3, 42, 999} {
		x1, x2 := LineWidthEndpoints(width)
		assert.Equal(t, 4, x1)
		assert.Equal(t, 34, x2)
	}
}

func TestLineWidthMarkupEmbedsEndpoints(t *testing.T) {
	t.Parallel()

	markup := LineWidth(50)
	assert.Contains(t, markup, `x1="8"`)
	assert.Contains(t, markup, `x2="30"`)
	assert.Contains(t, markup, `viewBox="0 0 38 24"`)
}

func TestThicknessMarkupEncodesStrokeWeight(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Thickness(4), `stroke-width="4"`)
	assert.Contains(t, Thickness(1), `stroke-width="1"`)
}
