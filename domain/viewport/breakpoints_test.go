package viewport

import (
	"testing"

	"roadmap/domain/roadmap"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		width int
		want  Device
	}{
		{0, Compact},
		{500, Compact},
		{639, Compact},
		{640, Medium},
		{768, Medium},
		{1023, Medium},
		{1024, Wide},
		{1200, Wide},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.width), "width %d", tt.width)
	}
}

func TestVariantFor(t *testing.T) {
	assert.Equal(t, roadmap.KindMobile, VariantFor(1023))
	assert.Equal(t, roadmap.KindDesktop, VariantFor(1024))
}

func TestNewBadge(t *testing.T) {
	b := NewBadge(Size{Width: 800, Height: 600})
	assert.Equal(t, Medium, b.Device)
	assert.Equal(t, roadmap.KindMobile, b.Variant)
	assert.Contains(t, b.Legend, "lg≥1024")
}
