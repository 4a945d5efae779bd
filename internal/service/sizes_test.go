package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeByCode(t *testing.T) {
	assert.Equal(t, "4:5", sizeByCode("portrait").AspectRatio)
	assert.Equal(t, 720, sizeByCode("rectangle").Height)

	fallback := sizeByCode("billboard")
	assert.Equal(t, "1:1", fallback.AspectRatio)
	assert.Equal(t, 1024, fallback.Width)
	assert.Equal(t, 1024, fallback.Height)
}
