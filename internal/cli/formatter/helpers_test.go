package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_ThousandsSeparators(t *testing.T) {
	assert.Equal(t, "S/ 0.00", Money(0))
	assert.Equal(t, "S/ 1,234.50", Money(1234.5))
	assert.Equal(t, "S/ 1,000,000.00", Money(1e6))
	assert.Equal(t, "-S/ 250.75", Money(-250.75))
}

func TestMoney_RoundsCents(t *testing.T) {
	assert.Equal(t, "S/ 0.10", Money(0.1))
	assert.Equal(t, "S/ 2.00", Money(1.999))
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(-0.5, 8), "  0%")
	assert.Contains(t, RenderProgress(1.7, 8), "100%")
	assert.Contains(t, RenderProgress(0.45, 8), " 45%")
}
