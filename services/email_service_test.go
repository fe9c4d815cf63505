package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹0.00", formatINR(0))
	assert.Equal(t, "₹999.00", formatINR(999))
	assert.Equal(t, "₹3,899.00", formatINR(3899))
	assert.Equal(t, "₹52,999.00", formatINR(52999))
	assert.Equal(t, "₹1,145,493.50", formatINR(1145493.5))
}

func TestHTMLEscape(t *testing.T) {
	assert.Equal(t, "Tom &amp; Jerry &lt;admin&gt;", htmlEscape(`Tom & Jerry <admin>`))
	assert.Equal(t, "plain text", htmlEscape("plain text"))
}
