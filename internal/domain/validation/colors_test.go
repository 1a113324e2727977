package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#0a0A0b"))
	assert.False(t, IsHexColor("#fff"))
	assert.False(t, IsHexColor("0a0a0b"))
	assert.False(t, IsHexColor("#gggggg"))
}

func TestValidateMetaColors(t *testing.T) {
	errs := ValidateMetaColors("appearance", map[string]string{
		"light_meta_color":         "#ffffff",
		"dark_meta_color":          "black",
		"high_contrast_meta_color": "",
	})
	assert.Equal(t, []string{"appearance.dark_meta_color must be a hex color like #RRGGBB"}, errs)
}

func TestIsListenAddress(t *testing.T) {
	assert.True(t, IsListenAddress("127.0.0.1:7077"))
	assert.True(t, IsListenAddress(":8080"))
	assert.False(t, IsListenAddress("localhost"))
	assert.False(t, IsListenAddress("local host:80"))
	assert.False(t, IsListenAddress("127.0.0.1:"))
}
