package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCPF(t *testing.T) {
	assert.Equal(t, "52998224725", CleanCPF("529.982.247-25"))
	assert.Equal(t, "52998224725", CleanCPF("52998224725"))
	assert.Equal(t, "", CleanCPF("abc"))
}

func TestValidCPF(t *testing.T) {
	assert.True(t, ValidCPF("529.982.247-25"))
	assert.True(t, ValidCPF("52998224725"))
	assert.False(t, ValidCPF("5299822472"))
	assert.False(t, ValidCPF(""))
	assert.False(t, ValidCPF("529.982.247-256"))
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatCPF("52998224725"))
	assert.Equal(t, "529.982.247-25", FormatCPF("529.982.247-25"))
	// too short to format, returned as typed
	assert.Equal(t, "1234", FormatCPF("1234"))
}
