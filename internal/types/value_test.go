package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_IsMateScore(t *testing.T) {
	assert.True(t, Value(Mate).IsMateScore())
	assert.True(t, Value(-Mate).IsMateScore())
	assert.True(t, (Mate - 5).IsMateScore())
	assert.False(t, Value(100).IsMateScore())
	assert.False(t, ValueDraw.IsMateScore())
}

func TestColor_Other(t *testing.T) {
	assert.Equal(t, Black, White.Other())
	assert.Equal(t, White, Black.Other())
	assert.Equal(t, ColorNone, ColorNone.Other())
}

func TestColor_IsValid(t *testing.T) {
	assert.True(t, White.IsValid())
	assert.True(t, Black.IsValid())
	assert.False(t, ColorNone.IsValid())
}
