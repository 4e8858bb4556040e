package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("priya@example.com"))
	assert.True(t, ValidEmail("a.b+tag@sub.domain.in"))
	assert.False(t, ValidEmail("no-at-sign"))
	assert.False(t, ValidEmail("two@@example.com"))
	assert.False(t, ValidEmail("spaces @example.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("9876543210"))
	assert.True(t, ValidPhone("6000000000"))
	assert.False(t, ValidPhone("5876543210")) // leading digit below 6
	assert.False(t, ValidPhone("98765"))
	assert.False(t, ValidPhone("98765432101"))
	assert.False(t, ValidPhone("+919876543210"))
	assert.False(t, ValidPhone(""))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-01-31"))
	assert.False(t, ValidDate("31-01-2025"))
	assert.False(t, ValidDate("2025/01/31"))
	assert.False(t, ValidDate("2025-1-31"))
	assert.False(t, ValidDate(""))
}
