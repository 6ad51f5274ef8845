package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRoomNumber(t *testing.T) {
	valid := []string{"101", "202", "999"}
	for _, n := range valid {
		assert.True(t, ValidateRoomNumber(n), "%q should be valid", n)
	}

	invalid := []string{"", "1", "12", "1234", "10a", "A101", " 101"}
	for _, n := range invalid {
		assert.False(t, ValidateRoomNumber(n), "%q should be invalid", n)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+15550100", "+44 20 7946 0958", "(555) 010-0123"}
	for _, p := range valid {
		assert.True(t, ValidatePhone(p), "%q should be valid", p)
	}

	invalid := []string{"", "abc", "+0123456"}
	for _, p := range invalid {
		assert.False(t, ValidatePhone(p), "%q should be invalid", p)
	}
}
