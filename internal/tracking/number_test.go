package tracking

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^FL\d{11}$`)

	for i := 0; i < 1000; i++ {
		number := GenerateNumber()
		assert.Regexp(t, pattern, number)
		assert.True(t, strings.HasPrefix(number, "FL"))
		assert.Len(t, number, 13)
	}
}
