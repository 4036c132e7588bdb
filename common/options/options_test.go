package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	name  string
	count int
}

func TestApplyInOrder(t *testing.T) {
	s := Apply(&sample{},
		WrapperOptions[sample](func(s *sample) { s.name = "first" }),
		nil,
		WrapperOptions[sample](func(s *sample) { s.name += "-second"; s.count++ }),
	)

	assert.Equal(t, "first-second", s.name)
	assert.Equal(t, 1, s.count)
}

func TestApplyWithoutOptions(t *testing.T) {
	s := Apply(&sample{name: "keep"})
	assert.Equal(t, "keep", s.name)
}
