package auth

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSource_NewID(t *testing.T) {
	source := NewRandomSource()

	id := source.NewID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	assert.NotEqual(t, id, source.NewID())
}

func TestRandomSource_NewToken(t *testing.T) {
	source := NewRandomSource()

	token := source.NewToken()
	assert.Len(t, token, 48)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{48}$`), token)
	assert.NotEqual(t, token, source.NewToken())
}

func TestRandomSource_NewResetCode(t *testing.T) {
	source := NewRandomSource()

	codePattern := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, codePattern, source.NewResetCode())
	}
}
