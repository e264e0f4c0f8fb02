package fiado

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCodeFormat(t *testing.T) {
	code, err := GenerateCode(func(string) (bool, error) { return false, nil })
	require.NoError(t, err)

	assert.Len(t, code, 6)
	n, err := strconv.Atoi(code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)
}

func TestGenerateCodeSkipsTakenCodes(t *testing.T) {
	var seen []string
	calls := 0
	code, err := GenerateCode(func(candidate string) (bool, error) {
		calls++
		// Reject the first three candidates as collisions.
		if calls <= 3 {
			seen = append(seen, candidate)
			return true, nil
		}
		return false, nil
	})
	require.NoError(t, err)
	assert.NotContains(t, seen, code)
	assert.Equal(t, 4, calls)
}

func TestGenerateCodeFailsClosedAfterTenAttempts(t *testing.T) {
	calls := 0
	code, err := GenerateCode(func(string) (bool, error) {
		calls++
		return true, nil
	})

	assert.ErrorIs(t, err, ErrNoUniqueCode)
	assert.Empty(t, code)
	assert.Equal(t, 10, calls)
}

func TestGenerateCodePropagatesLookupError(t *testing.T) {
	boom := errors.New("connection refused")
	code, err := GenerateCode(func(string) (bool, error) { return false, boom })

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, code)
}
