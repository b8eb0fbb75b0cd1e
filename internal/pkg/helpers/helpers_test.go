package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseCommaList(t *testing.T) {
	require.Equal(t, []string{"student", "rep"}, ParseCommaList("student, rep"))
	require.Equal(t, []string{"admin"}, ParseCommaList("admin"))
	require.Equal(t, []string{"a", "b"}, ParseCommaList(" a ,, b , "))
	require.Equal(t, []string{}, ParseCommaList(""))
	require.NotNil(t, ParseCommaList(""))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-09-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-09-01T14:30:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 9, 1, 14, 30, 0, 0, time.UTC), got)

	got, err = ParseDate("")
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = ParseDate("01/09/2024")
	require.Error(t, err)
}
