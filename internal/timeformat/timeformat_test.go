package timeformat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEventCreate(t *testing.T) {
	parsed, err := ParseEventCreate("2024-03-10T14:30")
	require.NoError(t, err)
	require.Equal(t, 14, parsed.Hour())
	require.Equal(t, 30, parsed.Minute())

	_, err = ParseEventCreate("2024-03-10 14:30:00")
	require.Error(t, err, "the standard layout is not valid on the event-create path")
}

func TestParseDateTime(t *testing.T) {
	parsed, err := ParseDateTime("2024-03-10 14:30:05")
	require.NoError(t, err)
	require.Equal(t, 5, parsed.Second())

	_, err = ParseDateTime("2024-03-10T14:30")
	require.Error(t, err, "the event-create layout is not valid elsewhere")

	_, err = ParseDateTime("10/03/2024")
	require.Error(t, err)
}
