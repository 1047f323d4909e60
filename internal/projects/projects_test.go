package projects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NameAndDescription(t *testing.T) {
	lines := []string{
		"Chat App: Realtime messaging for small teams",
		"Built with websockets",
		"",
		"Portfolio Site: Personal site with a blog",
	}

	records := Parse(lines)
	require.Len(t, records, 2)

	assert.Equal(t, "Chat App", records[0].Name)
	assert.Equal(t, "Realtime messaging for small teams Built with websockets", records[0].Description)
	assert.NotNil(t, records[0].Technologies)

	assert.Equal(t, "Portfolio Site", records[1].Name)
	assert.Equal(t, "Personal site with a blog", records[1].Description)
}

func TestParse_HeaderWithEmptyDescription(t *testing.T) {
	records := Parse([]string{"Weather Dashboard:"})
	require.Len(t, records, 1)

	assert.Equal(t, "Weather Dashboard", records[0].Name)
	assert.Empty(t, records[0].Description)
}

func TestParse_LongColonLineIsProse(t *testing.T) {
	long := "Note: " + strings.Repeat("this line is definitely prose ", 4)
	require.GreaterOrEqual(t, len(long), 100)

	records := Parse([]string{"App: something", long})
	require.Len(t, records, 1)
	assert.Contains(t, records[0].Description, "prose")
}

func TestParse_LinesBeforeFirstHeaderIgnored(t *testing.T) {
	records := Parse([]string{"stray prose without a header", "App: something"})
	require.Len(t, records, 1)
	assert.Equal(t, "App", records[0].Name)
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(nil))
	assert.Empty(t, Parse([]string{"", "  "}))
}
