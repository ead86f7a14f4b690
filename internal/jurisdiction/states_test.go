package jurisdiction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllHasFiftyUniqueStates(t *testing.T) {
	all := All()
	assert.Len(t, all, 50)

	seen := map[string]bool{}
	for _, s := range all {
		assert.Len(t, s.Code, 2)
		assert.False(t, seen[s.Code], s.Code)
		seen[s.Code] = true
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("ny")
	assert.True(t, ok)
	assert.Equal(t, State{"NY", "New York"}, s)

	_, ok = Lookup("DC")
	assert.False(t, ok)
}

func TestResolveDefaultsToCalifornia(t *testing.T) {
	assert.Equal(t, "TX", Resolve("TX").Code)
	assert.Equal(t, State{"CA", "California"}, Resolve("ZZ"))
	assert.Equal(t, State{"CA", "California"}, Resolve(""))
}

func TestCodeForName(t *testing.T) {
	assert.Equal(t, "NC", CodeForName("north carolina"))
	assert.Equal(t, "WV", CodeForName(" West Virginia "))
	assert.Equal(t, "CA", CodeForName("Ontario"))
}
