package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nobsrom/internal/domain"
)

func gameList(names ...string) []domain.Game {
	games := make([]domain.Game, len(names))
	for i, n := range names {
		games[i] = domain.Game{
			ID:       domain.GameID("nes", "/roms/"+n),
			SystemID: "nes",
			Name:     n,
			Path:     "/roms/" + n,
		}
	}
	return games
}

func TestFilterEmptyQueryMatchesEverything(t *testing.T) {
	games := gameList("Metroid", "Mega Man 2", "Contra")

	view := Filter(games, "")

	assert.Equal(t, []int{0, 1, 2}, view.Indices)
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	games := gameList("Metroid", "Mega Man 2", "Contra", "METAL GEAR")

	view := Filter(games, "me")

	assert.Equal(t, []int{0, 1, 3}, view.Indices)
}

func TestFilterPreservesOrder(t *testing.T) {
	games := gameList("Zelda II", "Zelda", "Gradius")

	view := Filter(games, "zelda")

	assert.Equal(t, []int{0, 1}, view.Indices)
}

func TestFilterNoMatchesYieldsEmptyView(t *testing.T) {
	games := gameList("Metroid", "Contra")

	view := Filter(games, "xyzzy")

	assert.True(t, view.Empty())
	assert.Equal(t, 0, view.Len())
}

func TestFilterNarrowsMonotonically(t *testing.T) {
	games := gameList("Metroid", "Mega Man 2", "Mega Man 3", "Contra")

	// Each keystroke can only shrink (or keep) the previous match set
	prev := Filter(games, "").Len()
	for _, q := range []string{"m", "me", "meg", "mega"} {
		cur := Filter(games, q).Len()
		assert.LessOrEqual(t, cur, prev, "query %q grew the view", q)
		prev = cur
	}
	assert.Equal(t, 2, prev)
}
