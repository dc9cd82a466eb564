package bracket

// FirstRoundPairings is the canonical seed pairing order within a region.
// It is both the display order and the order round-2 synthesis consumes:
// games 0 and 1 feed round-2 game 0, games 2 and 3 feed game 1, and so on.
var FirstRoundPairings = [8][2]int{
	{1, 16},
	{8, 9},
	{5, 12},
	{4, 13},
	{6, 11},
	{3, 14},
	{7, 10},
	{2, 15},
}

// RegionCount and TeamsPerRegion are fixed by the tournament format.
const (
	RegionCount    = 4
	TeamsPerRegion = 16
)
