package chou

var (
	WinScores    = winScores
	Grow         = grow
	MergeRegions = mergeRegions
	MeanProp     = meanProp
)
