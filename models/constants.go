package models

/* The general trend here is we prefix the type of the constant */

// ---------------------------

const (
	DistanceHaversine = "haversine"
	DistanceChord     = "chord"
)

// ---------------------------
