// Package skeeball simulates Skee-Ball plays: a uniform draw picks a scoring
// zone from a fixed odds table and the zone decides the score.
package skeeball

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// DrawMin is the smallest value a draw can take.
	DrawMin = 1
	// DrawMax is the largest value a draw can take.
	DrawMax = 100
)

// ErrDrawOutOfRange indicates a draw outside [DrawMin, DrawMax].
var ErrDrawOutOfRange = errors.New("draw must be between 1 and 100")

// Zone is one of the six landing holes on the lane.
type Zone int

const (
	ZoneGutter Zone = iota
	ZoneTen
	ZoneTwenty
	ZoneForty
	ZoneSixty
	ZoneEighty
)

// ZoneCount is the number of zones on the lane.
const ZoneCount = 6

// zoneSpec ties a zone to the highest draw that lands in it and its score.
type zoneSpec struct {
	Zone    Zone
	UpperIn int
	Score   int
}

// zoneTable is ordered by UpperIn; each zone owns the draws above the previous
// entry's UpperIn up to and including its own.
var zoneTable = [ZoneCount]zoneSpec{
	{Zone: ZoneGutter, UpperIn: 30, Score: 0},
	{Zone: ZoneTen, UpperIn: 50, Score: 10},
	{Zone: ZoneTwenty, UpperIn: 70, Score: 20},
	{Zone: ZoneForty, UpperIn: 88, Score: 40},
	{Zone: ZoneSixty, UpperIn: 97, Score: 60},
	{Zone: ZoneEighty, UpperIn: 100, Score: 80},
}

// Zones returns every zone in lane order.
func Zones() []Zone {
	zones := make([]Zone, 0, ZoneCount)
	for _, spec := range zoneTable {
		zones = append(zones, spec.Zone)
	}
	return zones
}

// Valid reports whether z is one of the six lane zones.
func (z Zone) Valid() bool {
	return z >= ZoneGutter && z <= ZoneEighty
}

// Score returns the points awarded for landing in z.
//
// A zone outside the lane can only come from a broken selector, so Score
// panics rather than inventing a value.
func (z Zone) Score() int {
	if !z.Valid() {
		panic(fmt.Sprintf("skeeball: score requested for invalid zone %d", int(z)))
	}
	return zoneTable[z].Score
}

// Probability returns the chance, in percent, of a draw landing in z.
func (z Zone) Probability() int {
	if !z.Valid() {
		return 0
	}
	lower := DrawMin - 1
	if z > ZoneGutter {
		lower = zoneTable[z-1].UpperIn
	}
	return zoneTable[z].UpperIn - lower
}

func (z Zone) String() string {
	if !z.Valid() {
		return fmt.Sprintf("Zone(%d)", int(z))
	}
	return fmt.Sprintf("Zone%d", int(z))
}

// SelectZone maps a draw in [DrawMin, DrawMax] to the zone it lands in.
//
//	1-30   -> 0 (30%)
//	31-50  -> 1 (20%)
//	51-70  -> 2 (20%)
//	71-88  -> 3 (18%)
//	89-97  -> 4 (9%)
//	98-100 -> 5 (3%)
func SelectZone(draw int) (Zone, error) {
	if draw < DrawMin || draw > DrawMax {
		return 0, ErrDrawOutOfRange
	}
	for _, spec := range zoneTable {
		if draw <= spec.UpperIn {
			return spec.Zone, nil
		}
	}
	// The last entry's UpperIn is DrawMax, so the loop always returns.
	panic(fmt.Sprintf("skeeball: zone table does not cover draw %d", draw))
}

// Draw returns a uniformly distributed value in [DrawMin, DrawMax].
func Draw(rng *rand.Rand) int {
	return rng.Intn(DrawMax-DrawMin+1) + DrawMin
}
