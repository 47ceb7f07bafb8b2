package models

// Letter is a grade predicate from A (best) to E.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterE Letter = "E"
)

// GradeBand is one row of the score classification table. Min is an inclusive lower bound.
type GradeBand struct {
	Letter Letter
	Min    float64
	Max    float64
	Label  string
	Color  string
}

// gradeBands is the only place score thresholds are defined, ordered from highest band down.
var gradeBands = [...]GradeBand{
	{Letter: LetterA, Min: 85, Max: 100, Label: "excellent", Color: "#28a745"},
	{Letter: LetterB, Min: 70, Max: 84, Label: "good", Color: "#17a2b8"},
	{Letter: LetterC, Min: 60, Max: 69, Label: "average", Color: "#ffc107"},
	{Letter: LetterD, Min: 50, Max: 59, Label: "poor", Color: "#fd7e14"},
	{Letter: LetterE, Min: 0, Max: 49, Label: "fail", Color: "#dc3545"},
}

// GradeBands returns the classification table, highest band first.
func GradeBands() []GradeBand {
	return append([]GradeBand(nil), gradeBands[:]...)
}

// Letters lists the predicates in table order.
func Letters() []Letter {
	letters := make([]Letter, len(gradeBands))
	for i, band := range gradeBands {
		letters[i] = band.Letter
	}
	return letters
}

// Classify returns the band a score falls in. Scores below every lower bound land in the last band.
func Classify(score float64) GradeBand {
	for _, band := range gradeBands {
		if score >= band.Min {
			return band
		}
	}
	return gradeBands[len(gradeBands)-1]
}

// Predicate returns the letter for a score.
func Predicate(score float64) Letter {
	return Classify(score).Letter
}

// ClassLabel returns the display class for a score ("excellent" … "fail").
func ClassLabel(score float64) string {
	return Classify(score).Label
}

// Distribution counts scores per letter.
type Distribution map[Letter]int

// NewDistribution buckets scores into all five letters.
func NewDistribution(scores []float64) Distribution {
	dist := make(Distribution, len(gradeBands))
	for _, band := range gradeBands {
		dist[band.Letter] = 0
	}
	for _, score := range scores {
		dist[Predicate(score)]++
	}
	return dist
}

// DefaultGradeScale renders the table in the settings format.
func DefaultGradeScale() map[Letter]ScaleEntry {
	scale := make(map[Letter]ScaleEntry, len(gradeBands))
	for _, band := range gradeBands {
		scale[band.Letter] = ScaleEntry{Min: band.Min, Max: band.Max, Color: band.Color}
	}
	return scale
}
