package scoring

// Quadrant thresholds on the allocation matrix.
const (
	// QuadrantThreshold splits both axes; a value equal to it counts as high.
	QuadrantThreshold = 3.0
	// ExtremeLow and ExtremeHigh bound the balanced zone; values strictly outside are extreme.
	ExtremeLow  = 1.8
	ExtremeHigh = 4.2
)

// Classification is the quadrant profile persisted on each result.
type Classification string

const (
	ClassificationCollaborative Classification = "Collaborative self-management profile"
	ClassificationIndependent   Classification = "Independent self-management profile"
	ClassificationStructured    Classification = "Structured corporate profile"
	ClassificationIsolated      Classification = "Isolated specialist profile"
)

// Classify places (axisX, axisY) in one of the four quadrants.
//
//	Collaborative: self-management AND team work
//	Independent  : self-management AND individual work
//	Structured   : traditional management AND team work
//	Isolated     : traditional management AND individual work
func Classify(axisX, axisY float64) Classification {
	selfManaged := axisX >= QuadrantThreshold
	teamOriented := axisY >= QuadrantThreshold

	switch {
	case selfManaged && teamOriented:
		return ClassificationCollaborative
	case selfManaged && !teamOriented:
		return ClassificationIndependent
	case !selfManaged && teamOriented:
		return ClassificationStructured
	default:
		return ClassificationIsolated
	}
}

// SubQuadrant refines a quadrant by the distance of the axes from the centre.
type SubQuadrant struct {
	Classification Classification
	Label          string
	Description    string
	Extreme        bool
}

type subQuadrantText struct {
	label       string
	description string
}

// Indexed by quadrant, then [balanced, extreme].
var subQuadrants = map[Classification][2]subQuadrantText{
	ClassificationCollaborative: {
		{"Team Collaborator", "Thrives in self-organised squads, sharing decisions and ownership with peers while keeping delivery steady."},
		{"Governance Facilitator", "Energised by distributed authority and collective work; naturally facilitates dynamic governance and shared agreements."},
	},
	ClassificationIndependent: {
		{"Focused Specialist", "Works best with technical autonomy and clear accountability, collaborating when the work requires it."},
		{"Internal Entrepreneur", "Seeks full ownership of initiatives and self-direction; creates most value when given a mandate and room to run."},
	},
	ClassificationStructured: {
		{"Operational Leader", "Combines team orientation with a preference for defined structure; coordinates people well inside clear processes."},
		{"Climate Harmonizer", "Strongly relationship driven and reliant on hierarchy; keeps team cohesion but needs explicit direction."},
	},
	ClassificationIsolated: {
		{"Process Specialist", "Performs well on well-defined individual tasks with stable procedures and occasional guidance."},
		{"Norm Guardian", "Relies on rules, manuals and hierarchy; protects standards and predictability in structured environments."},
	},
}

// IsExtreme reports whether either axis lies strictly outside [ExtremeLow, ExtremeHigh].
func IsExtreme(axisX, axisY float64) bool {
	return axisX < ExtremeLow || axisX > ExtremeHigh || axisY < ExtremeLow || axisY > ExtremeHigh
}

// ClassifySubQuadrant returns one of the eight sub-quadrant outcomes for the axes.
// It must be fed the same axes that produced the stored classification.
func ClassifySubQuadrant(axisX, axisY float64) SubQuadrant {
	c := Classify(axisX, axisY)
	extreme := IsExtreme(axisX, axisY)
	idx := 0
	if extreme {
		idx = 1
	}
	text := subQuadrants[c][idx]
	return SubQuadrant{
		Classification: c,
		Label:          text.label,
		Description:    text.description,
		Extreme:        extreme,
	}
}

var quadrantGuidance = map[Classification]string{
	ClassificationCollaborative: "The Squad Facilitator: develop facilitation skills and dynamic governance practices.",
	ClassificationIndependent:   "The Autonomous Specialist: focus on clear accountability agreements and technical autonomy.",
	ClassificationStructured:    "The Traditional Team Manager: needs to unlearn control habits to thrive in self-managed environments.",
	ClassificationIsolated:      "The Process Executor: allocate to technical, repeatable work supported by well-defined manuals.",
}

// QuadrantGuidance is the development recommendation shown next to the allocation matrix.
func QuadrantGuidance(c Classification) string {
	return quadrantGuidance[c]
}
