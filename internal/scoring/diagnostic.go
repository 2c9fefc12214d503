package scoring

// Tier thresholds shared by the three index tables.
const (
	highTierThreshold = 4.0 // score >= 4.0 -> high tier
	lowTierThreshold  = 3.0 // score <  3.0 -> low tier
)

// Diagnostic is the descriptive payload for one index score.
type Diagnostic struct {
	Status string
	Report string
	Action string
}

// diagnosticTable holds the high, middle and low tier of one index.
type diagnosticTable struct {
	high   Diagnostic
	middle Diagnostic
	low    Diagnostic
}

func (t diagnosticTable) lookup(score float64) Diagnostic {
	switch {
	case score >= highTierThreshold:
		return t.high
	case score < lowTierThreshold:
		return t.low
	default:
		return t.middle
	}
}

var ipaTable = diagnosticTable{
	high: Diagnostic{
		Status: "Self-directed profile",
		Report: "Strong internal discipline and sense of ownership. Defines how the work gets done, not only what gets done.",
		Action: "Grant full control of the agenda. Avoid micromanagement and unnecessary status meetings.",
	},
	middle: Diagnostic{
		Status: "Balanced autonomy",
		Report: "Moves comfortably between autonomy and supervision depending on the project context.",
		Action: "Keep periodic alignments focused on outcomes rather than on the micro-process.",
	},
	low: Diagnostic{
		Status: "Structure dependence",
		Report: "Risk of procrastination without direct follow-up. Needs clear external goals.",
		Action: "Assign a supporting mentor and training in productivity methods such as GTD.",
	},
}

var irccTable = diagnosticTable{
	high: Diagnostic{
		Status: "Stability in chaos",
		Report: "High emotional resilience. Copes well with missing manuals and slow consensus decisions.",
		Action: "Allocate to greenfield projects or areas under construction. A strong facilitator during crises.",
	},
	middle: Diagnostic{
		Status: "Adaptive resilience",
		Report: "Tolerates moderate uncertainty but prefers some structural guidance.",
		Action: "Provide clear documentation while encouraging participation in collective decisions.",
	},
	low: Diagnostic{
		Status: "Vulnerability to ambiguity",
		Report: "Burnout risk in self-managed or flat systems. Missing hierarchy is perceived as insecurity.",
		Action: "Create islands of predictability with written processes and well-defined working agreements.",
	},
}

var iiseTable = diagnosticTable{
	high: Diagnostic{
		Status: "Cultural connector",
		Report: "Enables organisational learning by being open about mistakes. Coordinates peers naturally.",
		Action: "Ideal for mediation, onboarding and culture keeper roles (360-degree feedback).",
	},
	middle: Diagnostic{
		Status: "Social collaborator",
		Report: "Good level of transparency and cooperation, works well in multidisciplinary squads.",
		Action: "Encourage sharing lessons learned and process improvements with the group.",
	},
	low: Diagnostic{
		Status: "Silo profile",
		Report: "Tends to retain information or struggles with synchronous team work.",
		Action: "Training in nonviolent communication and reinforcement of radical transparency.",
	},
}

// DiagnoseIPA describes the readiness-for-autonomy index.
func DiagnoseIPA(score float64) Diagnostic { return ipaTable.lookup(score) }

// DiagnoseIRCC describes the resilience and cognitive load index.
func DiagnoseIRCC(score float64) Diagnostic { return irccTable.lookup(score) }

// DiagnoseIISE describes the social and ethical intelligence index.
func DiagnoseIISE(score float64) Diagnostic { return iiseTable.lookup(score) }
