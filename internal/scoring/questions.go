package scoring

const (
	// TotalQuestions is the size of the question bank and the divisor of the overall score.
	TotalQuestions = 30
	// QuestionsPerBlock is the number of answers averaged into each block score.
	QuestionsPerBlock = 3
	// QuestionsPerStep is how many questions the questionnaire shows per page.
	QuestionsPerStep = 10

	// MinScale and MaxScale bound a Likert answer.
	MinScale = 1
	MaxScale = 5
)

// Question is one Likert statement of the questionnaire.
type Question struct {
	ID    int
	Text  string
	Block Block
}

// Question ids cycle through the blocks, so every page of ten covers B1..B10 once.
var questionBank = []Question{
	{ID: 1, Block: BlockAuthority, Text: "I prefer that decisions be made by whoever holds the most context, not by whoever holds the highest position."},
	{ID: 2, Block: BlockRoles, Text: "I feel comfortable when my responsibilities change according to the needs of the moment."},
	{ID: 3, Block: BlockAmiability, Text: "I enjoy building solutions together with colleagues more than delivering them alone."},
	{ID: 4, Block: BlockDiscipline, Text: "I organise my own agenda and deliver on time without anyone needing to follow up."},
	{ID: 5, Block: BlockTransparency, Text: "I believe salaries, goals and results should be visible to the whole team."},
	{ID: 6, Block: BlockAmbiguity, Text: "I can move forward on a task even when there is no manual or clear procedure for it."},
	{ID: 7, Block: BlockStability, Text: "I stay calm when a project changes direction suddenly."},
	{ID: 8, Block: BlockConsensus, Text: "I accept that important decisions take longer when everyone affected is heard."},
	{ID: 9, Block: BlockCoordination, Text: "I coordinate directly with peers from other areas without waiting for a manager to mediate."},
	{ID: 10, Block: BlockInitiative, Text: "I often start improvements nobody asked me for."},

	{ID: 11, Block: BlockAuthority, Text: "I would rather influence decisions through arguments than through hierarchy."},
	{ID: 12, Block: BlockRoles, Text: "I like holding several roles at once instead of a single fixed job description."},
	{ID: 13, Block: BlockAmiability, Text: "I make an effort to keep a friendly climate even during disagreements."},
	{ID: 14, Block: BlockDiscipline, Text: "I keep my commitments visible and updated without being asked for status reports."},
	{ID: 15, Block: BlockTransparency, Text: "I share my mistakes openly so the team can learn from them."},
	{ID: 16, Block: BlockAmbiguity, Text: "I am comfortable deciding with incomplete information."},
	{ID: 17, Block: BlockStability, Text: "I take responsibility for the outcomes of decisions I helped make, even when they go wrong."},
	{ID: 18, Block: BlockConsensus, Text: "I can support a group decision I do not fully agree with."},
	{ID: 19, Block: BlockCoordination, Text: "I offer help to colleagues when I notice they are overloaded."},
	{ID: 20, Block: BlockInitiative, Text: "I feel motivated by the purpose of the work more than by external rewards."},

	{ID: 21, Block: BlockAuthority, Text: "I do not need a formal boss to feel that my work is well directed."},
	{ID: 22, Block: BlockRoles, Text: "I am comfortable negotiating with my peers which role I take in each project."},
	{ID: 23, Block: BlockAmiability, Text: "I give and ask for feedback frequently and respectfully."},
	{ID: 24, Block: BlockDiscipline, Text: "I use my own methods to plan and track my work."},
	{ID: 25, Block: BlockTransparency, Text: "I make the information I hold easy for others to access."},
	{ID: 26, Block: BlockAmbiguity, Text: "I see unclear situations as an opportunity rather than a threat."},
	{ID: 27, Block: BlockStability, Text: "I recover quickly after a conflict or a setback at work."},
	{ID: 28, Block: BlockConsensus, Text: "I am willing to review my position when the group brings new arguments."},
	{ID: 29, Block: BlockCoordination, Text: "I align priorities directly with other teams when our work depends on each other."},
	{ID: 30, Block: BlockInitiative, Text: "I propose new projects when I see an opportunity for the organisation."},
}

// Questions returns a copy of the question bank in display order.
func Questions() []Question {
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out
}

// QuestionByID looks a question up by its id.
func QuestionByID(id int) (Question, bool) {
	if id < 1 || id > len(questionBank) {
		return Question{}, false
	}
	return questionBank[id-1], true
}

// Steps splits the bank into pages of QuestionsPerStep questions.
func Steps() [][]Question {
	all := Questions()
	steps := make([][]Question, 0, (len(all)+QuestionsPerStep-1)/QuestionsPerStep)
	for start := 0; start < len(all); start += QuestionsPerStep {
		end := start + QuestionsPerStep
		if end > len(all) {
			end = len(all)
		}
		steps = append(steps, all[start:end])
	}
	return steps
}

// questionsByBlock groups question ids by block.
func questionsByBlock() map[Block][]int {
	out := make(map[Block][]int, len(Blocks))
	for _, q := range questionBank {
		out[q.Block] = append(out[q.Block], q.ID)
	}
	return out
}
