package scoring

// Block is the code of one of the ten question groups (B1..B10).
type Block string

const (
	BlockAuthority    Block = "B1"
	BlockRoles        Block = "B2"
	BlockAmiability   Block = "B3"
	BlockDiscipline   Block = "B4"
	BlockTransparency Block = "B5"
	BlockAmbiguity    Block = "B6"
	BlockStability    Block = "B7"
	BlockConsensus    Block = "B8"
	BlockCoordination Block = "B9"
	BlockInitiative   Block = "B10"
)

// Blocks lists every block in display order.
var Blocks = []Block{
	BlockAuthority,
	BlockRoles,
	BlockAmiability,
	BlockDiscipline,
	BlockTransparency,
	BlockAmbiguity,
	BlockStability,
	BlockConsensus,
	BlockCoordination,
	BlockInitiative,
}

var blockNames = map[Block]string{
	BlockAuthority:    "Authority",
	BlockRoles:        "Roles",
	BlockAmiability:   "Amiability",
	BlockDiscipline:   "Discipline",
	BlockTransparency: "Transparency",
	BlockAmbiguity:    "Ambiguity",
	BlockStability:    "Stability",
	BlockConsensus:    "Consensus",
	BlockCoordination: "Coordination",
	BlockInitiative:   "Initiative",
}

// Name returns the short display name of the block, or the code itself when unknown.
func (b Block) Name() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return string(b)
}

// Composite block sets.
var (
	ipaBlocks   = []Block{BlockAuthority, BlockDiscipline, BlockInitiative}
	irccBlocks  = []Block{BlockAmbiguity, BlockStability, BlockConsensus}
	iiseBlocks  = []Block{BlockAmiability, BlockTransparency, BlockCoordination}
	axisXBlocks = []Block{
		BlockAuthority, BlockRoles, BlockDiscipline, BlockTransparency,
		BlockAmbiguity, BlockStability, BlockConsensus, BlockInitiative,
	}
	axisYBlocks = []Block{BlockAmiability, BlockCoordination}
)
