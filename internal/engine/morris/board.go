// Package morris implements Nine Men's Morris: the board-minigame AI
// archetype from spec.md §4.8 (minimax + alpha-beta + make/unmake undo,
// reused by every other board minigame's search per the same discipline).
//
// Grounded on original_source/src/challenges/morris/logic.rs (the
// current make/unmake search, superseding the legacy src/morris_logic.rs)
// for move generation, apply/undo, and evaluation; the 24-point board
// topology and its 16 mills are the standard Nine Men's Morris graph
// implied by the evaluator's strategic-position set {4,10,13,19}, the
// four points of degree 4 on that graph.
package morris

import "fmt"

// Player identifies a side.
type Player int

const (
	Human Player = iota
	AI
)

func (p Player) Opponent() Player {
	if p == Human {
		return AI
	}
	return Human
}

func (p Player) String() string {
	switch p {
	case Human:
		return "Human"
	case AI:
		return "AI"
	default:
		return fmt.Sprintf("UnknownPlayer(%d)", int(p))
	}
}

// Phase is the current stage of the game.
type Phase int

const (
	Placing Phase = iota
	Moving
	Flying
)

// Result is a terminal game outcome from the human player's perspective
// (Win = human wins).
type Result int

const (
	ResultWin Result = iota
	ResultLoss
	ResultForfeit
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "Win"
	case ResultLoss:
		return "Loss"
	case ResultForfeit:
		return "Forfeit"
	default:
		return fmt.Sprintf("UnknownResult(%d)", int(r))
	}
}

// NumPositions is the board size.
const NumPositions = 24

// PiecesPerSide is the starting stock for each player.
const PiecesPerSide = 9

// adjacencies maps each position to its directly connected neighbors on
// the standard three-concentric-squares board.
var adjacencies = [NumPositions][]int{
	0:  {1, 9},
	1:  {0, 2, 4},
	2:  {1, 14},
	3:  {4, 10},
	4:  {1, 3, 5, 7},
	5:  {4, 13},
	6:  {7, 11},
	7:  {4, 6, 8},
	8:  {7, 12},
	9:  {0, 10, 21},
	10: {3, 9, 11, 18},
	11: {6, 10, 15},
	12: {8, 13, 17},
	13: {5, 12, 14, 20},
	14: {2, 13, 23},
	15: {11, 16},
	16: {15, 17, 19},
	17: {12, 16},
	18: {10, 19},
	19: {16, 18, 20, 22},
	20: {13, 19},
	21: {9, 22},
	22: {19, 21, 23},
	23: {14, 22},
}

// mills lists the 16 fixed three-in-a-row lines.
var mills = [16][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11},
	{12, 13, 14}, {15, 16, 17}, {18, 19, 20}, {21, 22, 23},
	{0, 9, 21}, {3, 10, 18}, {6, 11, 15}, {1, 4, 7},
	{16, 19, 22}, {8, 12, 17}, {5, 13, 20}, {2, 14, 23},
}

// strategicPositions are the board's four degree-4 junctions, weighted
// in the evaluator.
var strategicPositions = [4]int{4, 10, 13, 19}

// Cell is the occupant of a board position, or nil if empty.
type Cell *Player

func cellOf(p Player) Cell {
	v := p
	return &v
}

// MoveKind tags the kind of move applied.
type MoveKind int

const (
	MovePlace MoveKind = iota
	MoveSlide
	MoveCapture
)

// Move is one legal action: Place(Pos), Move{From,To}, or Capture(Pos).
type Move struct {
	Kind MoveKind
	Pos  int
	From int
	To   int
}

// Game is the full Morris board state.
type Game struct {
	Board            [NumPositions]Cell
	CurrentPlayer    Player
	Phase            Phase
	PiecesToPlace    [2]int // index by Player
	PiecesOnBoard    [2]int
	MustCapture      bool
	Result           *Result
	SelectedPosition *int
}

// New returns a fresh game with both sides at full stock.
func New() *Game {
	g := &Game{CurrentPlayer: Human, Phase: Placing}
	g.PiecesToPlace[Human] = PiecesPerSide
	g.PiecesToPlace[AI] = PiecesPerSide
	return g
}

// Clone returns a deep copy of g, used once at the search root per
// spec.md §4.8 ("a single clone at the root is permitted").
func (g *Game) Clone() *Game {
	cp := *g
	if g.Result != nil {
		r := *g.Result
		cp.Result = &r
	}
	if g.SelectedPosition != nil {
		p := *g.SelectedPosition
		cp.SelectedPosition = &p
	}
	return &cp
}

// At returns the occupant of pos and true, or (0, false) if the cell is
// empty (nil).
func (g *Game) At(pos int) (Player, bool) {
	c := g.Board[pos]
	if c == nil {
		return 0, false
	}
	return *c, true
}

func (g *Game) set(pos int, p Player) { g.Board[pos] = cellOf(p) }
func (g *Game) clear(pos int)         { g.Board[pos] = nil }

// PiecesLeft returns the stock remaining to place for p.
func (g *Game) PiecesLeft(p Player) int { return g.PiecesToPlace[p] }

// CanFly reports whether p may fly (3 pieces on board, none left to place).
func (g *Game) CanFly(p Player) bool {
	return g.PiecesOnBoard[p] <= 3 && g.PiecesToPlace[p] == 0
}

// IsInMill reports whether the piece at pos (belonging to player) is
// currently part of a completed mill.
func (g *Game) IsInMill(pos int, player Player) bool {
	for _, m := range mills {
		if m[0] != pos && m[1] != pos && m[2] != pos {
			continue
		}
		if ok := g.millComplete(m, player); ok {
			return true
		}
	}
	return false
}

func (g *Game) millComplete(m [3]int, player Player) bool {
	for _, pos := range m {
		occ, present := g.At(pos)
		if !present || occ != player {
			return false
		}
	}
	return true
}

// FormsMill reports whether placing/moving player's piece to pos just
// completed a mill through that position.
func (g *Game) FormsMill(pos int, player Player) bool {
	return g.IsInMill(pos, player)
}
