package morris

import (
	"math"

	"github.com/udisondev/la2go/internal/rng"
)

// Difficulty controls AI search depth, blunder rate, and evaluator bias
// (spec.md §4.8 "Difficulty controls").
type Difficulty int

const (
	Novice Difficulty = iota
	Intermediate
	Expert
	Master
)

// SearchDepth returns the minimax ply depth for d, within spec.md's
// search_depth ∈ {1,2,3,4}.
func (d Difficulty) SearchDepth() int {
	switch d {
	case Novice:
		return 1
	case Intermediate:
		return 2
	case Expert:
		return 3
	default:
		return 4
	}
}

// RandomMoveChance returns the probability of ignoring search entirely
// and picking a uniformly random legal move; only Novice ever rolls this
// (spec.md §4.8 "On Novice only, with probability random_move_chance").
func (d Difficulty) RandomMoveChance() float64 {
	if d == Novice {
		return 0.35
	}
	return 0
}

const (
	pieceWeight    = 100
	millWeight     = 50
	potentialWeight = 25
	mobilityWeight = 5
	strategicWeight = 10
	winScore       = 10000
)

// Evaluate scores the position from the AI's perspective per spec.md
// §4.8's evaluator formula, with ±10000 for a decided game.
func Evaluate(g *Game) int {
	if g.Result != nil {
		switch *g.Result {
		case ResultWin: // human wins
			return -winScore
		case ResultLoss, ResultForfeit:
			return winScore
		}
	}

	score := 0

	humanPieces := g.PiecesOnBoard[Human] + g.PiecesToPlace[Human]
	aiPieces := g.PiecesOnBoard[AI] + g.PiecesToPlace[AI]
	score += (aiPieces - humanPieces) * pieceWeight

	humanMills := countMills(g, Human)
	aiMills := countMills(g, AI)
	score += (aiMills - humanMills) * millWeight

	humanPotential := countPotentialMills(g, Human)
	aiPotential := countPotentialMills(g, AI)
	score += (aiPotential - humanPotential) * potentialWeight

	if g.Phase != Placing {
		humanMobility := len(movementMoves(g, Human))
		aiMobility := len(movementMoves(g, AI))
		score += (aiMobility - humanMobility) * mobilityWeight
	}

	for _, pos := range strategicPositions {
		occ, present := g.At(pos)
		if !present {
			continue
		}
		if occ == Human {
			score -= strategicWeight
		} else {
			score += strategicWeight
		}
	}

	return score
}

func countMills(g *Game, player Player) int {
	n := 0
	for _, m := range mills {
		if g.millComplete(m, player) {
			n++
		}
	}
	return n
}

func countPotentialMills(g *Game, player Player) int {
	n := 0
	for _, m := range mills {
		playerCount, emptyCount := 0, 0
		for _, pos := range m {
			occ, present := g.At(pos)
			switch {
			case !present:
				emptyCount++
			case occ == player:
				playerCount++
			}
		}
		if playerCount == 2 && emptyCount == 1 {
			n++
		}
	}
	return n
}

// GetAIMove chooses the AI's move for the current position: with
// probability d.RandomMoveChance() (Novice only) a uniformly random legal
// move, otherwise the minimax+alpha-beta result at d.SearchDepth().
func GetAIMove(g *Game, d Difficulty, r *rng.Source) (Move, bool) {
	legal := LegalMoves(g)
	if len(legal) == 0 {
		return Move{}, false
	}

	if r.Float64() < d.RandomMoveChance() {
		return legal[r.IntN(len(legal))], true
	}

	search := g.Clone()
	depth := d.SearchDepth()
	bestScore := math.MinInt32
	var best Move
	found := false

	for _, mv := range legal {
		u := ApplyForSearch(search, mv)
		score := minimax(search, depth-1, math.MinInt32, math.MaxInt32, false)
		Unmake(search, u)

		if !found || score > bestScore {
			bestScore = score
			best = mv
			found = true
		}
	}

	return best, found
}

// minimax is the alpha-beta search over the make/unmake discipline:
// no clone is taken inside the recursion (spec.md §4.8).
func minimax(g *Game, depth int, alpha, beta int, maximizing bool) int {
	if depth == 0 || g.Result != nil {
		return Evaluate(g)
	}

	legal := LegalMoves(g)
	if len(legal) == 0 {
		return Evaluate(g)
	}

	if maximizing {
		maxEval := math.MinInt32
		for _, mv := range legal {
			u := ApplyForSearch(g, mv)
			eval := minimax(g, depth-1, alpha, beta, false)
			Unmake(g, u)

			if eval > maxEval {
				maxEval = eval
			}
			if eval > alpha {
				alpha = eval
			}
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	minEval := math.MaxInt32
	for _, mv := range legal {
		u := ApplyForSearch(g, mv)
		eval := minimax(g, depth-1, alpha, beta, true)
		Unmake(g, u)

		if eval < minEval {
			minEval = eval
		}
		if eval < beta {
			beta = eval
		}
		if beta <= alpha {
			break
		}
	}
	return minEval
}
