package morris

// LegalMoves returns every move available to the current player given
// the game's phase/must_capture state (spec.md §4.8 "legal moves depend
// on (phase, must_capture, current_player)").
func LegalMoves(g *Game) []Move {
	if g.Result != nil {
		return nil
	}
	if g.MustCapture {
		return captureMoves(g, g.CurrentPlayer)
	}
	switch g.Phase {
	case Placing:
		return placingMoves(g)
	default:
		return movementMoves(g, g.CurrentPlayer)
	}
}

func placingMoves(g *Game) []Move {
	if g.PiecesLeft(g.CurrentPlayer) == 0 {
		return nil
	}
	var moves []Move
	for pos := 0; pos < NumPositions; pos++ {
		if _, occupied := g.At(pos); !occupied {
			moves = append(moves, Move{Kind: MovePlace, Pos: pos})
		}
	}
	return moves
}

func movementMoves(g *Game, player Player) []Move {
	var moves []Move
	canFly := g.CanFly(player)
	for from := 0; from < NumPositions; from++ {
		occ, present := g.At(from)
		if !present || occ != player {
			continue
		}
		if canFly {
			for to := 0; to < NumPositions; to++ {
				if _, occupied := g.At(to); !occupied {
					moves = append(moves, Move{Kind: MoveSlide, From: from, To: to})
				}
			}
			continue
		}
		for _, to := range adjacencies[from] {
			if _, occupied := g.At(to); !occupied {
				moves = append(moves, Move{Kind: MoveSlide, From: from, To: to})
			}
		}
	}
	return moves
}

func captureMoves(g *Game, player Player) []Move {
	opponent := player.Opponent()

	allInMills := true
	for pos := 0; pos < NumPositions; pos++ {
		occ, present := g.At(pos)
		if !present || occ != opponent {
			continue
		}
		if !g.IsInMill(pos, opponent) {
			allInMills = false
			break
		}
	}

	var moves []Move
	for pos := 0; pos < NumPositions; pos++ {
		occ, present := g.At(pos)
		if !present || occ != opponent {
			continue
		}
		if allInMills || !g.IsInMill(pos, opponent) {
			moves = append(moves, Move{Kind: MoveCapture, Pos: pos})
		}
	}
	return moves
}

// undo carries enough state to reverse ApplyForSearch exactly, matching
// spec.md §4.8's "move undo must restore: must_capture, phase,
// current_player, game_result, board content ..., piece counts".
type undo struct {
	mv             Move
	prevMustCapture bool
	prevPhase      Phase
	prevPlayer     Player
	prevResult     *Result
	capturedPlayer *Player
}

// ApplyForSearch applies mv during AI search and returns an undo record;
// never clones the game (spec.md §4.8's make/unmake discipline).
func ApplyForSearch(g *Game, mv Move) undo {
	u := undo{
		mv:              mv,
		prevMustCapture: g.MustCapture,
		prevPhase:       g.Phase,
		prevPlayer:      g.CurrentPlayer,
		prevResult:      g.Result,
	}

	switch mv.Kind {
	case MovePlace:
		g.set(mv.Pos, g.CurrentPlayer)
		g.PiecesToPlace[g.CurrentPlayer]--
		g.PiecesOnBoard[g.CurrentPlayer]++
		if g.FormsMill(mv.Pos, g.CurrentPlayer) {
			g.MustCapture = true
		} else {
			endTurnForSearch(g)
		}
	case MoveSlide:
		g.clear(mv.From)
		g.set(mv.To, g.CurrentPlayer)
		if g.FormsMill(mv.To, g.CurrentPlayer) {
			g.MustCapture = true
		} else {
			endTurnForSearch(g)
		}
	case MoveCapture:
		opponent := g.CurrentPlayer.Opponent()
		o := opponent
		u.capturedPlayer = &o
		g.clear(mv.Pos)
		g.PiecesOnBoard[opponent]--
		g.MustCapture = false
		endTurnForSearch(g)
	}

	return u
}

// Unmake reverses ApplyForSearch, restoring g to its pre-move state.
func Unmake(g *Game, u undo) {
	g.MustCapture = u.prevMustCapture
	g.Phase = u.prevPhase
	g.CurrentPlayer = u.prevPlayer
	g.Result = u.prevResult

	switch u.mv.Kind {
	case MovePlace:
		g.clear(u.mv.Pos)
		g.PiecesToPlace[u.prevPlayer]++
		g.PiecesOnBoard[u.prevPlayer]--
	case MoveSlide:
		g.clear(u.mv.To)
		g.set(u.mv.From, u.prevPlayer)
	case MoveCapture:
		if u.capturedPlayer != nil {
			g.set(u.mv.Pos, *u.capturedPlayer)
			g.PiecesOnBoard[*u.capturedPlayer]++
		}
	}
}

// Apply applies mv as a genuine (non-search) game action, handling the
// phase/turn bookkeeping a live player or final AI choice goes through.
func Apply(g *Game, mv Move) {
	switch mv.Kind {
	case MovePlace:
		g.set(mv.Pos, g.CurrentPlayer)
		g.PiecesToPlace[g.CurrentPlayer]--
		g.PiecesOnBoard[g.CurrentPlayer]++
		if g.FormsMill(mv.Pos, g.CurrentPlayer) {
			g.MustCapture = true
		} else {
			endTurn(g)
		}
	case MoveSlide:
		g.clear(mv.From)
		g.set(mv.To, g.CurrentPlayer)
		if g.FormsMill(mv.To, g.CurrentPlayer) {
			g.MustCapture = true
		} else {
			endTurn(g)
		}
	case MoveCapture:
		opponent := g.CurrentPlayer.Opponent()
		g.clear(mv.Pos)
		g.PiecesOnBoard[opponent]--
		g.MustCapture = false
		endTurn(g)
	}
}

func endTurnForSearch(g *Game) {
	transitionPhase(g)
	g.CurrentPlayer = g.CurrentPlayer.Opponent()
	checkWinCondition(g)
}

func endTurn(g *Game) {
	transitionPhase(g)
	g.CurrentPlayer = g.CurrentPlayer.Opponent()
	g.SelectedPosition = nil
	checkWinCondition(g)
}

func transitionPhase(g *Game) {
	if g.Phase == Placing && g.PiecesToPlace[Human] == 0 && g.PiecesToPlace[AI] == 0 {
		g.Phase = Moving
	}
}

func checkWinCondition(g *Game) {
	if g.Result != nil || g.Phase == Placing {
		return
	}
	if g.PiecesOnBoard[Human] < 3 && g.PiecesToPlace[Human] == 0 {
		r := ResultLoss
		g.Result = &r
		return
	}
	if g.PiecesOnBoard[AI] < 3 && g.PiecesToPlace[AI] == 0 {
		r := ResultWin
		g.Result = &r
		return
	}
	moves := LegalMoves(g)
	if len(moves) == 0 && !g.MustCapture {
		var r Result
		if g.CurrentPlayer == Human {
			r = ResultLoss
		} else {
			r = ResultWin
		}
		g.Result = &r
	}
}
