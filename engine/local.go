package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"azul/game"
	"azul/searcher"
)

// MaxMoves bounds a game in case an agent misbehaves; real games finish in
// well under a hundred moves.
const MaxMoves = 10000

// Agent chooses the successor state to adopt for one seat.
type Agent interface {
	ChooseSuccessor(state game.GameState) game.GameState
}

// MCTSAgent drives a seat with tree search.
type MCTSAgent struct {
	mcts *searcher.MCTS
}

func NewMCTSAgent(mcts *searcher.MCTS) *MCTSAgent {
	return &MCTSAgent{mcts: mcts}
}

func (a *MCTSAgent) ChooseSuccessor(state game.GameState) game.GameState {
	next, _ := a.mcts.Search(state)
	return next
}

// RandomAgent picks uniformly among the legal successors. Useful as a
// baseline opponent.
type RandomAgent struct{}

func (RandomAgent) ChooseSuccessor(state game.GameState) game.GameState {
	successors := state.LegalSuccessors()
	if len(successors) == 0 {
		return state.RandomSuccessor()
	}
	return successors[rand.Intn(len(successors))]
}

// Engine runs agent seats against each other on a live game state.
type Engine struct {
	State  *game.AzulState
	Agents []Agent
	Refill game.RefillPolicy
}

// LocalEngine creates an engine playing one agent per seat, with random
// refills between rounds.
func LocalEngine(state *game.AzulState, agents []Agent) *Engine {
	if len(agents) != state.NumPlayers() {
		panic("number of agents does not match number of players")
	}
	return &Engine{
		State:  state,
		Agents: agents,
		Refill: game.RandomRefill{},
	}
}

// Run executes the game loop until there is a winner.
func (e *Engine) Run() ([]int, error) {
	log.Info().Int("player", e.State.CurrentPlayer()).Msg("game starting")

	for moves := 1; moves <= MaxMoves; moves++ {
		if winners := e.State.Winners(); len(winners) > 0 {
			log.Info().Ints("winners", winners).Int("moves", moves-1).Msg("game over")
			return winners, nil
		}

		seat := e.State.CurrentPlayer()
		next := e.Agents[seat].ChooseSuccessor(e.State)
		if next == nil {
			return nil, fmt.Errorf("agent for player %d found no move", seat)
		}
		state, ok := next.(*game.AzulState)
		if !ok {
			return nil, fmt.Errorf("agent for player %d returned a foreign state", seat)
		}

		// Search successors stop at the round boundary without refilling.
		if err := state.RefillIfNeeded(e.Refill); err != nil {
			return nil, err
		}
		e.State = state
	}
	return nil, fmt.Errorf("no winner after %d moves", MaxMoves)
}
