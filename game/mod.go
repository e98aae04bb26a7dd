package game

// StateHash identifies a concrete game state for diagnostics and tests.
type StateHash uint64

// GameState is the contract the search engine operates through. It carries
// no Azul knowledge: any turn-based game exposing these four operations can
// be searched.
//
// Successor states must be fully independent deep copies - the search engine
// explores many simulated futures and none of them may alias the state they
// were derived from.
type GameState interface {
	// LastPlayer returns the index of the player who made the move leading
	// to this state, or -1 before any move has been made.
	LastPlayer() int
	// LegalSuccessors returns every state reachable by one legal move. An
	// empty result marks a leaf: either the game is over or the state is
	// deliberately unexpandable (for Azul, a round boundary, whose branching
	// factor across the random refill is too large to enumerate).
	LegalSuccessors() []GameState
	// RandomSuccessor returns one randomly chosen continuation, performing
	// any random refill a round boundary requires first. It returns nil when
	// no continuation exists. Callers must check Winners before calling.
	RandomSuccessor() GameState
	// Winners returns the indices of the winning players. It is empty until
	// the game reaches its terminal round; ties produce multiple indices.
	Winners() []int
}
