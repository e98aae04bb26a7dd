package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"azul/game"
	"azul/searcher"
)

const searchIterations = 1000

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	rand.Seed(uint64(time.Now().UnixNano()))

	in := bufio.NewScanner(os.Stdin)

	numPlayers := promptInt(in, "How many players? ", 2, 4)
	state, err := game.NewAzulState(numPlayers, game.RandomRefill{})
	if err != nil {
		log.Fatal().Err(err).Msg("could not start the game")
	}

	aiSeat := promptInt(in, fmt.Sprintf("Which player is the AI? (0-%d) ", numPlayers-1),
		0, numPlayers-1)

	mcts := searcher.NewMCTS(
		searcher.WithIterations(searchIterations),
		searcher.WithMetrics(),
	)

	for len(state.Winners()) == 0 {
		fmt.Println(render(state))
		if state.CurrentPlayer() == aiSeat {
			next, metric := mcts.Search(state)
			if next == nil {
				log.Fatal().Msg("search found no move")
			}
			state = next.(*game.AzulState)
			if err := state.RefillIfNeeded(game.RandomRefill{}); err != nil {
				log.Fatal().Err(err).Msg("refill failed")
			}
			log.Info().
				Int("iterations", metric.Iterations).
				Dur("duration", metric.Duration).
				Msg("AI moved")
		} else {
			humanMove(in, state)
		}
	}

	fmt.Println(render(state))
	fmt.Printf("Winners: %v\n", state.Winners())
}

// humanMove prompts until the current player enters a legal move and applies
// it. Rule violations print their reason and re-prompt.
func humanMove(in *bufio.Scanner, state *game.AzulState) {
	for {
		fmt.Printf("Player %d, enter your move (location color row): ", state.CurrentPlayer())
		if !in.Scan() {
			os.Exit(0)
		}
		fields := strings.Fields(strings.ToUpper(in.Text()))
		if len(fields) != 3 {
			fmt.Printf("Enter three fields: location (0-%d), color (B/Y/R/K/W), row (0-4, or -1 for the floor line)\n",
				state.NumLocations()-1)
			continue
		}

		location, err := strconv.Atoi(fields[0])
		if err != nil {
			fmt.Printf("%q is not a location number\n", fields[0])
			continue
		}
		color, err := game.ParseColor(fields[1])
		if err != nil {
			fmt.Println(err)
			continue
		}
		row, err := strconv.Atoi(fields[2])
		if err != nil {
			fmt.Printf("%q is not a row number\n", fields[2])
			continue
		}

		if err := state.ApplyMove(location, color, row, game.RandomRefill{}); err != nil {
			fmt.Println(err)
			continue
		}
		return
	}
}

func promptInt(in *bufio.Scanner, prompt string, lo, hi int) int {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			os.Exit(0)
		}
		value, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil || value < lo || value > hi {
			fmt.Printf("Please enter a number from %d-%d\n", lo, hi)
			continue
		}
		return value
	}
}
