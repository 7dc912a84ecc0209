package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// maxGameActions bounds a single game. A real game is bounded by cards
// leaving circulation, so hitting this means an agent or the engine is
// stuck in a forced-move loop.
const maxGameActions = 10000

// GameEngine drives one board to completion by polling agents for
// decisions. It is the loop shared by simulation and interactive play.
type GameEngine struct {
	board        *Board
	agents       map[string]Agent
	defaultAgent Agent
	logger       *log.Logger
}

// GameResult describes a finished game
type GameResult struct {
	Winner  string
	Actions []string
}

// NewGameEngine creates an engine around the board. agents maps seat
// names to their agent; seats without an entry use defaultAgent.
func NewGameEngine(board *Board, agents map[string]Agent, defaultAgent Agent, logger *log.Logger) *GameEngine {
	return &GameEngine{
		board:        board,
		agents:       agents,
		defaultAgent: defaultAgent,
		logger:       logger,
	}
}

// Board returns the engine's board
func (ge *GameEngine) Board() *Board {
	return ge.board
}

// Play runs the game until a winner is determined and returns the
// result. An agent returning an illegal move is logged and replaced by
// the first legal move rather than aborting the game.
func (ge *GameEngine) Play() (*GameResult, error) {
	for steps := 0; ; steps++ {
		if winner, ok := ge.board.Winner(); ok {
			result := &GameResult{Winner: winner, Actions: ge.board.ActionLog()}
			ge.logger.Debug("game complete", "winner", winner, "actions", len(result.Actions))
			return result, nil
		}
		if steps >= maxGameActions {
			return nil, fmt.Errorf("game exceeded %d actions without a winner", maxGameActions)
		}

		name := ge.board.NextPlayer()
		agent := ge.defaultAgent
		if a, ok := ge.agents[name]; ok {
			agent = a
		}

		legal := ge.board.LegalMoves()
		decision := agent.Act(ge.board.State(), legal)
		ge.logger.Debug("seat action", "seat", name, "action", decision.Notation())

		if err := ge.board.Push(decision); err != nil {
			if !errors.Is(err, ErrIllegalMove) {
				return nil, err
			}
			ge.logger.Error("agent returned illegal move, using fallback",
				"seat", name, "action", decision.Notation())
			if err := ge.board.Push(legal[0]); err != nil {
				return nil, fmt.Errorf("fallback move failed: %w", err)
			}
		}
	}
}
