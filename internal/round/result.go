package round

import "example.com/mastermind/internal/game"

// Info describes a round that is about to be played.
type Info struct {
	RoundID string     `json:"roundId"`
	Rules   game.Rules `json:"rules"`
	Maker   Role       `json:"maker"`
	Breaker Role       `json:"breaker"`
}

// Result is the finished round. The secret is revealed only here.
type Result struct {
	Info

	Outcome Outcome        `json:"outcome"`
	Turns   int            `json:"turns"`
	Secret  game.Code      `json:"secret"`
	History []game.Attempt `json:"history"`
}

// Winner is the role of the side that won, or "" for an abandoned round.
func (r Result) Winner() Role {
	switch r.Outcome {
	case Solved:
		return r.Breaker
	case Exhausted:
		return r.Maker
	default:
		return ""
	}
}

func (r *Round) result() Result {
	return Result{
		Info:    r.info(),
		Outcome: r.outcome,
		Turns:   len(r.history),
		Secret:  r.secret.Clone(),
		History: append([]game.Attempt(nil), r.history...),
	}
}
