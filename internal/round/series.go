package round

// Series is the score across "play again" rounds of one session. It lives
// only as long as the process.
type Series struct {
	HumanWins    int `json:"humanWins"`
	ComputerWins int `json:"computerWins"`
	Abandoned    int `json:"abandoned"`
}

func (s *Series) Record(res Result) {
	switch res.Winner() {
	case Human:
		s.HumanWins++
	case Computer:
		s.ComputerWins++
	default:
		s.Abandoned++
	}
}

func (s Series) Rounds() int {
	return s.HumanWins + s.ComputerWins + s.Abandoned
}
