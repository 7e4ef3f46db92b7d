package solver

// Move records one guess of a solve: the constraint state it was played
// against, the state after its feedback was applied, and how many
// corpus words remained admissible afterwards.
type Move struct {
	Guess     string      `json:"guess"`
	Feedback  string      `json:"feedback"`
	Before    Constraints `json:"before"`
	After     Constraints `json:"after"`
	Remaining int         `json:"remaining"`
	Exhausted bool        `json:"exhausted"`
	Solved    bool        `json:"solved"`
}
