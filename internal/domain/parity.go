package domain

// Parity is the result of a parity check on an integer.
// Exactly one of Even and Odd is true.
type Parity struct {
	N    int64 `json:"n"`
	Even bool  `json:"even"`
	Odd  bool  `json:"odd"`
}
