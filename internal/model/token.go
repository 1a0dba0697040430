package model

// TokenRow is one (statement, word) pair produced by the tokenizer.
// The statement is carried by reference so every downstream stage keeps
// access to the full row context without copying it per token.
type TokenRow struct {
	Statement *Statement `json:"-"`
	Word      string     `json:"word"`
	Position  int        `json:"position"` // 0-based token index within the statement
}

// EmotionHit is one (token occurrence, lexicon category) match produced by
// the lexicon join. A word tagged with two categories fans out to two hits.
type EmotionHit struct {
	Statement *Statement `json:"-"`
	Word      string     `json:"word"`
	Category  Category   `json:"category"`
}
