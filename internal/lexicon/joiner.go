package lexicon

import "github.com/ppiankov/emotia/internal/model"

// Join inner-joins token rows against the lexicon: one EmotionHit per
// (token occurrence, category) pair. A word with two categories fans out
// to two hits; a word absent from the lexicon produces none — that is the
// filter working, not a lookup failure. Output order is source-row order,
// token order, then category order as fixed by the lexicon schema.
func (l *Lexicon) Join(rows []model.TokenRow) []model.EmotionHit {
	var hits []model.EmotionHit
	for _, row := range rows {
		for _, category := range l.Categories(row.Word) {
			hits = append(hits, model.EmotionHit{
				Statement: row.Statement,
				Word:      row.Word,
				Category:  category,
			})
		}
	}
	return hits
}
