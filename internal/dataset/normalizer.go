package dataset

import (
	"strings"

	"github.com/ppiankov/emotia/internal/model"
)

// idSuffix is the artifact of the corpus export: record ids carry the name
// of the JSON file each statement was originally published as.
const idSuffix = ".json"

// NormalizeIDs strips every literal ".json" from record ids. The rewrite is
// 1:1 — the returned slice has exactly the rows of the input, in order —
// and leaves the input untouched.
func NormalizeIDs(statements []model.Statement) []model.Statement {
	out := make([]model.Statement, len(statements))
	for i, st := range statements {
		st.ID = strings.ReplaceAll(st.ID, idSuffix, "")
		out[i] = st
	}
	return out
}
