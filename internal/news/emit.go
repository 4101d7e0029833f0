// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"encoding/json"
	"io"

	"github.com/pdiddy/newswire/pkg/types"
)

// ErrorReport is the structured failure payload written to stderr.
type ErrorReport struct {
	Error string `json:"error"`
}

// WriteArticles writes the result set as indented JSON to w, in provider
// order. A nil result set still prints as an empty JSON array.
func WriteArticles(w io.Writer, articles []types.Article) error {
	if articles == nil {
		articles = []types.Article{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}

// WriteError writes err as a single-line ErrorReport to w.
func WriteError(w io.Writer, err error) {
	json.NewEncoder(w).Encode(ErrorReport{Error: err.Error()})
}
