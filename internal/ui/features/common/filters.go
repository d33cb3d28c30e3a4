// Package common holds view state shared by all dashboard pages: the
// filter panel, its session persistence and the sidebar model.
package common

import (
	"encoding/gob"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/emberstack/firedash/internal/config"
	"github.com/emberstack/firedash/internal/dataset"
	"github.com/emberstack/firedash/internal/store"
)

// Session values are gob encoded; slice values need registration.
func init() {
	gob.Register([]string{})
}

// SessionName is the cookie holding filter state between requests.
const SessionName = "firedash_session"

// Session keys for persisted filter state.
const (
	keyFrom    = "filter_from"
	keyTo      = "filter_to"
	keyStates  = "filter_states"
	keySeasons = "filter_seasons"
	keyRows    = "filter_rows"
)

// FilterState is the decoded filter panel selection for one request.
// Zero values mean unconstrained.
type FilterState struct {
	From    int
	To      int
	States  []string
	Seasons []string
	Rows    int
}

// StoreFilter converts the selection into a dataset query filter.
func (f FilterState) StoreFilter() store.Filter {
	return store.Filter{
		YearFrom: f.From,
		YearTo:   f.To,
		States:   f.States,
		Seasons:  f.Seasons,
	}
}

// PreviewRows returns the raw-data row count, clamped to the allowed options.
func (f FilterState) PreviewRows() int {
	return config.NormalizePreviewRows(f.Rows)
}

// ParseFilters restores the saved filter selection and applies any filter
// or row-count parameters carried by the request. The filter form always
// submits a "filters" marker, so an empty state or season selection clears
// the saved one instead of being mistaken for "form not submitted". The
// row selector posts on its own and leaves the filters untouched.
func ParseFilters(w http.ResponseWriter, r *http.Request, s sessions.Store) FilterState {
	session, _ := s.Get(r, SessionName)

	fs := FilterState{
		From:    intValue(session.Values[keyFrom]),
		To:      intValue(session.Values[keyTo]),
		States:  stringsValue(session.Values[keyStates]),
		Seasons: stringsValue(session.Values[keySeasons]),
		Rows:    intValue(session.Values[keyRows]),
	}

	q := r.URL.Query()
	changed := false
	if q.Has("filters") {
		fs.From, _ = strconv.Atoi(q.Get("from"))
		fs.To, _ = strconv.Atoi(q.Get("to"))
		if fs.From > fs.To && fs.To != 0 {
			fs.From, fs.To = fs.To, fs.From
		}
		fs.States = normalizeStates(q["states"])
		fs.Seasons = validSeasons(q["seasons"])
		changed = true
	}
	if q.Has("rows") {
		if n, err := strconv.Atoi(q.Get("rows")); err == nil {
			fs.Rows = config.NormalizePreviewRows(n)
			changed = true
		}
	}

	if changed {
		session.Values[keyFrom] = fs.From
		session.Values[keyTo] = fs.To
		session.Values[keyStates] = fs.States
		session.Values[keySeasons] = fs.Seasons
		session.Values[keyRows] = fs.Rows
		// A failed cookie write only loses persistence for the next
		// request; the current page still renders.
		_ = session.Save(r, w)
	}
	return fs
}

func intValue(v any) int {
	n, _ := v.(int)
	return n
}

func stringsValue(v any) []string {
	s, _ := v.([]string)
	return s
}

func normalizeStates(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func validSeasons(values []string) []string {
	var out []string
	for _, v := range values {
		for _, season := range dataset.Seasons {
			if strings.EqualFold(strings.TrimSpace(v), season) {
				out = append(out, season)
				break
			}
		}
	}
	return out
}
