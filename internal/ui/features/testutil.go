// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/emberstack/firedash/internal/dataset"
	"github.com/emberstack/firedash/internal/observability"
	"github.com/emberstack/firedash/internal/store"
	"github.com/emberstack/firedash/internal/testutil"
	"github.com/emberstack/firedash/internal/ui/notifier"
)

// SessionSecret signs session cookies in handler tests.
const SessionSecret = "test-secret-key-32-bytes-long!!"

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Store        *store.Store
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore
	Metrics      *observability.Metrics
}

// FixtureRecords spans two states, two years and three seasons, enough to
// populate every page section.
func FixtureRecords() []dataset.Record {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	base := []dataset.Record{
		{ObjectID: 1, Year: 1995, Cause: "Lightning", SizeAcres: 1200, State: "CA", FireName: "RIDGE",
			Discovery: date(1995, 7, 4), Containment: date(1995, 7, 9)},
		{ObjectID: 2, Year: 1995, Cause: "Arson", SizeAcres: 80, State: "GA", FireName: "SWAMP",
			Discovery: date(1995, 1, 20), Containment: date(1995, 1, 22)},
		{ObjectID: 3, Year: 1996, Cause: "Lightning", SizeAcres: 4000, State: "CA", FireName: "CANYON",
			Discovery: date(1996, 8, 2), Containment: date(1996, 8, 15)},
		{ObjectID: 4, Year: 1996, Cause: "Campfire", SizeAcres: 3, State: "GA", FireName: "",
			Discovery: date(1996, 10, 12), Containment: date(1996, 10, 12)},
	}
	out := make([]dataset.Record, len(base))
	for i, rec := range base {
		out[i] = dataset.Derive(rec)
	}
	return out
}

// SetupTestFixture builds an in-memory store loaded with the given records
// (FixtureRecords when none are passed) plus the session store, notifier
// and metrics a page handler needs.
func SetupTestFixture(t *testing.T, records ...dataset.Record) *TestFixture {
	t.Helper()

	if len(records) == 0 {
		records = FixtureRecords()
	}

	s := store.New(store.Config{
		Logger: testutil.NewTestLogger(t),
		Clock:  clockwork.NewFakeClockAt(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, s.LoadRecords(context.Background(), records))
	t.Cleanup(func() { _ = s.Close() })

	return &TestFixture{
		Store:        s,
		Notifier:     notifier.New(),
		SessionStore: sessions.NewCookieStore([]byte(SessionSecret)),
		Metrics:      observability.NewMetricsForTesting(),
	}
}

// NewTestNotifier creates a notifier for testing.
func NewTestNotifier() *notifier.Notifier {
	return notifier.New()
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte(SessionSecret))
}
