package analytics

import (
	"time"

	"github.com/google/uuid"
)

// CustomerBreakdown splits the current window's distinct buyers into new and
// returning, judged against the fetched order set rather than lifetime
// history. A buyer whose earliest attributed order in the set falls inside
// the current window is new; callers must not read this as lifetime-first.
type CustomerBreakdown struct {
	Total     int
	New       int
	Returning int
}

// ClassifyCustomers groups the fetched attributed orders by buyer and takes
// each buyer's earliest order timestamp in a single pass. Buyers with no
// order inside the current window do not count toward the breakdown.
func ClassifyCustomers(fetched []AttributedOrder, current Window) CustomerBreakdown {
	type buyerFacts struct {
		earliest  time.Time
		inCurrent bool
	}

	buyers := make(map[uuid.UUID]*buyerFacts)
	for _, entry := range fetched {
		id := entry.Order.CustomerID
		if id == uuid.Nil {
			continue
		}
		ts := entry.Order.CreatedAt
		facts, ok := buyers[id]
		if !ok {
			facts = &buyerFacts{earliest: ts}
			buyers[id] = facts
		} else if ts.Before(facts.earliest) {
			facts.earliest = ts
		}
		if current.Contains(ts) {
			facts.inCurrent = true
		}
	}

	var breakdown CustomerBreakdown
	for _, facts := range buyers {
		if !facts.inCurrent {
			continue
		}
		breakdown.Total++
		if !facts.earliest.Before(current.Start) {
			breakdown.New++
		}
	}
	breakdown.Returning = breakdown.Total - breakdown.New
	return breakdown
}
