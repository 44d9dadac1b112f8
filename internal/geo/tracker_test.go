package geo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_LatestIssuedWins(t *testing.T) {
	var tr Tracker

	first := tr.Issue()
	second := tr.Issue()

	// The first request finishes last; it must still be dropped.
	assert.True(t, tr.Accept(second))
	assert.False(t, tr.Accept(first))

	third := tr.Issue()
	assert.False(t, tr.Accept(second))
	assert.True(t, tr.Accept(third))
}

func TestTracker_ZeroTicketRejected(t *testing.T) {
	var tr Tracker
	assert.False(t, tr.Accept(0))
	tr.Issue()
	assert.False(t, tr.Accept(0))
}

func TestTracker_ConcurrentIssue(t *testing.T) {
	var tr Tracker
	var wg sync.WaitGroup
	tickets := make([]Ticket, 50)
	for i := range tickets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tickets[i] = tr.Issue()
		}(i)
	}
	wg.Wait()

	accepted := 0
	seen := map[Ticket]bool{}
	for _, tk := range tickets {
		assert.False(t, seen[tk], "duplicate ticket %d", tk)
		seen[tk] = true
		if tr.Accept(tk) {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
	assert.True(t, tr.Accept(Ticket(50)))
}
