package ledger

import (
	"math"
	"testing"
	"time"

	"attendpro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visit(customer string, amount float64) models.Attendance {
	return models.Attendance{
		CustomerName: customer,
		ServiceName:  "Haircut",
		Amount:       amount,
		Date:         time.Now(),
	}
}

func TestAggregateEmpty(t *testing.T) {
	view := Aggregate(nil)

	assert.Equal(t, 0, view.TotalAttendance)
	assert.Equal(t, 0, view.TotalCustomers)
	assert.Equal(t, 0.0, view.TotalEarnings)
	assert.Empty(t, view.VisitCounts)
}

func TestAggregateSingleCustomer(t *testing.T) {
	records := []models.Attendance{
		visit("Alice", 100),
		visit("Alice", 50),
	}

	view := Aggregate(records)

	assert.Equal(t, 2, view.TotalAttendance)
	assert.Equal(t, 1, view.TotalCustomers)
	assert.InDelta(t, 150.0, view.TotalEarnings, 1e-6)
	require.Len(t, view.VisitCounts, 1)
	assert.Equal(t, VisitCount{Customer: "Alice", Count: 2}, view.VisitCounts[0])
}

func TestAggregateEarningsSum(t *testing.T) {
	records := []models.Attendance{
		visit("Alice", 10.25),
		visit("Bob", 0.10),
		visit("Alice", 99.99),
	}

	view := Aggregate(records)

	assert.InDelta(t, 110.34, view.TotalEarnings, 1e-6)
}

func TestAggregateDistinctCustomers(t *testing.T) {
	records := []models.Attendance{
		visit("Alice", 10),
		visit("Bob", 20),
		visit("Alice", 30),
		visit("Carol", 40),
	}

	view := Aggregate(records)

	assert.Equal(t, 4, view.TotalAttendance)
	assert.Equal(t, 3, view.TotalCustomers)
}

func TestAggregateSortsByCountDescending(t *testing.T) {
	records := []models.Attendance{
		visit("Alice", 1),
		visit("Bob", 1),
		visit("Bob", 1),
		visit("Bob", 1),
		visit("Alice", 1),
	}

	view := Aggregate(records)

	require.Len(t, view.VisitCounts, 2)
	assert.Equal(t, "Bob", view.VisitCounts[0].Customer)
	assert.Equal(t, 3, view.VisitCounts[0].Count)
	assert.Equal(t, "Alice", view.VisitCounts[1].Customer)
	assert.Equal(t, 2, view.VisitCounts[1].Count)
}

func TestAggregateTieBreakKeepsFirstSeenOrder(t *testing.T) {
	records := []models.Attendance{
		visit("Bob", 1),
		visit("Alice", 1),
		visit("Bob", 1),
		visit("Carol", 1),
		visit("Alice", 1),
		visit("Dave", 1),
	}

	view := Aggregate(records)

	got := make([]string, 0, len(view.VisitCounts))
	for _, v := range view.VisitCounts {
		got = append(got, v.Customer)
	}
	// Bob and Alice tie at 2, Carol and Dave tie at 1; each pair keeps the
	// order it first appeared in the input.
	assert.Equal(t, []string{"Bob", "Alice", "Carol", "Dave"}, got)
}

func TestAggregateIdempotent(t *testing.T) {
	records := []models.Attendance{
		visit("Bob", 12.5),
		visit("Alice", 7),
		visit("Bob", 3),
		visit("Alice", 9.25),
		visit("Carol", 1),
	}

	first := Aggregate(records)
	second := Aggregate(records)

	assert.Equal(t, first, second)
}

func TestAggregateTotalsOrderIndependent(t *testing.T) {
	records := []models.Attendance{
		visit("Alice", 10),
		visit("Bob", 20),
		visit("Carol", 30),
	}
	reversed := []models.Attendance{records[2], records[1], records[0]}

	a := Aggregate(records)
	b := Aggregate(reversed)

	assert.Equal(t, a.TotalAttendance, b.TotalAttendance)
	assert.Equal(t, a.TotalCustomers, b.TotalCustomers)
	assert.True(t, math.Abs(a.TotalEarnings-b.TotalEarnings) < 1e-6)
}
