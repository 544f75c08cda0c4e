package ledger

import (
	"sort"

	"attendpro-backend/models"
)

// Analytics is derived from an attendance snapshot; it is never persisted.
type Analytics struct {
	TotalAttendance int          `json:"totalAttendance"`
	TotalCustomers  int          `json:"totalCustomers"`
	TotalEarnings   float64      `json:"totalEarnings"`
	VisitCounts     []VisitCount `json:"customerAttendanceCount"`
}

type VisitCount struct {
	Customer string `json:"customer"`
	Count    int    `json:"count"`
}

// Aggregate computes the analytics view for a record snapshot. TotalCustomers
// is the number of distinct captured customer names, so a customer with no
// visits in the snapshot contributes nothing. VisitCounts is sorted by count
// descending; tied customers keep the order they were first seen in the input,
// which makes repeated calls on the same input byte-for-byte identical.
func Aggregate(records []models.Attendance) Analytics {
	counts := make(map[string]int, len(records))
	firstSeen := make([]string, 0, len(records))
	var earnings float64

	for _, record := range records {
		earnings += record.Amount
		if _, seen := counts[record.CustomerName]; !seen {
			firstSeen = append(firstSeen, record.CustomerName)
		}
		counts[record.CustomerName]++
	}

	visits := make([]VisitCount, 0, len(firstSeen))
	for _, name := range firstSeen {
		visits = append(visits, VisitCount{Customer: name, Count: counts[name]})
	}
	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].Count > visits[j].Count
	})

	return Analytics{
		TotalAttendance: len(records),
		TotalCustomers:  len(firstSeen),
		TotalEarnings:   earnings,
		VisitCounts:     visits,
	}
}
