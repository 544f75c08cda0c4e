package controllers

import (
	"fmt"
	"net/http"
	"time"

	"attendpro-backend/ledger"
	"attendpro-backend/models"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	ledger *ledger.Ledger
}

func NewDashboardController(l *ledger.Ledger) *DashboardController {
	return &DashboardController{ledger: l}
}

type RecentVisit struct {
	Customer  string `json:"customer"`
	Service   string `json:"service"`
	VisitDate string `json:"visitDate"` // e.g. "Today", "Yesterday"
}

func (dc *DashboardController) Overview(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	totalCustomers, err := dc.ledger.CountCustomers(scope)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	// This month's ledger, newest first
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	records, err := dc.ledger.FilterAttendance(scope, firstOfMonth, now, "")
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	view := ledger.Aggregate(records)

	topCustomers := view.VisitCounts
	if len(topCustomers) > 4 {
		topCustomers = topCustomers[:4]
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":  totalCustomers,
		"monthlyVisits":   view.TotalAttendance,
		"monthlyEarnings": view.TotalEarnings,
		"recentVisits":    recentVisits(records, 3),
		"topCustomers":    topCustomers,
	})
}

// recentVisits picks the latest visit per customer, newest first, up to limit.
// Records arrive ordered by date descending.
func recentVisits(records []models.Attendance, limit int) []RecentVisit {
	visits := make([]RecentVisit, 0, limit)
	seen := make(map[string]bool)

	for _, record := range records {
		if seen[record.CustomerName] {
			continue
		}
		seen[record.CustomerName] = true

		daysAgo := int(time.Since(record.Date).Hours() / 24)
		var visitDate string
		switch daysAgo {
		case 0:
			visitDate = "Today"
		case 1:
			visitDate = "Yesterday"
		default:
			visitDate = fmt.Sprintf("%d days ago", daysAgo)
		}

		visits = append(visits, RecentVisit{
			Customer:  record.CustomerName,
			Service:   record.ServiceName,
			VisitDate: visitDate,
		})
		if len(visits) >= limit {
			break
		}
	}
	return visits
}
