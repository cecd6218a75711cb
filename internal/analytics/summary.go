// Package analytics derives the dashboard summary from the current record
// collections and invoices. Everything here is a pure recomputation over
// snapshots; nothing is cached between reads.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/helixcrm/console/internal/invoice"
	"github.com/helixcrm/console/internal/records"
	"github.com/helixcrm/console/pkg/enums"
)

// Summary is the precomputed dashboard payload.
type Summary struct {
	TotalEmployees int
	TotalLeads     int
	TotalClients   int

	// HeadcountByRole covers employee records only.
	HeadcountByRole map[enums.Role]int

	// LeadFunnel counts leads per pipeline stage, in stage order.
	LeadFunnel []FunnelStage

	// InvoiceRevenue sums invoice totals (tax included), rounded to 2dp.
	InvoiceRevenue decimal.Decimal

	// LastSignInAt is zero when no session has been established yet.
	LastSignInAt time.Time
}

// FunnelStage is one step of the lead pipeline with its current count.
type FunnelStage struct {
	Status enums.LeadStatus
	Count  int
}

// Build computes the summary from the given records and invoices. lastSignIn
// is the active session's sign-in time, zero when signed out.
func Build(recs []records.Record, invoices []*invoice.Engine, lastSignIn time.Time) Summary {
	summary := Summary{
		HeadcountByRole: map[enums.Role]int{},
		InvoiceRevenue:  decimal.Zero,
		LastSignInAt:    lastSignIn,
	}

	funnel := map[enums.LeadStatus]int{}
	for _, r := range recs {
		switch r.Kind {
		case enums.EntityKindEmployee:
			summary.TotalEmployees++
			summary.HeadcountByRole[r.Role]++
		case enums.EntityKindLead:
			summary.TotalLeads++
			funnel[r.Status]++
		case enums.EntityKindClient:
			summary.TotalClients++
		}
	}

	for _, status := range enums.LeadStatuses() {
		summary.LeadFunnel = append(summary.LeadFunnel, FunnelStage{Status: status, Count: funnel[status]})
	}

	for _, eng := range invoices {
		if eng == nil {
			continue
		}
		summary.InvoiceRevenue = summary.InvoiceRevenue.Add(eng.Totals().Total)
	}
	summary.InvoiceRevenue = summary.InvoiceRevenue.Round(2)

	return summary
}
