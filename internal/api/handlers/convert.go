package handlers

import (
	"fmt"
	"time"

	"github.com/itsutakahope/churching-sub001/internal/api/dto"
	"github.com/itsutakahope/churching-sub001/internal/domain/breakdown"
	"github.com/itsutakahope/churching-sub001/internal/domain/moneyfmt"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

func toDedicationResponse(d *storage.Dedication) dto.DedicationResponse {
	return dto.DedicationResponse{
		ID:          d.ID,
		Amount:      d.Amount,
		Method:      d.Method,
		Category:    d.Category,
		DedicatorID: d.DedicatorID,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toBreakdownResponse(b breakdown.Breakdown) dto.BreakdownResponse {
	resp := dto.BreakdownResponse{
		CashTotal:   b.CashTotal,
		ChequeTotal: b.ChequeTotal,
		HasCheque:   b.HasCheque,
	}
	// The arithmetic line is shown only when cheques are in play; a
	// cash-only batch displays nothing extra.
	if b.HasCheque {
		resp.DisplayLine = fmt.Sprintf("%s + %s = %s",
			moneyfmt.Amount(b.CashTotal),
			moneyfmt.Amount(b.ChequeTotal),
			moneyfmt.Amount(b.CashTotal+b.ChequeTotal),
		)
	}
	return resp
}

func toReportResponse(r *storage.BreakdownReport) dto.ReportResponse {
	return dto.ReportResponse{
		ID:          r.ID,
		Period:      r.Period,
		GeneratedAt: r.GeneratedAt.UTC().Format(time.RFC3339),
		Status:      r.Status,
		Breakdown: toBreakdownResponse(breakdown.Breakdown{
			CashTotal:   r.CashTotal,
			ChequeTotal: r.ChequeTotal,
			HasCheque:   r.HasCheque,
		}),
		SummaryTotal: r.SummaryTotal,
		Consistent:   r.Consistent,
		Difference:   r.Difference,
		RecordCount:  r.RecordCount,
		ValidCount:   r.ValidCount,
		InvalidCount: r.InvalidCount,
		Message:      r.Message,
	}
}
