package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/itsutakahope/churching-sub001/internal/application/service"
	"github.com/itsutakahope/churching-sub001/internal/domain/moneyfmt"
)

// PrintReportHeader prints the report header
func PrintReportHeader(period, dbPath string) {
	fmt.Println("DEDICATION BREAKDOWN REPORT")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Period: %s | Database: %s\n", period, dbPath)
	fmt.Printf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
}

// PrintSummary prints the computed summary in ledger form
func PrintSummary(view *service.SummaryView) {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Status: %s\n", view.Status)
	if view.Notice != "" {
		fmt.Printf("Notice: %s\n", view.Notice)
	}

	fmt.Printf("\nCash:    %s\n", moneyfmt.Amount(view.Breakdown.CashTotal))
	fmt.Printf("Cheque:  %s\n", moneyfmt.Amount(view.Breakdown.ChequeTotal))
	if view.Breakdown.HasCheque {
		fmt.Printf("Total:   %s + %s = %s\n",
			moneyfmt.Amount(view.Breakdown.CashTotal),
			moneyfmt.Amount(view.Breakdown.ChequeTotal),
			moneyfmt.Amount(view.Breakdown.CashTotal+view.Breakdown.ChequeTotal))
	} else {
		fmt.Printf("Total:   %s\n", moneyfmt.Amount(view.Breakdown.CashTotal+view.Breakdown.ChequeTotal))
	}

	fmt.Printf("\nRecords: Total=%d Valid=%d Invalid=%d (Cash=%d Cheque=%d)\n",
		view.Counts.Total,
		view.Counts.Valid,
		view.Counts.Invalid,
		view.Counts.Cash,
		view.Counts.Cheque)

	fmt.Printf("\nRecorded total: %s\n", moneyfmt.Amount(view.SummaryTotal))
	if view.Consistency.Consistent {
		fmt.Println("Consistency:    OK")
	} else {
		fmt.Printf("Consistency:    MISMATCH (difference %s, tolerance %g)\n",
			moneyfmt.Amount(view.Consistency.Difference),
			view.Consistency.Tolerance)
	}

	if len(view.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range view.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
	fmt.Println(strings.Repeat("-", 60))
}
