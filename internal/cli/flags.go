package cli

import (
	"flag"
)

// ServeFlags holds the CLI flags for the serve command.
type ServeFlags struct {
	Port    int
	Verbose bool
}

// ParseServeFlags parses command line flags for the serve command.
func ParseServeFlags() *ServeFlags {
	flags := &ServeFlags{}
	flag.IntVar(&flags.Port, "port", 0, "Port to listen on (0 = use config)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// ReportFlags holds the CLI flags for the report command.
type ReportFlags struct {
	Period  string
	DBPath  string
	Save    bool
	Verbose bool
}

// ParseReportFlags parses command line flags for the report command.
func ParseReportFlags() *ReportFlags {
	flags := &ReportFlags{}
	flag.StringVar(&flags.Period, "period", "", "Summary period to report on (empty = config default)")
	flag.StringVar(&flags.DBPath, "db", "", "Path to database file (empty = config default)")
	flag.BoolVar(&flags.Save, "save", false, "Persist the report to the database")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}
