package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gyeh/billscrub/internal/model"
)

// printIssues renders the issue list as an aligned table on stdout.
func printIssues(issues []model.Issue) {
	if len(issues) == 0 {
		fmt.Println("No issues found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLIENT\tDATE\tISSUE\tDETAIL")
	for _, is := range issues {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", is.Client, is.Date, is.Kind, is.Detail)
	}
	w.Flush()
}
