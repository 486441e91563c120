package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

const timeRounding = time.Millisecond

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Step", "Matched", "Removed/Cleaned", "Failed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var total m.Tally

	for _, step := range summary.Steps {
		table.Append([]string{
			string(step.Name),
			fmt.Sprintf("%d", step.Matched),
			fmt.Sprintf("%d", step.Changed),
			fmt.Sprintf("%d", step.Failed),
		})
		total.Add(step.Tally)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Steps %d", len(summary.Steps)),
		fmt.Sprintf("%d", total.Matched),
		fmt.Sprintf("%d", total.Changed),
		fmt.Sprintf("%d", total.Failed),
	})

	table.Render()

	return tableBuffer.String()
}

func summaryStatus(summary m.Summary) string {
	if summary.Aborted {
		return "Run ended early, see log for details"
	}

	return fmt.Sprintf("Run finished in %s", summary.Finished.Sub(summary.Started).Round(timeRounding))
}
