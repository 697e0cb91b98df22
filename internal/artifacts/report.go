package artifacts

import (
	"fmt"
	"io"
)

const (
	reportHeadingConstant               = "Artifact storage by repository:"
	repositoryUsageLineTemplateConstant = "%s: %.2f MB\n"
	globalTotalLineTemplateConstant     = "Total artifact storage: %.2f MB\n"
	noArtifactsFoundNoticeConstant      = "No build artifacts found."
	reportTrailingNewlineFormatConstant = "%s\n"
)

// UsageReporter renders the per-repository summary and the global total.
type UsageReporter struct {
	outputWriter io.Writer
}

// NewUsageReporter constructs a reporter writing to the provided writer.
func NewUsageReporter(outputWriter io.Writer) *UsageReporter {
	return &UsageReporter{outputWriter: outputWriter}
}

// WriteReport prints every repository with a positive total, largest first,
// followed by the exact global total. When nothing was collected it prints a
// notice instead of an empty list.
func (reporter *UsageReporter) WriteReport(inventory *Inventory) {
	repositoryUsages := inventory.RepositoryTotalsBySize()
	if len(repositoryUsages) == 0 {
		fmt.Fprintf(reporter.outputWriter, reportTrailingNewlineFormatConstant, noArtifactsFoundNoticeConstant)
		return
	}

	fmt.Fprintf(reporter.outputWriter, reportTrailingNewlineFormatConstant, reportHeadingConstant)
	for _, repositoryUsage := range repositoryUsages {
		fmt.Fprintf(reporter.outputWriter, repositoryUsageLineTemplateConstant, repositoryUsage.Repository, repositoryUsage.TotalMegabytes)
	}
	fmt.Fprintf(reporter.outputWriter, globalTotalLineTemplateConstant, megabytesFromBytes(inventory.GlobalTotalBytes()))
}
