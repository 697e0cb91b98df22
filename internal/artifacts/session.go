package artifacts

import (
	"context"
	"fmt"
	"io"
)

const (
	protectedSkipLineTemplateConstant   = "Skipping %s from %s (matches latest release)\n"
	artifactHeaderLineTemplateConstant  = "\n%s: %s (%.2f MB, created %s)\n"
	artifactPullRequestLineConstant     = "  built for PR #%d\n"
	artifactLinkLineTemplateConstant    = "  manage at %s\n"
	deletePromptConstant                = "Delete this artifact? [y/N/q] "
	dryRunCandidateLineConstant         = "  dry run: would prompt for deletion\n"
	deleteSucceededLineTemplateConstant = "Deleted %s from %s\n"
	deleteFailedLineTemplateConstant    = "Failed to delete %s from %s: %v\n"
	sessionQuitLineConstant             = "Stopping; remaining artifacts left untouched.\n"
	sessionSummaryLineTemplateConstant  = "\nPruning finished: %d deleted, %d delete failures, %d skipped, %d release-protected\n"
	dryRunSummaryLineTemplateConstant   = "\nDry run finished: %d deletion candidates, %d release-protected\n"
)

// PruneSession drives the interactive deletion loop over the collected
// artifacts, largest first across all repositories.
type PruneSession struct {
	artifactDeleter ArtifactDeleter
	classifier      *ReleaseClassifier
	inventory       *Inventory
	prompter        DecisionPrompter
	outputWriter    io.Writer
	dryRun          bool
}

// NewPruneSession constructs a session over the provided collaborators.
func NewPruneSession(artifactDeleter ArtifactDeleter, classifier *ReleaseClassifier, inventory *Inventory, prompter DecisionPrompter, outputWriter io.Writer, dryRun bool) *PruneSession {
	return &PruneSession{
		artifactDeleter: artifactDeleter,
		classifier:      classifier,
		inventory:       inventory,
		prompter:        prompter,
		outputWriter:    outputWriter,
		dryRun:          dryRun,
	}
}

// Run walks every retained artifact in descending size order. Release-protected
// artifacts are skipped without a prompt; the rest are shown and resolved by
// the operator's decision. A quit decision abandons all remaining artifacts.
func (session *PruneSession) Run(executionContext context.Context) (PruneSummary, error) {
	summary := PruneSummary{}

	for _, artifactRecord := range session.inventory.ArtifactsBySize() {
		if session.classifier.IsProtected(artifactRecord.Repository, artifactRecord.Name) {
			summary.ProtectedSkips++
			fmt.Fprintf(session.outputWriter, protectedSkipLineTemplateConstant, artifactRecord.Name, artifactRecord.Repository)
			continue
		}

		session.showArtifact(artifactRecord)

		if session.dryRun {
			summary.DryRunCandidates++
			fmt.Fprint(session.outputWriter, dryRunCandidateLineConstant)
			continue
		}

		decision, decisionError := session.prompter.Decide(deletePromptConstant)
		if decisionError != nil {
			return summary, decisionError
		}

		switch decision {
		case PruneDecisionDelete:
			session.deleteArtifact(executionContext, artifactRecord, &summary)
		case PruneDecisionQuit:
			summary.QuitRequested = true
			fmt.Fprint(session.outputWriter, sessionQuitLineConstant)
			session.writeSummary(summary)
			return summary, nil
		default:
			summary.ManualSkips++
		}
	}

	session.writeSummary(summary)
	return summary, nil
}

func (session *PruneSession) showArtifact(artifactRecord ArtifactRecord) {
	fmt.Fprintf(
		session.outputWriter,
		artifactHeaderLineTemplateConstant,
		artifactRecord.Repository,
		artifactRecord.Name,
		artifactRecord.SizeMegabytes,
		artifactRecord.CreatedAt,
	)
	if artifactRecord.HasPullRequest() {
		fmt.Fprintf(session.outputWriter, artifactPullRequestLineConstant, artifactRecord.PullRequestNumber)
	}
	fmt.Fprintf(session.outputWriter, artifactLinkLineTemplateConstant, actionsPageURL(artifactRecord.Repository))
}

func (session *PruneSession) deleteArtifact(executionContext context.Context, artifactRecord ArtifactRecord, summary *PruneSummary) {
	deletionError := session.artifactDeleter.DeleteWorkflowArtifact(executionContext, artifactRecord.Repository, artifactRecord.ArtifactID)
	if deletionError != nil {
		summary.DeleteFailures++
		fmt.Fprintf(session.outputWriter, deleteFailedLineTemplateConstant, artifactRecord.Name, artifactRecord.Repository, deletionError)
		return
	}

	summary.Deleted++
	session.inventory.RemoveRecord(artifactRecord.Repository, artifactRecord.ArtifactID)
	fmt.Fprintf(session.outputWriter, deleteSucceededLineTemplateConstant, artifactRecord.Name, artifactRecord.Repository)
}

func (session *PruneSession) writeSummary(summary PruneSummary) {
	if session.dryRun {
		fmt.Fprintf(session.outputWriter, dryRunSummaryLineTemplateConstant, summary.DryRunCandidates, summary.ProtectedSkips)
		return
	}
	fmt.Fprintf(
		session.outputWriter,
		sessionSummaryLineTemplateConstant,
		summary.Deleted,
		summary.DeleteFailures,
		summary.ManualSkips,
		summary.ProtectedSkips,
	)
}
