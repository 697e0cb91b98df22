package artifacts

// ArtifactRecord captures one CI build artifact retained for auditing.
type ArtifactRecord struct {
	Repository        string
	ArtifactID        int64
	Name              string
	SizeBytes         int64
	SizeMegabytes     float64
	CreatedAt         string
	PullRequestNumber int
}

// HasPullRequest reports whether the triggering workflow run was attached to a pull request.
func (record ArtifactRecord) HasPullRequest() bool {
	return record.PullRequestNumber > 0
}

// PruneDecision enumerates the responses accepted during interactive pruning.
type PruneDecision string

// Supported pruning decisions.
const (
	PruneDecisionDelete PruneDecision = "delete"
	PruneDecisionSkip   PruneDecision = "skip"
	PruneDecisionQuit   PruneDecision = "quit"
)

// RepositoryUsage pairs a repository with its accumulated artifact storage.
type RepositoryUsage struct {
	Repository     string
	TotalMegabytes float64
}

// PruneSummary aggregates the outcomes of one pruning session.
type PruneSummary struct {
	ProtectedSkips   int
	Deleted          int
	DeleteFailures   int
	ManualSkips      int
	DryRunCandidates int
	QuitRequested    bool
}

// CommandOptions captures the configurable parameters for an audit or purge run.
type CommandOptions struct {
	RepositoryLimit int
	DryRun          bool
	AuditOnly       bool
}
