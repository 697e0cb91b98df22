package artifacts

import "context"

// ArtifactCollector fetches a repository's artifact listing and normalizes it
// into retained records.
type ArtifactCollector struct {
	artifactLister ArtifactLister
}

// NewArtifactCollector constructs a collector over the provided lister.
func NewArtifactCollector(artifactLister ArtifactLister) *ArtifactCollector {
	return &ArtifactCollector{artifactLister: artifactLister}
}

// Collect returns the repository's retained artifact records and their
// accumulated size in megabytes. Records without a positive byte size are
// discarded. A listing failure is returned to the caller, which treats the
// repository as contributing zero artifacts.
func (collector *ArtifactCollector) Collect(executionContext context.Context, repository string) ([]ArtifactRecord, float64, error) {
	workflowArtifacts, listingError := collector.artifactLister.ListWorkflowArtifacts(executionContext, repository)
	if listingError != nil {
		return nil, 0, listingError
	}

	retainedRecords := make([]ArtifactRecord, 0, len(workflowArtifacts))
	var repositoryTotalMegabytes float64
	for _, workflowArtifact := range workflowArtifacts {
		if workflowArtifact.SizeInBytes <= 0 {
			continue
		}

		pullRequestNumber := 0
		if len(workflowArtifact.PullRequestNumbers) > 0 {
			pullRequestNumber = workflowArtifact.PullRequestNumbers[0]
		}

		artifactRecord := ArtifactRecord{
			Repository:        repository,
			ArtifactID:        workflowArtifact.ID,
			Name:              workflowArtifact.Name,
			SizeBytes:         workflowArtifact.SizeInBytes,
			SizeMegabytes:     megabytesFromBytes(workflowArtifact.SizeInBytes),
			CreatedAt:         workflowArtifact.CreatedAt,
			PullRequestNumber: pullRequestNumber,
		}
		retainedRecords = append(retainedRecords, artifactRecord)
		repositoryTotalMegabytes += artifactRecord.SizeMegabytes
	}

	return retainedRecords, repositoryTotalMegabytes, nil
}
