package artifacts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/artprune/internal/artifacts"
	"github.com/temirov/artprune/internal/githubcli"
)

type stubArtifactLister struct {
	artifactsByRepository map[string][]githubcli.WorkflowArtifact
	listingErrors         map[string]error
}

func (lister *stubArtifactLister) ListWorkflowArtifacts(_ context.Context, repository string) ([]githubcli.WorkflowArtifact, error) {
	if listingError, errorPresent := lister.listingErrors[repository]; errorPresent {
		return nil, listingError
	}
	return lister.artifactsByRepository[repository], nil
}

func TestArtifactCollectorCollect(testInstance *testing.T) {
	testInstance.Parallel()

	testCases := []struct {
		name              string
		workflowArtifacts []githubcli.WorkflowArtifact
		expectedRecords   []artifacts.ArtifactRecord
		expectedTotal     float64
	}{
		{
			name: "retains_positive_sizes_only",
			workflowArtifacts: []githubcli.WorkflowArtifact{
				{ID: 1, Name: "bundle", SizeInBytes: 10485760, CreatedAt: "2026-08-01T00:00:00Z"},
				{ID: 2, Name: "empty", SizeInBytes: 0},
				{ID: 3, Name: "broken", SizeInBytes: -5},
			},
			expectedRecords: []artifacts.ArtifactRecord{
				{
					Repository:    firstRepositoryConstant,
					ArtifactID:    1,
					Name:          "bundle",
					SizeBytes:     10485760,
					SizeMegabytes: 10,
					CreatedAt:     "2026-08-01T00:00:00Z",
				},
			},
			expectedTotal: 10,
		},
		{
			name: "rounds_megabytes_to_two_decimals",
			workflowArtifacts: []githubcli.WorkflowArtifact{
				{ID: 4, Name: "cache", SizeInBytes: 1572864},
			},
			expectedRecords: []artifacts.ArtifactRecord{
				{
					Repository:    firstRepositoryConstant,
					ArtifactID:    4,
					Name:          "cache",
					SizeBytes:     1572864,
					SizeMegabytes: 1.5,
				},
			},
			expectedTotal: 1.5,
		},
		{
			name: "captures_first_pull_request_number",
			workflowArtifacts: []githubcli.WorkflowArtifact{
				{ID: 5, Name: "pr-bundle", SizeInBytes: 1048576, PullRequestNumbers: []int{42, 99}},
			},
			expectedRecords: []artifacts.ArtifactRecord{
				{
					Repository:        firstRepositoryConstant,
					ArtifactID:        5,
					Name:              "pr-bundle",
					SizeBytes:         1048576,
					SizeMegabytes:     1,
					PullRequestNumber: 42,
				},
			},
			expectedTotal: 1,
		},
		{
			name:              "empty_listing",
			workflowArtifacts: []githubcli.WorkflowArtifact{},
			expectedRecords:   []artifacts.ArtifactRecord{},
			expectedTotal:     0,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			subtest.Parallel()

			lister := &stubArtifactLister{
				artifactsByRepository: map[string][]githubcli.WorkflowArtifact{
					firstRepositoryConstant: testCase.workflowArtifacts,
				},
			}
			collector := artifacts.NewArtifactCollector(lister)

			collectedRecords, totalMegabytes, collectionError := collector.Collect(context.Background(), firstRepositoryConstant)

			require.NoError(subtest, collectionError)
			require.Equal(subtest, testCase.expectedRecords, collectedRecords)
			require.InDelta(subtest, testCase.expectedTotal, totalMegabytes, 0.001)
		})
	}
}

func TestArtifactCollectorPropagatesListingFailure(testInstance *testing.T) {
	testInstance.Parallel()

	listingFailure := errors.New("listing failed")
	lister := &stubArtifactLister{listingErrors: map[string]error{firstRepositoryConstant: listingFailure}}
	collector := artifacts.NewArtifactCollector(lister)

	collectedRecords, totalMegabytes, collectionError := collector.Collect(context.Background(), firstRepositoryConstant)

	require.ErrorIs(testInstance, collectionError, listingFailure)
	require.Nil(testInstance, collectedRecords)
	require.Zero(testInstance, totalMegabytes)
}
