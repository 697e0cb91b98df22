package artifacts

import "sort"

// Inventory accumulates artifact records, per-repository totals, and release
// tags for the lifetime of one run. It is owned by a single Service and never
// shared across goroutines.
type Inventory struct {
	artifactRecords  []ArtifactRecord
	repositoryTotals map[string]float64
	repositoryOrder  []string
	releaseTags      map[string]string
}

// NewInventory constructs an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		repositoryTotals: make(map[string]float64),
		releaseTags:      make(map[string]string),
	}
}

// AddRecord appends one retained artifact record.
func (inventory *Inventory) AddRecord(record ArtifactRecord) {
	inventory.artifactRecords = append(inventory.artifactRecords, record)
}

// RemoveRecord drops the record matching the repository and artifact identifier.
func (inventory *Inventory) RemoveRecord(repository string, artifactID int64) {
	for recordIndex, candidateRecord := range inventory.artifactRecords {
		if candidateRecord.Repository == repository && candidateRecord.ArtifactID == artifactID {
			inventory.artifactRecords = append(inventory.artifactRecords[:recordIndex], inventory.artifactRecords[recordIndex+1:]...)
			return
		}
	}
}

// SetRepositoryTotal records the repository total when it is positive.
// Repositories without retained artifacts stay absent from reporting.
func (inventory *Inventory) SetRepositoryTotal(repository string, totalMegabytes float64) {
	if totalMegabytes <= 0 {
		return
	}
	if _, alreadyPresent := inventory.repositoryTotals[repository]; !alreadyPresent {
		inventory.repositoryOrder = append(inventory.repositoryOrder, repository)
	}
	inventory.repositoryTotals[repository] = totalMegabytes
}

// RecordReleaseTag caches the latest release tag for the repository.
func (inventory *Inventory) RecordReleaseTag(repository string, releaseTag string) {
	if len(releaseTag) == 0 {
		return
	}
	inventory.releaseTags[repository] = releaseTag
}

// ReleaseTag returns the cached latest release tag for the repository.
func (inventory *Inventory) ReleaseTag(repository string) (string, bool) {
	releaseTag, tagPresent := inventory.releaseTags[repository]
	return releaseTag, tagPresent
}

// RecordCount returns the number of retained artifact records.
func (inventory *Inventory) RecordCount() int {
	return len(inventory.artifactRecords)
}

// GlobalTotalBytes sums raw byte sizes over every retained record. Integer
// arithmetic keeps the total free of per-record rounding error.
func (inventory *Inventory) GlobalTotalBytes() int64 {
	var totalBytes int64
	for _, record := range inventory.artifactRecords {
		totalBytes += record.SizeBytes
	}
	return totalBytes
}

// RepositoryTotalsBySize returns repository usage ordered by total size
// descending. Ties preserve the order repositories were first recorded.
func (inventory *Inventory) RepositoryTotalsBySize() []RepositoryUsage {
	usages := make([]RepositoryUsage, 0, len(inventory.repositoryOrder))
	for _, repository := range inventory.repositoryOrder {
		usages = append(usages, RepositoryUsage{Repository: repository, TotalMegabytes: inventory.repositoryTotals[repository]})
	}
	sort.SliceStable(usages, func(firstIndex int, secondIndex int) bool {
		return usages[firstIndex].TotalMegabytes > usages[secondIndex].TotalMegabytes
	})
	return usages
}

// ArtifactsBySize returns a copy of the retained records ordered by size
// descending across all repositories. Ties preserve collection order.
func (inventory *Inventory) ArtifactsBySize() []ArtifactRecord {
	orderedRecords := make([]ArtifactRecord, len(inventory.artifactRecords))
	copy(orderedRecords, inventory.artifactRecords)
	sort.SliceStable(orderedRecords, func(firstIndex int, secondIndex int) bool {
		return orderedRecords[firstIndex].SizeMegabytes > orderedRecords[secondIndex].SizeMegabytes
	})
	return orderedRecords
}
