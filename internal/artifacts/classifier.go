package artifacts

import "strings"

// ReleaseClassifier decides whether an artifact belongs to its repository's
// latest release. The check is a case-sensitive substring match of the release
// tag inside the artifact name; the consumed APIs expose no stronger
// provenance signal.
type ReleaseClassifier struct {
	inventory *Inventory
}

// NewReleaseClassifier constructs a classifier over the provided inventory.
func NewReleaseClassifier(inventory *Inventory) *ReleaseClassifier {
	return &ReleaseClassifier{inventory: inventory}
}

// IsProtected reports whether the artifact name contains the repository's
// cached latest release tag. Repositories without a cached tag are never
// protected.
func (classifier *ReleaseClassifier) IsProtected(repository string, artifactName string) bool {
	releaseTag, tagPresent := classifier.inventory.ReleaseTag(repository)
	if !tagPresent {
		return false
	}
	return strings.Contains(artifactName, releaseTag)
}
