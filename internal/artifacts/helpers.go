package artifacts

import (
	"fmt"
	"math"
)

const (
	bytesPerMegabyteConstant       = 1024 * 1024
	megabyteRoundingFactorConstant = 100
	actionsPageURLTemplateConstant = "https://github.com/%s/actions"
)

// megabytesFromBytes converts a byte count to megabytes rounded to two decimals.
func megabytesFromBytes(sizeBytes int64) float64 {
	megabytes := float64(sizeBytes) / float64(bytesPerMegabyteConstant)
	return math.Round(megabytes*megabyteRoundingFactorConstant) / megabyteRoundingFactorConstant
}

// actionsPageURL returns the platform page where a repository's artifacts are managed.
func actionsPageURL(repository string) string {
	return fmt.Sprintf(actionsPageURLTemplateConstant, repository)
}
