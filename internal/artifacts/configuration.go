package artifacts

const defaultRepositoryLimitConstant = 1000

const (
	repositoryLimitConfigurationKeySuffixConstant = "repository_limit"
	dryRunConfigurationKeySuffixConstant          = "purge.dry_run"
	configurationKeySeparatorConstant             = "."
)

// Configuration aggregates settings for artifact commands.
type Configuration struct {
	RepositoryLimit int                `mapstructure:"repository_limit"`
	Purge           PurgeConfiguration `mapstructure:"purge"`
}

// PurgeConfiguration stores options for the interactive pruning session.
type PurgeConfiguration struct {
	DryRun bool `mapstructure:"dry_run"`
}

// DefaultConfiguration supplies baseline values for artifact configuration.
func DefaultConfiguration() Configuration {
	return Configuration{
		RepositoryLimit: defaultRepositoryLimitConstant,
	}
}

// Sanitize replaces out-of-range values with their defaults.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	if sanitized.RepositoryLimit <= 0 {
		sanitized.RepositoryLimit = defaultRepositoryLimitConstant
	}
	return sanitized
}

// DefaultConfigurationValues exposes defaults keyed for the configuration loader.
func DefaultConfigurationValues(keyPrefix string) map[string]any {
	return map[string]any{
		keyPrefix + configurationKeySeparatorConstant + repositoryLimitConfigurationKeySuffixConstant: defaultRepositoryLimitConstant,
		keyPrefix + configurationKeySeparatorConstant + dryRunConfigurationKeySuffixConstant:          false,
	}
}
