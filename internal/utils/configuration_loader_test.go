package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/artprune/internal/utils"
)

type loaderTestConfiguration struct {
	Common struct {
		LogLevel  string `mapstructure:"log_level"`
		LogFormat string `mapstructure:"log_format"`
	} `mapstructure:"common"`
	Tools struct {
		Artifacts struct {
			RepositoryLimit int `mapstructure:"repository_limit"`
		} `mapstructure:"artifacts"`
	} `mapstructure:"tools"`
}

func TestLoadConfigurationPrecedence(testInstance *testing.T) {
	embeddedConfiguration := []byte("common:\n  log_level: info\n  log_format: structured\ntools:\n  artifacts:\n    repository_limit: 1000\n")

	testCases := []struct {
		name                    string
		configurationFileBody   string
		environmentVariables    map[string]string
		expectedLogLevel        string
		expectedRepositoryLimit int
	}{
		{
			name:                    "embedded_defaults_only",
			expectedLogLevel:        "info",
			expectedRepositoryLimit: 1000,
		},
		{
			name:                    "configuration_file_overrides_embedded",
			configurationFileBody:   "common:\n  log_level: debug\ntools:\n  artifacts:\n    repository_limit: 250\n",
			expectedLogLevel:        "debug",
			expectedRepositoryLimit: 250,
		},
		{
			name:                    "environment_overrides_file",
			configurationFileBody:   "common:\n  log_level: debug\n",
			environmentVariables:    map[string]string{"ARTPRUNE_COMMON_LOG_LEVEL": "warn"},
			expectedLogLevel:        "warn",
			expectedRepositoryLimit: 1000,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			for environmentKey, environmentValue := range testCase.environmentVariables {
				subTest.Setenv(environmentKey, environmentValue)
			}

			configurationFilePath := ""
			if len(testCase.configurationFileBody) > 0 {
				configurationFilePath = filepath.Join(subTest.TempDir(), "config.yaml")
				require.NoError(subTest, os.WriteFile(configurationFilePath, []byte(testCase.configurationFileBody), 0o600))
			}

			loader := utils.NewConfigurationLoader("config", "yaml", "ARTPRUNE", []string{subTest.TempDir()})
			loader.SetEmbeddedConfiguration(embeddedConfiguration)

			var loadedConfiguration loaderTestConfiguration
			metadata, loadError := loader.LoadConfiguration(configurationFilePath, nil, &loadedConfiguration)
			require.NoError(subTest, loadError)
			require.Equal(subTest, configurationFilePath, metadata.ConfigFileUsed)
			require.Equal(subTest, testCase.expectedLogLevel, loadedConfiguration.Common.LogLevel)
			require.Equal(subTest, testCase.expectedRepositoryLimit, loadedConfiguration.Tools.Artifacts.RepositoryLimit)
		})
	}
}

func TestLoadConfigurationReportsUnreadableFile(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader("config", "yaml", "ARTPRUNE", nil)

	var loadedConfiguration loaderTestConfiguration
	_, loadError := loader.LoadConfiguration(filepath.Join(testInstance.TempDir(), "missing.yaml"), nil, &loadedConfiguration)
	require.Error(testInstance, loadError)
}
