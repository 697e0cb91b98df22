package artifacts

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/artprune/internal/execshell"
	"github.com/temirov/artprune/internal/githubauth"
	"github.com/temirov/artprune/internal/githubcli"
	"github.com/temirov/artprune/internal/ui"
	"github.com/temirov/artprune/internal/utils"
)

const (
	auditCommandUseConstant                 = "audit"
	auditCommandShortDescriptionConstant    = "Report artifact storage across accessible repositories"
	auditCommandLongDescriptionConstant     = "audit aggregates GitHub Actions artifact storage per repository and in total, largest first."
	purgeCommandUseConstant                 = "purge"
	purgeCommandShortDescriptionConstant    = "Interactively delete build artifacts, largest first"
	purgeCommandLongDescriptionConstant     = "purge reports artifact storage and then walks every prunable artifact for an interactive delete decision."
	unexpectedArgumentsErrorMessageConstant = "command does not accept positional arguments"
	auditExecutionErrorTemplateConstant     = "audit failed: %w"
	purgeExecutionErrorTemplateConstant     = "purge failed: %w"
	limitFlagNameConstant                   = "limit"
	limitFlagDescriptionConstant            = "Maximum repositories fetched per owner"
	dryRunFlagNameConstant                  = "dry-run"
	dryRunFlagDescriptionConstant           = "List deletion candidates without prompting or deleting"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current artifacts configuration.
type ConfigurationProvider func() Configuration

// HumanReadableLoggingProvider reports whether console logging is active.
type HumanReadableLoggingProvider func() bool

// CommandBuilder assembles the audit and purge commands.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        ConfigurationProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	GitHubOperations             GitHubOperations
	Prompter                     DecisionPrompter
}

// BuildAuditCommand constructs the report-only audit command.
func (builder *CommandBuilder) BuildAuditCommand() (*cobra.Command, error) {
	auditCommand := &cobra.Command{
		Use:   auditCommandUseConstant,
		Short: auditCommandShortDescriptionConstant,
		Long:  auditCommandLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, true)
		},
	}

	auditCommand.Flags().Int(limitFlagNameConstant, 0, limitFlagDescriptionConstant)

	return auditCommand, nil
}

// BuildPurgeCommand constructs the interactive pruning command.
func (builder *CommandBuilder) BuildPurgeCommand() (*cobra.Command, error) {
	purgeCommand := &cobra.Command{
		Use:   purgeCommandUseConstant,
		Short: purgeCommandShortDescriptionConstant,
		Long:  purgeCommandLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, false)
		},
	}

	purgeCommand.Flags().Int(limitFlagNameConstant, 0, limitFlagDescriptionConstant)
	purgeCommand.Flags().Bool(dryRunFlagNameConstant, false, dryRunFlagDescriptionConstant)

	return purgeCommand, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string, auditOnly bool) error {
	if len(arguments) > 0 {
		return errors.New(unexpectedArgumentsErrorMessageConstant)
	}

	commandOptions, optionsError := builder.parseOptions(command, auditOnly)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()
	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())

	gitHubOperations, operationsError := builder.resolveGitHubOperations(logger)
	if operationsError != nil {
		return operationsError
	}

	prompter := builder.Prompter
	if prompter == nil {
		prompter = NewIODecisionPrompter(command.InOrStdin(), outputWriter)
	}

	service, serviceError := NewService(gitHubOperations, prompter, outputWriter, logger)
	if serviceError != nil {
		return serviceError
	}

	executionError := service.Run(command.Context(), commandOptions)
	if executionError != nil {
		if auditOnly {
			return fmt.Errorf(auditExecutionErrorTemplateConstant, executionError)
		}
		return fmt.Errorf(purgeExecutionErrorTemplateConstant, executionError)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, auditOnly bool) (CommandOptions, error) {
	configuration := builder.resolveConfiguration()

	repositoryLimit := configuration.RepositoryLimit
	if command.Flags().Changed(limitFlagNameConstant) {
		limitFlagValue, limitFlagError := command.Flags().GetInt(limitFlagNameConstant)
		if limitFlagError != nil {
			return CommandOptions{}, limitFlagError
		}
		repositoryLimit = limitFlagValue
	}

	dryRunValue := configuration.Purge.DryRun
	if !auditOnly && command.Flags().Changed(dryRunFlagNameConstant) {
		dryRunFlagValue, dryRunFlagError := command.Flags().GetBool(dryRunFlagNameConstant)
		if dryRunFlagError != nil {
			return CommandOptions{}, dryRunFlagError
		}
		dryRunValue = dryRunFlagValue
	}

	return CommandOptions{
		RepositoryLimit: repositoryLimit,
		DryRun:          dryRunValue,
		AuditOnly:       auditOnly,
	}, nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveGitHubOperations(logger *zap.Logger) (GitHubOperations, error) {
	if builder.GitHubOperations != nil {
		return builder.GitHubOperations, nil
	}

	var eventObserver execshell.CommandEventObserver
	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		eventObserver = ui.NewConsoleCommandEventLogger(logger)
	}

	shellExecutor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), eventObserver)
	if executorError != nil {
		return nil, executorError
	}

	return githubcli.NewClient(shellExecutor, githubauth.CommandEnvironment(nil))
}
