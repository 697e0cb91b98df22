package execshell

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	githubCLIToolNameConstant                = "gh"
	commandRunnerMissingMessageConstant      = "command runner not configured"
	commandFailureTemplateConstant           = "%s exited with code %d%s"
	commandFailureStandardErrorSuffixFormat  = ": %s"
	logFieldCommandNameConstant              = "command"
	logFieldCommandArgumentsConstant         = "arguments"
	logFieldCommandExitCodeConstant          = "exit_code"
	commandStartedLogMessageConstant         = "external command started"
	commandCompletedLogMessageConstant       = "external command completed"
	commandExecutionFailedLogMessageConstant = "external command execution failed"
)

// CommandName identifies an external executable supported by the executor.
type CommandName string

// CommandGitHub names the GitHub CLI executable.
const CommandGitHub CommandName = CommandName(githubCLIToolNameConstant)

// CommandDetails describes a single external command invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand pairs a CommandName with invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outputs of a completed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner executes shell commands and reports their results.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// ErrCommandRunnerMissing indicates the executor was constructed without a runner.
var ErrCommandRunnerMissing = errors.New(commandRunnerMissingMessageConstant)

// CommandFailedError reports a command that completed with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the command failure including trailing standard error output.
func (failure CommandFailedError) Error() string {
	standardErrorSuffix := ""
	if len(failure.Result.StandardError) > 0 {
		standardErrorSuffix = fmt.Sprintf(commandFailureStandardErrorSuffixFormat, failure.Result.StandardError)
	}
	return fmt.Sprintf(commandFailureTemplateConstant, failure.Command.Name, failure.Result.ExitCode, standardErrorSuffix)
}

// ShellExecutor coordinates command execution with logging and event observation.
type ShellExecutor struct {
	commandRunner CommandRunner
	logger        *zap.Logger
	eventObserver CommandEventObserver
}

// NewShellExecutor constructs a ShellExecutor around the provided runner.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner, eventObserver CommandEventObserver) (*ShellExecutor, error) {
	if commandRunner == nil {
		return nil, ErrCommandRunnerMissing
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if eventObserver == nil {
		eventObserver = noopCommandEventObserver{}
	}
	return &ShellExecutor{commandRunner: commandRunner, logger: logger, eventObserver: eventObserver}, nil
}

// ExecuteGitHubCLI runs the GitHub CLI with the supplied details.
func (executor *ShellExecutor) ExecuteGitHubCLI(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.execute(executionContext, ShellCommand{Name: CommandGitHub, Details: details})
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logger.Debug(
		commandStartedLogMessageConstant,
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.Strings(logFieldCommandArgumentsConstant, command.Details.Arguments),
	)
	executor.eventObserver.CommandStarted(command)

	executionResult, executionError := executor.commandRunner.Run(executionContext, command)
	if executionError != nil {
		executor.logger.Debug(
			commandExecutionFailedLogMessageConstant,
			zap.String(logFieldCommandNameConstant, string(command.Name)),
			zap.Error(executionError),
		)
		executor.eventObserver.CommandExecutionFailed(command, executionError)
		return ExecutionResult{}, executionError
	}

	executor.logger.Debug(
		commandCompletedLogMessageConstant,
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.Int(logFieldCommandExitCodeConstant, executionResult.ExitCode),
	)
	executor.eventObserver.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		return executionResult, CommandFailedError{Command: command, Result: executionResult}
	}

	return executionResult, nil
}
