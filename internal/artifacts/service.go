package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const (
	operationsNotConfiguredMessageConstant = "github operations not configured"
	outputWriterMissingMessageConstant     = "output writer not configured"
	prompterMissingMessageConstant         = "decision prompter not configured"
	authenticationErrorTemplateConstant    = "authentication check failed: %w"
	enumerationErrorTemplateConstant       = "repository enumeration failed: %w"

	scanningLineTemplateConstant      = "Scanning %s\n"
	listingFailedLineTemplateConstant = "  artifact listing failed: %v\n"
	noArtifactsLineConstant           = "  no artifacts\n"
	repositoryUsageStatusLineConstant = "  %d artifacts, %.2f MB\n"
	reportSeparatorLineConstant       = "\n"
)

// Service orchestrates one audit or purge run end to end.
type Service struct {
	gitHubOperations GitHubOperations
	prompter         DecisionPrompter
	outputWriter     io.Writer
	logger           *zap.Logger
}

var (
	// ErrOperationsNotConfigured indicates the service lacks a platform client.
	ErrOperationsNotConfigured = errors.New(operationsNotConfiguredMessageConstant)
	// ErrOutputWriterMissing indicates the service lacks an output destination.
	ErrOutputWriterMissing = errors.New(outputWriterMissingMessageConstant)
	// ErrPrompterMissing indicates the service lacks an interactive prompter.
	ErrPrompterMissing = errors.New(prompterMissingMessageConstant)
)

// NewService constructs a service over the provided collaborators.
func NewService(gitHubOperations GitHubOperations, prompter DecisionPrompter, outputWriter io.Writer, logger *zap.Logger) (*Service, error) {
	if gitHubOperations == nil {
		return nil, ErrOperationsNotConfigured
	}
	if outputWriter == nil {
		return nil, ErrOutputWriterMissing
	}
	if prompter == nil {
		return nil, ErrPrompterMissing
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		gitHubOperations: gitHubOperations,
		prompter:         prompter,
		outputWriter:     outputWriter,
		logger:           logger,
	}, nil
}

// Run audits every accessible repository and, unless options request an
// audit-only pass, follows the report with an interactive pruning session.
// Only the initial authentication check and identity lookup abort the run;
// per-repository failures reduce to zero contributions.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	if authenticationError := service.gitHubOperations.VerifyAuthentication(executionContext); authenticationError != nil {
		return fmt.Errorf(authenticationErrorTemplateConstant, authenticationError)
	}

	enumerator := NewRepositoryEnumerator(service.gitHubOperations, service.logger)
	repositories, enumerationError := enumerator.EnumerateRepositories(executionContext, options.RepositoryLimit)
	if enumerationError != nil {
		return fmt.Errorf(enumerationErrorTemplateConstant, enumerationError)
	}

	inventory := NewInventory()
	resolver := NewReleaseResolver(service.gitHubOperations, inventory, service.logger)
	collector := NewArtifactCollector(service.gitHubOperations)

	for _, repository := range repositories {
		fmt.Fprintf(service.outputWriter, scanningLineTemplateConstant, repository)
		resolver.Resolve(executionContext, repository)

		repositoryRecords, repositoryTotalMegabytes, collectionError := collector.Collect(executionContext, repository)
		if collectionError != nil {
			fmt.Fprintf(service.outputWriter, listingFailedLineTemplateConstant, collectionError)
			continue
		}
		if len(repositoryRecords) == 0 {
			fmt.Fprint(service.outputWriter, noArtifactsLineConstant)
			continue
		}

		for _, repositoryRecord := range repositoryRecords {
			inventory.AddRecord(repositoryRecord)
		}
		inventory.SetRepositoryTotal(repository, repositoryTotalMegabytes)
		fmt.Fprintf(service.outputWriter, repositoryUsageStatusLineConstant, len(repositoryRecords), repositoryTotalMegabytes)
	}

	fmt.Fprint(service.outputWriter, reportSeparatorLineConstant)
	reporter := NewUsageReporter(service.outputWriter)
	reporter.WriteReport(inventory)

	if options.AuditOnly || inventory.RecordCount() == 0 {
		return nil
	}

	classifier := NewReleaseClassifier(inventory)
	session := NewPruneSession(service.gitHubOperations, classifier, inventory, service.prompter, service.outputWriter, options.DryRun)
	_, sessionError := session.Run(executionContext)
	return sessionError
}
