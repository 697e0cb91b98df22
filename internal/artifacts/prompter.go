package artifacts

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	deleteAnswerShortConstant = "y"
	deleteAnswerLongConstant  = "yes"
	quitAnswerShortConstant   = "q"
	quitAnswerLongConstant    = "quit"
)

// IODecisionPrompter collects pruning decisions from an input stream, one
// line per artifact. Any answer other than delete or quit counts as a skip.
type IODecisionPrompter struct {
	inputReader  *bufio.Reader
	outputWriter io.Writer
}

// NewIODecisionPrompter constructs a prompter over the provided streams.
func NewIODecisionPrompter(inputReader io.Reader, outputWriter io.Writer) *IODecisionPrompter {
	return &IODecisionPrompter{
		inputReader:  bufio.NewReader(inputReader),
		outputWriter: outputWriter,
	}
}

// Decide writes the prompt and interprets the next input line. Input
// exhaustion counts as a quit so a closed stdin ends the session cleanly.
func (prompter *IODecisionPrompter) Decide(prompt string) (PruneDecision, error) {
	fmt.Fprint(prompter.outputWriter, prompt)

	answerLine, readError := prompter.inputReader.ReadString('\n')
	if readError != nil && readError != io.EOF {
		return PruneDecisionQuit, readError
	}
	if readError == io.EOF && len(strings.TrimSpace(answerLine)) == 0 {
		return PruneDecisionQuit, nil
	}

	switch strings.ToLower(strings.TrimSpace(answerLine)) {
	case deleteAnswerShortConstant, deleteAnswerLongConstant:
		return PruneDecisionDelete, nil
	case quitAnswerShortConstant, quitAnswerLongConstant:
		return PruneDecisionQuit, nil
	default:
		return PruneDecisionSkip, nil
	}
}
