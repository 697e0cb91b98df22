package artifacts_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/artprune/internal/artifacts"
)

func TestIODecisionPrompter(testInstance *testing.T) {
	testInstance.Parallel()

	testCases := []struct {
		name             string
		inputLine        string
		expectedDecision artifacts.PruneDecision
	}{
		{name: "short_confirmation", inputLine: "y\n", expectedDecision: artifacts.PruneDecisionDelete},
		{name: "long_confirmation_uppercase", inputLine: "YES\n", expectedDecision: artifacts.PruneDecisionDelete},
		{name: "explicit_decline", inputLine: "n\n", expectedDecision: artifacts.PruneDecisionSkip},
		{name: "empty_line_declines", inputLine: "\n", expectedDecision: artifacts.PruneDecisionSkip},
		{name: "unrecognized_answer_declines", inputLine: "maybe\n", expectedDecision: artifacts.PruneDecisionSkip},
		{name: "short_quit", inputLine: "q\n", expectedDecision: artifacts.PruneDecisionQuit},
		{name: "long_quit_mixed_case", inputLine: "Quit\n", expectedDecision: artifacts.PruneDecisionQuit},
		{name: "exhausted_input_quits", inputLine: "", expectedDecision: artifacts.PruneDecisionQuit},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			subtest.Parallel()

			outputBuffer := &bytes.Buffer{}
			prompter := artifacts.NewIODecisionPrompter(strings.NewReader(testCase.inputLine), outputBuffer)

			decision, decisionError := prompter.Decide("Delete? ")

			require.NoError(subtest, decisionError)
			require.Equal(subtest, testCase.expectedDecision, decision)
			require.Equal(subtest, "Delete? ", outputBuffer.String())
		})
	}
}
