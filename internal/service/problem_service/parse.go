package problem_service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/codepair-io/codepair/internal/pair_errors"
	log "github.com/sirupsen/logrus"
)

// generatedProblem is the raw completion reply before it becomes a
// service Problem. The key names mirror the schema contract embedded in
// the system prompt.
type generatedProblem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Examples    []struct {
		Input       string `json:"input"`
		Output      string `json:"output"`
		Explanation string `json:"explanation"`
	} `json:"examples"`
	Constraints []string `json:"constraints"`
	StarterCode struct {
		Javascript *string `json:"javascript"`
		Python     *string `json:"python"`
		Java       *string `json:"java"`
	} `json:"starterCode"`
	Hints []string `json:"hints"`
}

// parseGeneratedProblem turns the raw reply text into a validated
// generatedProblem. Text that is not JSON at all fails with
// ErrMalformedResponse, valid JSON with wrongly typed or missing
// required fields fails with ErrSchemaViolation naming the gap. Pure
// transform, no side effects.
func parseGeneratedProblem(raw string) (generatedProblem, error) {
	var parsed generatedProblem
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			err = fmt.Errorf(
				"%w, field %s has type %s",
				pair_errors.ErrSchemaViolation,
				typeErr.Field,
				typeErr.Value,
			)
			log.Error(err)
			return generatedProblem{}, err
		}
		err = fmt.Errorf(
			"%w, %v",
			pair_errors.ErrMalformedResponse,
			err,
		)
		log.Error(err)
		return generatedProblem{}, err
	}

	var missing []string
	if parsed.Title == "" {
		missing = append(missing, "title")
	}
	if parsed.Description == "" {
		missing = append(missing, "description")
	}
	if len(parsed.Examples) == 0 {
		missing = append(missing, "examples")
	}
	for i, example := range parsed.Examples {
		if example.Input == "" {
			missing = append(missing, fmt.Sprintf("examples[%d].input", i))
		}
		if example.Output == "" {
			missing = append(missing, fmt.Sprintf("examples[%d].output", i))
		}
	}
	if parsed.StarterCode.Javascript == nil {
		missing = append(missing, "starterCode.javascript")
	}
	if parsed.StarterCode.Python == nil {
		missing = append(missing, "starterCode.python")
	}
	if parsed.StarterCode.Java == nil {
		missing = append(missing, "starterCode.java")
	}

	if len(missing) > 0 {
		err := fmt.Errorf(
			"%w, missing: %s",
			pair_errors.ErrSchemaViolation,
			strings.Join(missing, ", "),
		)
		log.Error(err)
		return generatedProblem{}, err
	}

	return parsed, nil
}
