package problem_service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/codepair-io/codepair/internal/database"
	"github.com/codepair-io/codepair/internal/pair_errors"
	log "github.com/sirupsen/logrus"
)

// generatedToInsertParams combines the validated completion output with
// the caller's request metadata. The exact user prompt is kept on the
// record for auditability.
func generatedToInsertParams(
	generated generatedProblem,
	request GenerateProblemRequest,
	subject string,
	userPrompt string,
) (database.InsertProblemParams, error) {
	examples := make([]Example, 0, len(generated.Examples))
	for _, e := range generated.Examples {
		example := Example{Input: e.Input, Output: e.Output}
		if e.Explanation != "" {
			explanation := e.Explanation
			example.Explanation = &explanation
		}
		examples = append(examples, example)
	}

	starterCode := StarterCode{
		Javascript: *generated.StarterCode.Javascript,
		Python:     *generated.StarterCode.Python,
		Java:       *generated.StarterCode.Java,
	}

	var category *string
	if request.Category != "" {
		category = &request.Category
	}
	var tags []string
	if request.Topic != "" {
		tags = []string{request.Topic}
	}

	examplesJSON, starterCodeJSON, err := marshalProblemDocs(examples, starterCode)
	if err != nil {
		return database.InsertProblemParams{}, err
	}

	constraints := generated.Constraints
	if constraints == nil {
		constraints = []string{}
	}
	hints := generated.Hints
	if hints == nil {
		hints = []string{}
	}

	prompt := userPrompt
	return database.InsertProblemParams{
		Title:         generated.Title,
		Description:   generated.Description,
		Difficulty:    request.Difficulty,
		Category:      category,
		Tags:          tags,
		Examples:      examplesJSON,
		Constraints:   constraints,
		StarterCode:   starterCodeJSON,
		Hints:         hints,
		CreatedBy:     subject,
		IsAiGenerated: true,
		AiPrompt:      &prompt,
	}, nil
}

func marshalProblemDocs(examples []Example, starterCode StarterCode) ([]byte, []byte, error) {
	examplesJSON, err := json.Marshal(examples)
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot marshal examples, %w",
			pair_errors.ErrInternal,
			err,
		)
		log.Error(err)
		return nil, nil, err
	}
	starterCodeJSON, err := json.Marshal(starterCode)
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot marshal starter code, %w",
			pair_errors.ErrInternal,
			err,
		)
		log.Error(err)
		return nil, nil, err
	}
	return examplesJSON, starterCodeJSON, nil
}

func dbProblemToService(dbProblem database.Problem) (Problem, error) {
	var examples []Example
	if err := json.Unmarshal(dbProblem.Examples, &examples); err != nil {
		err = errors.Join(pair_errors.ErrInternal, err)
		log.Errorf("corrupted examples document on problem %v, %v", dbProblem.ID, err)
		return Problem{}, err
	}
	var starterCode StarterCode
	if err := json.Unmarshal(dbProblem.StarterCode, &starterCode); err != nil {
		err = errors.Join(pair_errors.ErrInternal, err)
		log.Errorf("corrupted starter code document on problem %v, %v", dbProblem.ID, err)
		return Problem{}, err
	}

	return Problem{
		ID:            dbProblem.ID,
		Title:         dbProblem.Title,
		Description:   dbProblem.Description,
		Difficulty:    dbProblem.Difficulty,
		Category:      dbProblem.Category,
		Tags:          dbProblem.Tags,
		Examples:      examples,
		Constraints:   dbProblem.Constraints,
		StarterCode:   starterCode,
		Hints:         dbProblem.Hints,
		CreatedBy:     dbProblem.CreatedBy,
		IsAIGenerated: dbProblem.IsAiGenerated,
		AiPrompt:      dbProblem.AiPrompt,
		CreatedAt:     dbProblem.CreatedAt,
	}, nil
}

func dbProblemsToService(dbProblems []database.Problem) ([]Problem, error) {
	problems := make([]Problem, 0, len(dbProblems))
	for _, dbProblem := range dbProblems {
		problem, err := dbProblemToService(dbProblem)
		if err != nil {
			return nil, err
		}
		problems = append(problems, problem)
	}
	return problems, nil
}
