package service

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/middleware"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
)

var (
	validate *validator.Validate
)

func InitializeServices() {
	validate = initValidator() // used for validating struct fields
}

func initValidator() *validator.Validate {
	log.Info("initializing validator")
	validate := validator.New(validator.WithRequiredStructEnabled())

	// This makes error.Field() return "first_name" instead of "FirstName"
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// free text that gets interpolated into prompts for the completion
	// endpoint must stay inside an allow-listed charset
	err := validate.RegisterValidation("prompt_safe", func(fl validator.FieldLevel) bool {
		return promptSafePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		log.Fatalf("cannot register prompt_safe validation, %v", err)
	}

	return validate
}

var promptSafePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _-]*$`)

func GetClaimsFromContext(
	ctx context.Context,
) (claims middleware.SessionClaims, err error) {
	claimsValue := ctx.Value(middleware.KeyCtxUserCredClaims)
	claims, ok := claimsValue.(middleware.SessionClaims)
	if !ok {
		err = fmt.Errorf(
			"%w, no session claims found in request context, type of claims found is %T",
			pair_errors.ErrUnauthorized,
			reflect.TypeOf(claimsValue),
		)
		log.Error(err)
	}
	return
}
