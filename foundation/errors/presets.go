package errors

import (
	"fmt"
	"strings"

	play "github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
)

func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument, nil).WithReason("invalid_argument")
}

func Internal() ErrorResponse {
	return New("Internal error", codes.Internal, nil).WithReason("internal")
}

// ValidationFields wraps field -> reason pairs from the validator package.
func ValidationFields(fields map[string]string) ErrorResponse {
	return InvalidArgument().
		WithReason("validation_failed").
		WithDetails(fields).
		WithViolations(ViolationsFromMap(fields))
}

// Unsupported reports a value the library refuses to configure.
func Unsupported(name, value string) ErrorResponse {
	return InvalidArgument().WithReason("unsupported").WithDetail(name, value)
}

// FromPlayground maps go-playground errors to violations, using the nested
// struct path when there is one.
func FromPlayground(err play.ValidationErrors, tagToReason map[string]string) ErrorResponse {
	violations := make([]FieldViolation, 0, len(err))
	for _, fe := range err {
		reason := tagToReason[fe.Tag()]
		if reason == "" {
			reason = "invalid"
		}

		field := fe.Field()
		if ns := fe.Namespace(); ns != "" {
			if i := strings.Index(ns, "."); i >= 0 && i+1 < len(ns) {
				field = ns[i+1:]
			}
		}

		violations = append(violations, FieldViolation{
			Field:       field,
			Reason:      reason,
			Description: fmt.Sprintf("%s validation failed (%s)", field, fe.Tag()),
		})
	}
	return InvalidArgument().WithReason("validation_failed").WithViolations(violations)
}
