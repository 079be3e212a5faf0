package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags on a request DTO. Handlers call this right
// after BodyParser and turn any error into a 400.
func Validate(req interface{}) error {
	return validate.Struct(req)
}
