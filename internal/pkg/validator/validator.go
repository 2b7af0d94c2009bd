package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Fields validates struct tags and returns field -> failed tag, or nil
// when the value is valid.
func Fields(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, ferr := range err.(validator.ValidationErrors) {
		fields[ferr.Field()] = ferr.Tag()
	}
	return fields
}
