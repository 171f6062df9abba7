package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every request type; the validator caches struct
// metadata, so one instance serves the whole API layer.
var validate = validator.New()

// DecodeJSON reads the request body into v. Callers translate a decode
// failure into a 422 rather than exposing the parser error.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest checks a decoded request against its validate tags.
// A type carrying its own Validate method is trusted over the tags.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
