package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/waypoint"
)

// A ValidationError reports a value sent for Field that breaks Rule.
//
// Rule pairs the failed check with the field's type, e.g. "max=8; string".
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

func (ve ValidationError) String() string {
	return fmt.Sprintf("%s (%s): %v", ve.Field, ve.Rule, ve.Got)
}

// ValidationErrors collects every ValidationError found in a request.
// It is always ErrNotValid.
type ValidationErrors []ValidationError

// Error lists one ValidationError per line.
func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, ve := range v {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(ve.String())
	}

	return b.String()
}

// MarshalJSON nests v under "validationErrors", omitted when v is empty.
func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Errs []ValidationError `json:"validationErrors,omitempty"`
	}{Errs: v})
}

func (ValidationErrors) Unwrap() error { return waypoint.ErrNotValid }
