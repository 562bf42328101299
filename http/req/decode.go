package req

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/waypoint"
)

// newQueryParamDecoder constructs the *schema.Decoder for query params.
// Clients append params of their own, such as cache busters, so unknown keys are dropped.
func newQueryParamDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// decodeQueryParams decodes params into structPtr.
//
// Values that cannot be converted into their field's type are reported as ValidationErrors,
// holding the raw value sent.
// Any other failure is a mistake in structPtr's definition, not in the request.
func decodeQueryParams(dec *schema.Decoder, params url.Values, structPtr any) error {
	err := dec.Decode(structPtr, params)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if !errors.As(err, &multi) {
		// structPtr is not a pointer to a struct.
		return fmt.Errorf("%w: %s", waypoint.ErrNotValid, err)
	}

	var errs ValidationErrors
	for _, e := range multi {
		var conv schema.ConversionError
		if errors.As(e, &conv) {
			errs = append(errs, ValidationError{
				Field: conv.Key,
				Got:   rawValue(params, conv),
				Rule:  "type; " + conv.Type.String(),
			})
			continue
		}

		return decoderMisuse(e)
	}

	return errs
}

// rawValue looks up the value conv failed on.
// conv.Index is -1 unless the field is a slice.
func rawValue(params url.Values, conv schema.ConversionError) string {
	vals := params[conv.Key]
	i := conv.Index
	if i < 0 {
		i = 0
	}

	if i >= len(vals) {
		return ""
	}

	return vals[i]
}

func decoderMisuse(err error) error {
	var empty schema.EmptyFieldError
	switch {
	case errors.As(err, &empty):
		return fmt.Errorf(`%w: %q: mark required params with validate tags`, waypoint.ErrNotImplemented, empty.Key)

	// schema only looks for a converter once a request sets the field's key.
	case strings.Contains(err.Error(), "schema: converter not found for"):
		return fmt.Errorf("%w: %s", waypoint.ErrNotImplemented, err)

	default:
		return fmt.Errorf("%w: %s", waypoint.ErrUnexpected, err)
	}
}
