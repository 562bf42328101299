package req_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/req"
)

func TestParserParseQueryParams(t *testing.T) {
	type test struct {
		App   string  `schema:"app" validate:"omitempty,max=8,appid"`
		Limit int     `schema:"limit" validate:"omitempty,gt=0"`
		Days  []int64 `schema:"day" validate:"dive,min=0,max=6"`
	}

	tcs := []struct {
		name     string
		params   url.Values
		expected test
		errs     req.ValidationErrors
	}{
		{"Zero-Value", url.Values{}, test{}, nil},
		{"Unknown-Key", url.Values{"nope": {"x"}}, test{}, nil},
		{
			"Valid",
			url.Values{"app": {"zoom"}, "limit": {"3"}, "day": {"1", "5"}},
			test{App: "zoom", Limit: 3, Days: []int64{1, 5}},
			nil,
		},
		{
			"Bad-Conversion",
			url.Values{"limit": {"three"}},
			test{},
			req.ValidationErrors{{Field: "limit", Got: "three", Rule: "type; int"}},
		},
		{
			"Bad-Slice-Conversion",
			url.Values{"day": {"1", "friday"}},
			test{},
			req.ValidationErrors{{Field: "day", Got: "friday", Rule: "type; int64"}},
		},
		{
			"Bad-Values",
			url.Values{"app": {"daily-video"}, "limit": {"-1"}},
			test{App: "daily-video", Limit: -1},
			req.ValidationErrors{
				{Field: "app", Got: "daily-video", Rule: "max=8; string"},
				{Field: "limit", Got: -1, Rule: "gt=0; int"},
			},
		},
		{
			"Bad-App-ID",
			url.Values{"app": {"Zoom!"}},
			test{App: "Zoom!"},
			req.ValidationErrors{{Field: "app", Got: "Zoom!", Rule: "appid; string"}},
		},
		{
			"Bad-Slice-Value",
			url.Values{"day": {"7"}},
			test{Days: []int64{7}},
			req.ValidationErrors{{Field: "day[0]", Got: int64(7), Rule: "max=6; int64"}},
		},
	}

	parser := req.NewParser()
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var actual test

			// Act
			err := parser.ParseQueryParams(tc.params, &actual)

			// Assert
			if tc.errs == nil {
				require.Nil(t, err)
				require.Equal(t, tc.expected, actual)
				return
			}

			var errs req.ValidationErrors
			require.ErrorIs(t, err, waypoint.ErrNotValid)
			require.ErrorAs(t, err, &errs)
			require.Equal(t, tc.errs, errs)
		})
	}

	t.Run("Schema-Required", func(t *testing.T) {
		// Arrange
		var actual struct {
			App string `schema:"app,required"`
		}

		// Act
		err := parser.ParseQueryParams(url.Values{}, &actual)

		// Assert
		require.ErrorIs(t, err, waypoint.ErrNotImplemented)
	})

	t.Run("Non-Pointer", func(t *testing.T) {
		// Act
		err := parser.ParseQueryParams(url.Values{"app": {"zoom"}}, test{})

		// Assert
		require.ErrorIs(t, err, waypoint.ErrNotValid)
	})
}
