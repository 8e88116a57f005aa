package helpers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalNumberDecoding(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantSet bool
		wantVal float64
	}{
		{"plain_number", `{"price":12.5}`, true, 12.5},
		{"numeric_string", `{"price":"12.5"}`, true, 12.5},
		{"padded_numeric_string", `{"price":" 7 "}`, true, 7},
		{"zero", `{"price":0}`, true, 0},
		{"junk_string", `{"price":"cheap"}`, false, 0},
		{"null", `{"price":null}`, false, 0},
		{"absent", `{}`, false, 0},
		{"object_junk", `{"price":{"a":1}}`, false, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var body struct {
				Price OptionalNumber `json:"price"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &body))
			require.Equal(t, tc.wantSet, body.Price.Set)
			if tc.wantSet {
				require.Equal(t, tc.wantVal, body.Price.Value)
				require.NotNil(t, body.Price.Ptr())
			} else {
				require.Nil(t, body.Price.Ptr())
			}
		})
	}
}

func TestOptionalIntTruncates(t *testing.T) {
	var body struct {
		Quantity OptionalInt `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":3.9}`), &body))
	require.True(t, body.Quantity.Set)
	require.Equal(t, 3, body.Quantity.Value)
}

func TestCategoryListDecoding(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{"array", `{"categories":["books","tech"]}`, []string{"books", "tech"}},
		{"comma_string", `{"categories":"books, tech ,"}`, []string{"books", "tech"}},
		{"junk", `{"categories":42}`, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var body struct {
				Categories CategoryList `json:"categories"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &body))
			if tc.want == nil {
				require.Empty(t, body.Categories)
			} else {
				require.Equal(t, CategoryList(tc.want), body.Categories)
			}
		})
	}
}

func TestListingRequestToInput(t *testing.T) {
	var req ListingRequest
	payload := `{"name":"Mini fridge","selling_mode":"Both","price":"40","starting_bid":10,"quantity":0,"width":0,"images":["a.jpg","b.jpg"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	in := req.ToInput()
	require.Equal(t, "Mini fridge", in.Name)
	require.NotNil(t, in.Price)
	require.Equal(t, 40.0, *in.Price)
	require.NotNil(t, in.StartingBid)
	require.Equal(t, 10.0, *in.StartingBid)
	// zero survives decoding; the service layer decides whether it counts
	require.NotNil(t, in.Quantity)
	require.Equal(t, 0, *in.Quantity)
	require.NotNil(t, in.Width)
	require.Nil(t, in.DurationDays)
}
