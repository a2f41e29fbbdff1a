package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"subsage/internal/model"
)

var idRegex = regexp.MustCompile(`^\d+$`)

// createSubscriptionRequest keeps every field raw so that absence, null and
// wrong JSON types can be told apart before a domain record is built.
type createSubscriptionRequest struct {
	Name        json.RawMessage `json:"name" swaggertype:"string" example:"Netflix"`
	Cost        json.RawMessage `json:"cost" swaggertype:"number" example:"15.49"`
	RenewalDate json.RawMessage `json:"renewalDate" swaggertype:"string" example:"2025-12-01"`
	Category    json.RawMessage `json:"category" swaggertype:"string" example:"Streaming"`
}

var errTrailingData = errors.New("unexpected data after JSON object")

// decodeCreateRequest reads exactly one JSON object and matches field names
// case-sensitively, so "Name" does not satisfy "name".
func decodeCreateRequest(body io.Reader) (createSubscriptionRequest, error) {
	dec := json.NewDecoder(body)

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return createSubscriptionRequest{}, err
	}
	if fields == nil {
		return createSubscriptionRequest{}, errors.New("request body is not a JSON object")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return createSubscriptionRequest{}, errTrailingData
	}

	return createSubscriptionRequest{
		Name:        fields["name"],
		Cost:        fields["cost"],
		RenewalDate: fields["renewalDate"],
		Category:    fields["category"],
	}, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// toSubscription validates the request. It returns *model.ValidationError
// for missing or mistyped fields and *model.CoercionError when cost is not
// numeric.
func (req createSubscriptionRequest) toSubscription() (*model.Subscription, error) {
	var missing []string
	for _, f := range []struct {
		name string
		raw  json.RawMessage
	}{
		{"name", req.Name},
		{"cost", req.Cost},
		{"renewalDate", req.RenewalDate},
		{"category", req.Category},
	} {
		if isAbsent(f.raw) {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &model.ValidationError{Missing: missing}
	}

	var sub model.Subscription
	if err := json.Unmarshal(req.Name, &sub.Name); err != nil {
		return nil, &model.ValidationError{Reason: "name must be a string"}
	}
	if err := json.Unmarshal(req.RenewalDate, &sub.RenewalDate); err != nil {
		return nil, &model.ValidationError{Reason: "renewalDate must be a string"}
	}
	if err := json.Unmarshal(req.Category, &sub.Category); err != nil {
		return nil, &model.ValidationError{Reason: "category must be a string"}
	}

	cost, err := coerceCost(req.Cost)
	if err != nil {
		return nil, err
	}
	if cost < 0 {
		return nil, &model.ValidationError{Reason: "cost must be non-negative"}
	}
	sub.Cost = cost

	return &sub, nil
}

// coerceCost accepts a JSON number, a numeric string or a boolean.
func coerceCost(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	fail := &model.CoercionError{Field: "cost", Value: string(raw)}

	var cost float64
	switch {
	case len(raw) == 0:
		return 0, fail
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fail
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fail
		}
		cost = v
	case bytes.Equal(raw, []byte("true")):
		cost = 1
	case bytes.Equal(raw, []byte("false")):
		cost = 0
	default:
		if err := json.Unmarshal(raw, &cost); err != nil {
			return 0, fail
		}
	}

	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, fail
	}
	return cost, nil
}

// parseID reports false only when the segment is not a run of digits. A
// digit string too large for int64 maps to 0, which is never assigned, so
// the caller answers with the regular not-found result.
func parseID(idStr string) (int64, bool) {
	if !idRegex.MatchString(idStr) {
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, true
	}
	return id, true
}
