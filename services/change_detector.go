package services

import (
	"encoding/json"
	"math/big"
	"reflect"
	"strconv"

	"github.com/blogem/content-audit/models"
)

// DetectChanges compares every field of next against previous and returns the fields whose
// serialized value differs. Fields missing from next are ignored. It returns nil when nothing changed.
func DetectChanges(previous, next models.Snapshot) models.Changes {
	changes := models.Changes{}

	for key, to := range next {
		from, existed := previous[key]
		if existed && sameValue(from, to) {
			continue
		}
		changes[key] = models.FieldChange{From: from, To: to}
	}

	if len(changes) == 0 {
		return nil
	}
	return changes
}

// sameValue compares two decoded values by their JSON form, so map key order does not matter.
// Top-level numbers compare by value, so 7, 7.0 and json.Number("7") are equal.
func sameValue(a, b interface{}) bool {
	if an, ok := numeric(a); ok {
		if bn, ok := numeric(b); ok {
			return an.Cmp(bn) == 0
		}
	}

	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return string(aj) == string(bj)
}

// numeric parses a decoded number with enough precision for any 64-bit integer
func numeric(v interface{}) (*big.Float, bool) {
	var text string
	switch n := v.(type) {
	case json.Number:
		text = n.String()
	case float64:
		text = strconv.FormatFloat(n, 'g', -1, 64)
	case float32:
		text = strconv.FormatFloat(float64(n), 'g', -1, 32)
	case int:
		text = strconv.Itoa(n)
	case int64:
		text = strconv.FormatInt(n, 10)
	default:
		return nil, false
	}

	f, _, err := big.ParseFloat(text, 10, 256, big.ToNearestEven)
	if err != nil {
		return nil, false
	}
	return f, true
}
