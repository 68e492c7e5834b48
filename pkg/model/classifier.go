package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ClassifierStatus is the training-completion state of a document classifier.
// It is displayed, never advanced, by this layer.
type ClassifierStatus int

const (
	Unfinalized ClassifierStatus = iota
	Finalizing
	Finalized
)

func (s ClassifierStatus) String() string {
	switch s {
	case Finalizing:
		return "FINALIZING"
	case Finalized:
		return "FINALIZED"
	default:
		return "UNFINALIZED"
	}
}

// ParseClassifierStatus accepts the numeric codes 0-2 or their names in any
// case. Unknown input maps to Unfinalized with an error.
func ParseClassifierStatus(raw string) (ClassifierStatus, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	switch trimmed {
	case "", "0", "UNFINALIZED":
		return Unfinalized, nil
	case "1", "FINALIZING":
		return Finalizing, nil
	case "2", "FINALIZED":
		return Finalized, nil
	}
	return Unfinalized, fmt.Errorf("model: unknown classifier status %q", raw)
}

func (s ClassifierStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(s))
}

func (s *ClassifierStatus) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var text string
	switch v := raw.(type) {
	case nil:
		*s = Unfinalized
		return nil
	case float64:
		if v != math.Trunc(v) {
			return fmt.Errorf("model: invalid classifier status %s", string(data))
		}
		text = strconv.Itoa(int(v))
	case bool:
		if v {
			text = "2"
		}
	case string:
		text = v
	default:
		return fmt.Errorf("model: invalid classifier status %s", string(data))
	}
	parsed, err := ParseClassifierStatus(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Classifier is one row of the classifier management table.
type Classifier struct {
	Label     string           `json:"class_label"`
	Positive  int              `json:"positive"`
	Negative  int              `json:"negative"`
	Total     int              `json:"total"`
	Accuracy  *float64         `json:"accuracy,omitempty"`
	Finalized ClassifierStatus `json:"finalized"`
	Timestamp int64            `json:"timestamp"`
}

// CanFinalize reports whether a finalize action makes sense: the classifier
// is not yet finalized and has at least one example of each class.
func (c Classifier) CanFinalize() bool {
	return c.Finalized == Unfinalized && c.Positive > 0 && c.Negative > 0
}
