package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollector_FileSink(t *testing.T) {
	testCases := []struct {
		description string
		filters     []EventType
		publish     []EventType
		expected    []EventType
	}{
		{
			description: "all events",
			publish:     []EventType{PersonaSaved, LLMInput},
			expected:    []EventType{PersonaSaved, LLMInput},
		},
		{
			description: "filtered",
			filters:     []EventType{InferenceFailure},
			publish:     []EventType{PersonaSaved, InferenceFailure, LLMOutput},
			expected:    []EventType{InferenceFailure},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			collector := &Collector{}
			buf := &bytes.Buffer{}
			stop := collector.FileSink(buf, tc.filters...)
			for _, e := range tc.publish {
				collector.Publish(Event{Time: time.Now(), EventType: e, Payload: map[string]string{"name": "Eve"}})
			}
			stop()

			var actual []EventType
			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
				if line == "" {
					continue
				}
				var ev Event
				assert.NoError(t, json.Unmarshal([]byte(line), &ev))
				actual = append(actual, ev.EventType)
			}
			assert.EqualValues(t, tc.expected, actual)
		})
	}
}
