package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Metric selects the number shown on a revealed, non-mine square
type Metric int

const (
	// AdjacentMetric counts mines among the 8 neighbors
	AdjacentMetric Metric = iota
	// ConsecutiveMetric counts runs of mines walking outward in each of the
	// 8 directions, up to 8 steps each. Experimental; never the default.
	ConsecutiveMetric
)

var metricNames = map[Metric]string{
	AdjacentMetric:    "adjacent",
	ConsecutiveMetric: "consecutive",
}

func ParseMetric(name string) (Metric, error) {
	for metric, metricName := range metricNames {
		if metricName == name {
			return metric, nil
		}
	}
	return AdjacentMetric, errors.Errorf("invalid metric %q", name)
}

func (metric Metric) String() string {
	if name, ok := metricNames[metric]; ok {
		return name
	}
	return fmt.Sprint(int(metric))
}

// MarshalYAML encodes the metric by name
func (metric Metric) MarshalYAML() (interface{}, error) {
	return metric.String(), nil
}

// UnmarshalYAML decodes a metric from its name
func (metric *Metric) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseMetric(name)
	if err != nil {
		return err
	}
	*metric = parsed
	return nil
}
