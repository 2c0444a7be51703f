package contract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/organvm/analytics-engine/schema"
)

// thresholdSpec is the YAML shape of a single rule body.
type thresholdSpec struct {
	Description string  `yaml:"description"`
	Metric      string  `yaml:"metric"`
	Operator    string  `yaml:"operator"`
	Value       float64 `yaml:"value"`
	Severity    string  `yaml:"severity"`
}

// LoadThresholds parses the declarative rule file: a YAML mapping from rule
// name to {description, metric, operator, value, severity}. Rule order in
// the file is evaluation order, so the document is walked as a yaml.Node
// rather than decoded into a Go map. An absent file yields an empty rule
// set, not an error.
func LoadThresholds(path string) ([]schema.ThresholdRule, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read thresholds file %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse thresholds file %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("thresholds file %s: expected a mapping of rule names", path)
	}

	var rules []schema.ThresholdRule
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		var spec thresholdSpec
		if err := root.Content[i+1].Decode(&spec); err != nil {
			return nil, fmt.Errorf("thresholds file %s: rule %q: %w", path, name, err)
		}
		if spec.Severity == "" {
			spec.Severity = schema.WarningSeverity
		}
		rules = append(rules, schema.ThresholdRule{
			Name:        name,
			Description: spec.Description,
			Metric:      schema.MetricKey(spec.Metric),
			Operator:    schema.Operator(spec.Operator),
			Value:       spec.Value,
			Severity:    spec.Severity,
		})
	}
	return rules, nil
}
