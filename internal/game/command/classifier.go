package command

import "fmt"

// Classifier maps input lines to Commands using an ordered rule list.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier that tries rules in the given order.
//
// Precondition: No two rules may share a name; every rule needs a Pattern and Build.
// Postcondition: Returns a Classifier or an error describing the first invalid rule.
func NewClassifier(rules []Rule) (*Classifier, error) {
	seen := make(map[string]bool, len(rules))
	for i, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("rule %d: name must not be empty", i)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("duplicate rule name: %q", r.Name)
		}
		if r.Pattern == nil {
			return nil, fmt.Errorf("rule %q: pattern must not be nil", r.Name)
		}
		if r.Build == nil {
			return nil, fmt.Errorf("rule %q: build func must not be nil", r.Name)
		}
		seen[r.Name] = true
	}
	return &Classifier{rules: append([]Rule(nil), rules...)}, nil
}

// DefaultClassifier creates a Classifier with the built-in grammar.
//
// Postcondition: Returns a Classifier with all built-in rules registered.
func DefaultClassifier() *Classifier {
	c, err := NewClassifier(BuiltinRules())
	if err != nil {
		panic(fmt.Sprintf("building default classifier: %v", err))
	}
	return c
}

// Classify returns the Command built by the first rule matching line.
// Classification is total: a line no rule matches yields KindUnrecognized.
//
// Precondition: line should be trimmed of leading/trailing whitespace.
func (c *Classifier) Classify(line string) Command {
	for _, r := range c.rules {
		if m := r.Pattern.FindStringSubmatch(line); m != nil {
			return r.Build(m, line)
		}
	}
	return Unrecognized(line)
}

// Rules returns the rule names in match order.
func (c *Classifier) Rules() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}
