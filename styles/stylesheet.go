package styles

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from their
// consumers, we introduce an interface for CSS stylesheets. Clients will
// have to provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string      // the prelude / selectors of the rule
	Properties() []string  // property keys, e.g. "transition-duration"
	Value(string) Property // property value for key, e.g. "2s"
	IsImportant(string) bool
}
