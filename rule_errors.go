package presets

import (
	"errors"
	"fmt"
	"strings"
)

// RuleError captures rule-engine metadata alongside the originating error.
type RuleError struct {
	Engine string
	Expr   string
	Path   string
	Err    error
}

func (e *RuleError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("presets: %s rule %s path=%s: %v", e.Engine, describeRule(e.Expr), e.Path, e.Err)
}

func (e *RuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeRule(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

func wrapRuleEngineError(engine string, err error) error {
	if err == nil {
		return nil
	}

	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return err
	}

	if strings.HasPrefix(err.Error(), "presets:") {
		return err
	}
	return fmt.Errorf("presets: %s rule engine: %w", engine, err)
}

func wrapRuleError(engine, expr, path string, err error) error {
	if err == nil {
		return nil
	}

	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		if ruleErr.Engine == "" {
			ruleErr.Engine = engine
		}
		if ruleErr.Expr == "" {
			ruleErr.Expr = expr
		}
		if ruleErr.Path == "" {
			ruleErr.Path = path
		}
		return ruleErr
	}

	return &RuleError{
		Engine: engine,
		Expr:   expr,
		Path:   path,
		Err:    err,
	}
}
