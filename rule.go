package presets

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNoRuleEvaluator indicates no rule engine could be resolved.
var ErrNoRuleEvaluator = errors.New("presets: rule evaluator not configured")

// Evaluate executes expr against the current registry snapshot using the
// configured rule engine, defaulting to expr-lang when none is set.
func (s *Store) Evaluate(expr string) (any, error) {
	if expr == "" {
		return nil, fmt.Errorf("presets: expression must not be empty")
	}
	evaluator, err := s.resolveEvaluator()
	if err != nil {
		return nil, err
	}
	ctx := RuleContext{Snapshot: s.snapshotValues()}.withDefaults()
	engine := ruleEngineName(evaluator)
	start := time.Now()
	value, evalErr := evaluator.Evaluate(ctx, expr)
	duration := time.Since(start)
	evalErr = wrapRuleError(engine, expr, ctx.pathLabel(), evalErr)
	s.ruleLogger().LogRule(RuleLogEvent{
		Engine:   engine,
		Expr:     expr,
		Path:     ctx.pathLabel(),
		Duration: duration,
		Err:      evalErr,
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return value, nil
}

// evalWhen decides whether a stored bag applies to w during one apply pass.
func (s *Store) evalWhen(w Widget, values map[string]any, stored any, expr string) (bool, error) {
	evaluator, err := s.resolveEvaluator()
	if err != nil {
		return false, err
	}
	ctx := RuleContext{
		Snapshot: values,
		Value:    normalizeRuleValue(stored),
		Widget:   widgetContext(w),
	}.withDefaults()
	engine := ruleEngineName(evaluator)
	start := time.Now()
	value, evalErr := evaluator.Evaluate(ctx, expr)
	duration := time.Since(start)
	evalErr = wrapRuleError(engine, expr, ctx.pathLabel(), evalErr)
	s.ruleLogger().LogRule(RuleLogEvent{
		Engine:   engine,
		Expr:     expr,
		Path:     ctx.pathLabel(),
		Duration: duration,
		Err:      evalErr,
	})
	if evalErr != nil {
		return false, evalErr
	}
	return truthy(value), nil
}

func widgetContext(w Widget) WidgetContext {
	ctx := WidgetContext{Path: w.Path(), Label: w.Label()}
	if cw, ok := w.(ChoiceWidget); ok {
		ctx.Choices = cw.Choices()
	}
	return ctx
}

func (s *Store) resolveEvaluator() (RuleEvaluator, error) {
	if s.evaluator != nil {
		return s.evaluator, nil
	}
	var exprOpts []ExprEvaluatorOption
	if cache := s.cfg.programCache; cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cache))
	}
	if registry := s.cfg.functions; registry != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(registry))
	}
	defaultEvaluator := NewExprEvaluator(exprOpts...)
	if defaultEvaluator == nil {
		return nil, ErrNoRuleEvaluator
	}
	s.evaluator = defaultEvaluator
	return defaultEvaluator, nil
}

func ruleEngineName(e RuleEvaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*presets.exprEvaluator":
		return "expr"
	case "*presets.celEvaluator":
		return "cel"
	case "*presets.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}

// normalizeRuleValue widens json.Number into float64 so stored values compare
// naturally against literals inside rule expressions.
func normalizeRuleValue(value any) any {
	if number, ok := value.(json.Number); ok {
		if parsed, err := number.Float64(); err == nil {
			return parsed
		}
	}
	return value
}

// truthy mirrors how a rule outcome gates an entry: nil and zero-ish values
// withhold the bag, anything else keeps it.
func truthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case json.Number:
		parsed, err := typed.Float64()
		return err == nil && parsed != 0
	default:
		if parsed, ok := floatValue(typed); ok {
			return parsed != 0
		}
		return true
	}
}
