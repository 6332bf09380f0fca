package presets

import (
	"time"

	"github.com/goliatone/go-presets/pkg/activity"
)

// RuleContext carries the inputs available to an apply rule.
type RuleContext struct {
	// Snapshot holds the live registry values keyed by widget path.
	Snapshot any
	// Value is the stored value of the entry under evaluation, if any.
	Value any
	// Widget describes the target widget.
	Widget WidgetContext
	Now    *time.Time
	Args   map[string]any
	// Metadata carries caller-supplied context shared by every rule in one
	// apply pass.
	Metadata map[string]any
}

// WidgetContext exposes the target widget to rule expressions.
type WidgetContext struct {
	Path    string
	Label   string
	Choices []any
}

func (ctx RuleContext) withDefaultNow() RuleContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx RuleContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx RuleContext) withDefaultMaps() RuleContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx RuleContext) withDefaults() RuleContext {
	return ctx.withDefaultNow().withDefaultMaps()
}

func (ctx RuleContext) pathLabel() string {
	if ctx.Widget.Path != "" {
		return ctx.Widget.Path
	}
	return "unknown"
}

func (ctx RuleContext) widgetBinding() map[string]any {
	if ctx.Widget.Path == "" && ctx.Widget.Label == "" && len(ctx.Widget.Choices) == 0 {
		return nil
	}
	binding := map[string]any{
		"path":  ctx.Widget.Path,
		"label": ctx.Widget.Label,
	}
	if len(ctx.Widget.Choices) > 0 {
		binding["choices"] = append([]any(nil), ctx.Widget.Choices...)
	}
	return binding
}

func (ctx RuleContext) valuesBinding() map[string]any {
	if values, ok := ctx.Snapshot.(map[string]any); ok {
		return values
	}
	return map[string]any{}
}

// RuleEvaluator executes apply rules against a rule context.
type RuleEvaluator interface {
	Evaluate(ctx RuleContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx RuleContext) (any, error)
}

// CompileOption configures rule compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

// Option configures a Store at construction time.
type Option func(*storeConfig)

type storeConfig struct {
	defaultName   string
	defaultChain  []string
	strictPaths   bool
	logger        StoreLogger
	ruleLogger    RuleLogger
	evaluator     RuleEvaluator
	programCache  ProgramCache
	functions     *FunctionRegistry
	activityHooks activity.Hooks
}

func applyStoreOptions(opts []Option) storeConfig {
	cfg := storeConfig{defaultName: DefaultPresetName}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithDefaultName overrides the distinguished default preset filename.
func WithDefaultName(name string) Option {
	return func(cfg *storeConfig) {
		if name != "" {
			cfg.defaultName = name
		}
	}
}

// WithDefaultPresets seeds construction defaults from an ordered chain of
// preset names, strongest first. Missing files in the chain contribute
// nothing; corrupt files fail construction.
func WithDefaultPresets(names ...string) Option {
	return func(cfg *storeConfig) {
		cfg.defaultChain = append([]string(nil), names...)
	}
}

// WithStrictPaths makes Register reject a widget whose path collides with an
// already registered one instead of logging a warning.
func WithStrictPaths() Option {
	return func(cfg *storeConfig) {
		cfg.strictPaths = true
	}
}

// WithRuleEvaluator configures the engine used for apply rules.
func WithRuleEvaluator(e RuleEvaluator) Option {
	return func(cfg *storeConfig) {
		cfg.evaluator = e
	}
}

// WithActivityHooks attaches activity hooks to the store. Hooks are cloned
// and nil entries dropped.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := cloneActivityHooks(hooks)
	return func(cfg *storeConfig) {
		cfg.activityHooks = normalized
	}
}

func cloneActivityHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.Hook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}
