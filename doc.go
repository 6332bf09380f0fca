// Package presets persists the state of hierarchically nested, labeled form
// widgets under named preset files and re-applies saved state onto the live
// registry.
//
// Responsibilities:
//   - ResolvePath derives a deterministic slash-joined identifier for a
//     widget from its ancestor label chain and its own label.
//   - Store owns the widget registry and implements Register, Load, Save,
//     Apply and List against a directory of JSON preset files, merging saved
//     attribute bags into live widget state without breaking on stale,
//     partial or missing data.
//
// Data flow:
//
//	Register -> registry -> Save -> <base dir>/<name>.json -> Apply -> Update directives
//
// The default preset (default.json unless overridden) is loaded once at
// Store construction and seeds construction arguments for every widget
// registered afterwards; caller-supplied arguments always win over seeded
// defaults.
//
// Preset entries may carry a "when" expression evaluated at apply time
// against the live registry snapshot; see RuleEvaluator and the expr, CEL
// and JS engines. Stored values outside a choice widget's current set are
// silently elided before application.
package presets
