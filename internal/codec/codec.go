package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Context identifies the preset payload being decoded.
type Context struct {
	Name string // preset name as requested by the caller
	File string // resolved file path
}

// PreHook lets callers normalise the raw mapping before decoding.
type PreHook func(Context, map[string]any) (map[string]any, error)

// PostHook lets callers adjust or validate the decoded value.
type PostHook[T any] func(Context, *T) error

// DecoderOption configures a Decoder instance.
type DecoderOption[T any] func(*Decoder[T])

// Decoder converts preset payloads into strongly typed mappings.
type Decoder[T any] struct {
	preHooks     []PreHook
	postHooks    []PostHook[T]
	configureDec []func(*json.Decoder)
}

// WithPreHook applies hook prior to decoding.
func WithPreHook[T any](hook PreHook) DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.preHooks = append(d.preHooks, hook)
	}
}

// WithPostHook applies hook after decoding completes.
func WithPostHook[T any](hook PostHook[T]) DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.postHooks = append(d.postHooks, hook)
	}
}

// WithUseNumber enables json.Decoder.UseNumber so numeric attributes survive
// round-trips without float drift.
func WithUseNumber[T any]() DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.configureDec = append(d.configureDec, func(dec *json.Decoder) {
			dec.UseNumber()
		})
	}
}

// WithDecoderConfig allows callers to configure the json.Decoder directly.
func WithDecoderConfig[T any](configure func(*json.Decoder)) DecoderOption[T] {
	return func(d *Decoder[T]) {
		if configure != nil {
			d.configureDec = append(d.configureDec, configure)
		}
	}
}

func NewDecoder[T any](opts ...DecoderOption[T]) *Decoder[T] {
	d := &Decoder[T]{}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Decode converts data into the target mapping applying configured hooks.
func (d *Decoder[T]) Decode(ctx Context, data []byte) (T, error) {
	var zero T

	if len(data) == 0 {
		return zero, fmt.Errorf("codec: empty payload for preset %q", ctx.Name)
	}

	current, err := decodeRaw(d.configureDec, data)
	if err != nil {
		return zero, fmt.Errorf("codec: decode preset %q: %w", ctx.Name, err)
	}

	for _, hook := range d.preHooks {
		if hook == nil {
			continue
		}
		next, err := hook(ctx, current)
		if err != nil {
			return zero, fmt.Errorf("codec: pre-hook for preset %q failed: %w", ctx.Name, err)
		}
		if next != nil {
			current = next
		}
	}

	buffer, err := json.Marshal(current)
	if err != nil {
		return zero, fmt.Errorf("codec: marshal preset %q: %w", ctx.Name, err)
	}
	var result T
	decoder := json.NewDecoder(bytes.NewReader(buffer))
	for _, configure := range d.configureDec {
		if configure != nil {
			configure(decoder)
		}
	}
	if err := decoder.Decode(&result); err != nil {
		return zero, fmt.Errorf("codec: decode preset %q: %w", ctx.Name, err)
	}

	for _, hook := range d.postHooks {
		if hook == nil {
			continue
		}
		if err := hook(ctx, &result); err != nil {
			return zero, fmt.Errorf("codec: post-hook for preset %q failed: %w", ctx.Name, err)
		}
	}

	return result, nil
}

func decodeRaw(configure []func(*json.Decoder), data []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	for _, fn := range configure {
		if fn != nil {
			fn(decoder)
		}
	}
	var out map[string]any
	if err := decoder.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode serialises a mapping the way preset files are stored on disk:
// UTF-8, pretty-printed with four-space indentation.
func Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "    ")
}
