package shortcuts

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-elements/pkg/dom"
	"github.com/goliatone/go-elements/pkg/materialize"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/tagged"
)

// Option customises registry construction.
type Option func(*config)

type config struct {
	materializer *materialize.Materializer
}

// WithMaterializer builds shortcut nodes with m instead of a materializer
// over a fresh document.
func WithMaterializer(m *materialize.Materializer) Option {
	return func(cfg *config) {
		if m != nil {
			cfg.materializer = m
		}
	}
}

// Shortcut is a named default template bound to a materializer.
type Shortcut struct {
	name     string
	template model.Template
	m        *materialize.Materializer
}

// Name returns the registry name of the shortcut.
func (s Shortcut) Name() string {
	return s.name
}

// Template returns a copy of the default template.
func (s Shortcut) Template() model.Template {
	return s.template.Clone()
}

// With returns a shortcut whose default template is merged with override.
// The receiver is unchanged.
func (s Shortcut) With(override model.Template) Shortcut {
	s.template = model.Merge(s.template, override)
	return s
}

// Call builds a node with the default template as host and segments and
// values as its content.
func (s Shortcut) Call(segments []string, values ...tagged.Value) (*dom.Node, error) {
	if s.m == nil {
		return nil, &NotInstantiableError{}
	}
	return tagged.ParseWith(s.m, s.template, segments, values...)
}

// Format is Call over a {} placeholder string.
func (s Shortcut) Format(format string, values ...tagged.Value) (*dom.Node, error) {
	return s.Call(tagged.Split(format), values...)
}

// Registry maps names to shortcuts and void nodes.
type Registry struct {
	m         *materialize.Materializer
	shortcuts map[string]Shortcut
	voids     map[string]*dom.Node
	voidTpls  map[string]model.Template
}

// New builds a registry from defs. Templates without a tag use their name
// as tag. Void templates are materialized immediately, so an invalid void
// tag fails construction; other tags are checked when called.
func New(defs map[string]model.Template, options ...Option) (*Registry, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.materializer == nil {
		cfg.materializer = materialize.New()
	}

	r := &Registry{
		m:         cfg.materializer,
		shortcuts: make(map[string]Shortcut, len(defs)),
		voids:     make(map[string]*dom.Node),
		voidTpls:  make(map[string]model.Template),
	}

	names := make([]string, 0, len(defs))
	for rawName := range defs {
		names = append(names, rawName)
	}
	sort.Strings(names)

	for _, rawName := range names {
		name := normalize(rawName)
		if name == "" {
			return nil, fmt.Errorf("shortcuts: shortcut name is required")
		}
		if r.has(name) {
			return nil, fmt.Errorf("shortcuts: duplicate shortcut %q", name)
		}

		tpl := defs[rawName].Clone()
		if tpl.Tag == "" {
			tpl.Tag = name
		}
		if tpl.Void {
			node, err := r.m.Create(tpl)
			if err != nil {
				return nil, fmt.Errorf("shortcuts: void %q: %w", name, err)
			}
			r.voids[name] = node
			r.voidTpls[name] = tpl
			continue
		}
		r.shortcuts[name] = Shortcut{name: name, template: tpl, m: r.m}
	}
	return r, nil
}

// NewDefault builds a registry holding one shortcut per HTML element.
func NewDefault(options ...Option) (*Registry, error) {
	defs, err := LoadFS(EmbeddedFS())
	if err != nil {
		return nil, err
	}
	return New(defs, options...)
}

// Materializer returns the materializer shortcuts build with.
func (r *Registry) Materializer() *materialize.Materializer {
	if r == nil {
		return nil
	}
	return r.m
}

// Shortcut returns the callable registered under name.
func (r *Registry) Shortcut(name string) (Shortcut, error) {
	if err := r.ready(); err != nil {
		return Shortcut{}, err
	}
	key := normalize(name)
	if shortcut, ok := r.shortcuts[key]; ok {
		return shortcut, nil
	}
	if _, ok := r.voids[key]; ok {
		return Shortcut{}, fmt.Errorf("%w: %q", ErrVoidShortcut, key)
	}
	return Shortcut{}, fmt.Errorf("%w: %q", ErrUnknownShortcut, key)
}

// MustShortcut panics when name is not a callable shortcut. Useful when the
// name is a literal known to be registered.
func (r *Registry) MustShortcut(name string) Shortcut {
	shortcut, err := r.Shortcut(name)
	if err != nil {
		panic(err)
	}
	return shortcut
}

// Void returns the node materialized for a void entry when the registry was
// built. Every call returns that same node, so attaching it again moves it;
// use NewVoid for an independent copy.
func (r *Registry) Void(name string) (*dom.Node, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	key := normalize(name)
	if node, ok := r.voids[key]; ok {
		return node, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShortcut, key)
}

// VoidTemplate returns a copy of the template of a void entry.
func (r *Registry) VoidTemplate(name string) (model.Template, error) {
	if err := r.ready(); err != nil {
		return model.Template{}, err
	}
	key := normalize(name)
	tpl, ok := r.voidTpls[key]
	if !ok {
		return model.Template{}, fmt.Errorf("%w: %q", ErrUnknownShortcut, key)
	}
	return tpl.Clone(), nil
}

// NewVoid materializes a fresh node from the template of a void entry.
func (r *Registry) NewVoid(name string) (*dom.Node, error) {
	tpl, err := r.VoidTemplate(name)
	if err != nil {
		return nil, err
	}
	node, err := r.m.Create(tpl)
	if err != nil {
		return nil, fmt.Errorf("shortcuts: void %q: %w", normalize(name), err)
	}
	return node, nil
}

// IsVoid reports whether name is registered as a void entry.
func (r *Registry) IsVoid(name string) bool {
	if r.ready() != nil {
		return false
	}
	_, ok := r.voids[normalize(name)]
	return ok
}

// Names returns every registered name, callable and void, sorted.
func (r *Registry) Names() []string {
	if r.ready() != nil {
		return nil
	}
	names := make([]string, 0, len(r.shortcuts)+len(r.voids))
	for name := range r.shortcuts {
		names = append(names, name)
	}
	for name := range r.voids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes the shortcut registered under name.
func (r *Registry) Call(name string, segments []string, values ...tagged.Value) (*dom.Node, error) {
	shortcut, err := r.Shortcut(name)
	if err != nil {
		return nil, err
	}
	return shortcut.Call(segments, values...)
}

// Format invokes the shortcut registered under name with a {} placeholder
// string.
func (r *Registry) Format(name, format string, values ...tagged.Value) (*dom.Node, error) {
	return r.Call(name, tagged.Split(format), values...)
}

// Parse is the unbound form: the host is taken from the first value.
func (r *Registry) Parse(segments []string, values ...tagged.Value) (*dom.Node, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	return tagged.Parse(r.m, segments, values...)
}

func (r *Registry) has(name string) bool {
	if _, ok := r.shortcuts[name]; ok {
		return true
	}
	_, ok := r.voids[name]
	return ok
}

func (r *Registry) ready() error {
	if r == nil || r.m == nil {
		return &NotInstantiableError{}
	}
	return nil
}
