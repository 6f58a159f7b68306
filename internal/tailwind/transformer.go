package tailwind

import "github.com/yacobolo/mailwind/internal/style"

// Settings carries the conversion options resolvers depend on.
type Settings struct {
	BaseFontSize int  // px per rem/em
	IncludeMSO   bool // emit Outlook-specific declarations
}

// DefaultSettings matches the converter defaults.
func DefaultSettings() Settings {
	return Settings{BaseFontSize: 16, IncludeMSO: true}
}

// Resolver decodes one class token into declarations. It returns nil when
// the token does not belong to its family.
type Resolver func(token string, s Settings) *style.Declarations

// Resolvers is the dispatch order. Several families match permissively, so
// the order decides which family claims a token.
var Resolvers = []Resolver{
	ResolveSpacing,
	ResolveSizing,
	ResolveTypography,
	ResolveColor,
	ResolveBorder,
	ResolveEffect,
	ResolveDisplay,
	ResolveBackground,
	ResolveArbitrary,
}

// Transformer turns class tokens into CSS declarations.
type Transformer struct {
	settings  Settings
	resolvers []Resolver
}

// NewTransformer returns a transformer using the default resolver chain.
func NewTransformer(s Settings) *Transformer {
	if s.BaseFontSize <= 0 {
		s.BaseFontSize = DefaultSettings().BaseFontSize
	}
	return &Transformer{settings: s, resolvers: Resolvers}
}

// Settings returns the settings the transformer was built with.
func (t *Transformer) Settings() Settings {
	return t.settings
}

// TransformOne resolves a single token. The first resolver returning a
// non-empty result wins.
func (t *Transformer) TransformOne(token string) (*style.Declarations, bool) {
	for _, resolve := range t.resolvers {
		if decls := resolve(token, t.settings); decls.Len() > 0 {
			return decls, true
		}
	}
	return nil, false
}

// TransformMany folds the tokens in order into one declaration set. A later
// token overwrites an earlier one per property. Unresolved tokens are
// skipped.
func (t *Transformer) TransformMany(tokens []string) *style.Declarations {
	decls, _ := t.Resolve(tokens)
	return decls
}

// Resolve is TransformMany that also returns the tokens no resolver handled.
func (t *Transformer) Resolve(tokens []string) (*style.Declarations, []string) {
	out := style.New()
	var unresolved []string
	for _, token := range tokens {
		decls, ok := t.TransformOne(token)
		if !ok {
			unresolved = append(unresolved, token)
			continue
		}
		out.Overlay(decls)
	}
	return out, unresolved
}
