package inline

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/yacobolo/mailwind/internal/style"
	"github.com/yacobolo/mailwind/internal/tailwind"
)

// Retention decides what happens to an element's class attribute once its
// styles are inlined.
type Retention int

const (
	// RetainUnsupported keeps only tokens that do not look like utility
	// classes, removing the attribute when none remain.
	RetainUnsupported Retention = iota
	// RetainAll leaves the class attribute untouched.
	RetainAll
	// RetainNone removes the class attribute.
	RetainNone
)

func (r Retention) String() string {
	switch r {
	case RetainAll:
		return "all"
	case RetainNone:
		return "none"
	default:
		return "unsupported"
	}
}

var classSelector = cascadia.MustCompile("[class]")

// Stats counts what a single pass over a tree did.
type Stats struct {
	Elements     int // elements with at least one class token
	Styled       int // elements whose style attribute was written
	Ignored      int // tokens dropped by the classifier
	Unresolved   int // supported tokens no resolver handled
	Declarations int // declarations written, before merging
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Elements += other.Elements
	s.Styled += other.Styled
	s.Ignored += other.Ignored
	s.Unresolved += other.Unresolved
	s.Declarations += other.Declarations
}

// Config configures a Processor.
type Config struct {
	Settings  tailwind.Settings
	Retention Retention
	Logger    *zap.Logger
}

// Processor rewrites class attributes into inline styles. It holds no
// per-document state and is safe for concurrent use.
type Processor struct {
	classifier  *tailwind.Classifier
	transformer *tailwind.Transformer
	retention   Retention
	logger      *zap.Logger
}

// NewProcessor builds a processor over the built-in class tables.
func NewProcessor(cfg Config) *Processor {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		classifier:  tailwind.NewClassifier(),
		transformer: tailwind.NewTransformer(cfg.Settings),
		retention:   cfg.Retention,
		logger:      logger,
	}
}

// ProcessDocument processes every element of d.
func (p *Processor) ProcessDocument(d *Document) Stats {
	return p.ProcessNode(d.Root())
}

// ProcessNode processes every element below root that carries a class
// attribute, in document order.
func (p *Processor) ProcessNode(root *html.Node) Stats {
	var stats Stats
	goquery.NewDocumentFromNode(root).FindMatcher(classSelector).Each(func(_ int, el *goquery.Selection) {
		stats.Add(p.processElement(el))
	})
	return stats
}

func (p *Processor) processElement(el *goquery.Selection) Stats {
	var stats Stats

	class, _ := el.Attr("class")
	tokens := strings.Fields(class)
	if len(tokens) == 0 {
		return stats
	}
	stats.Elements = 1

	supported := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if reason := p.classifier.Reason(token); reason != tailwind.NotIgnored {
			stats.Ignored++
			p.logger.Debug("class ignored", zap.String("class", token), zap.Stringer("reason", reason))
			continue
		}
		supported = append(supported, token)
	}

	decls, unresolved := p.transformer.Resolve(supported)
	stats.Unresolved = len(unresolved)
	for _, token := range unresolved {
		p.logger.Debug("class not resolved", zap.String("class", token))
	}

	if decls.Len() > 0 {
		existing, _ := el.Attr("style")
		el.SetAttr("style", style.Merge(existing, decls))
		stats.Styled = 1
		stats.Declarations = decls.Len()
	}

	p.retain(el, tokens)
	return stats
}

func (p *Processor) retain(el *goquery.Selection, tokens []string) {
	switch p.retention {
	case RetainAll:
		return
	case RetainNone:
		el.RemoveAttr("class")
		return
	}

	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !tailwind.IsUtilityClass(token) {
			kept = append(kept, token)
		}
	}
	if len(kept) == 0 {
		el.RemoveAttr("class")
		return
	}
	el.SetAttr("class", strings.Join(kept, " "))
}
