package builder

import (
	"fmt"
	"path"
	"strings"

	"reswgen/internal/common"
	"reswgen/internal/diagnostic"
	"reswgen/internal/model"
	"reswgen/internal/namespace"
	"reswgen/internal/resw"
	"reswgen/internal/tag"
)

// structuralKeySeparator marks property resources ("Button.Content") that
// do not get an accessor.
const structuralKeySeparator = "."

// Builder builds StronglyTypedClass models. A Builder holds no per-call
// state and may be reused.
type Builder struct {
	parser  resw.Parser
	grouper resw.Grouper
	project ProjectMetadata
	sink    diagnostic.Sink
}

// Option configures a Builder.
type Option func(*Builder)

// WithParser sets the resource document parser used by ParseDocument.
func WithParser(p resw.Parser) Option {
	return func(b *Builder) { b.parser = p }
}

// WithGrouper sets the plural/variant grouping heuristic.
func WithGrouper(g resw.Grouper) Option {
	return func(b *Builder) { b.grouper = g }
}

// WithProject sets the project metadata lookup.
func WithProject(p ProjectMetadata) Option {
	return func(b *Builder) { b.project = p }
}

// WithSink sets where diagnostics are reported.
func WithSink(s diagnostic.Sink) Option {
	return func(b *Builder) { b.sink = s }
}

// New creates a Builder. Defaults: YAML interchange parser, suffix
// grouping, no project metadata, diagnostics discarded.
func New(opts ...Option) *Builder {
	b := &Builder{
		parser:  resw.YAMLParser{},
		grouper: resw.SuffixGrouper{},
		project: NoProject,
		sink:    diagnostic.Discard,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// ParseDocument parses content with the configured parser and builds its
// model. A structurally invalid document fails the whole pass.
func (b *Builder) ParseDocument(resourcePath string, content []byte, defaultNamespace string, isAdvanced bool) (*model.StronglyTypedClass, error) {
	items, err := b.parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", resourcePath, err)
	}

	return b.Parse(resourcePath, items, defaultNamespace, isAdvanced), nil
}

// Parse builds the model of the resource file at resourcePath from its
// parsed items. The result has no localizations when no item qualifies.
func (b *Builder) Parse(resourcePath string, items []resw.Item, defaultNamespace string, isAdvanced bool) *model.StronglyTypedClass {
	resourceName := path.Base(strings.ReplaceAll(resourcePath, `\`, "/"))
	className := common.BaseName(resourcePath)

	result := &model.StronglyTypedClass{
		ClassName:    className,
		Namespaces:   namespace.Extract(defaultNamespace),
		ResourceFile: className,
		IsAdvanced:   isAdvanced,
	}

	// Library resources are indexed as <library name>/<file name>.
	if lib := b.lookupProject(resourcePath, resourceName); lib.IsLibrary() {
		result.ResourceFile = lib.ProjectName + "/" + className
	}

	candidates := make([]resw.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(item.Key, structuralKeySeparator) || tag.IsIgnored(item.Comment) {
			continue
		}

		candidates = append(candidates, item)
	}

	emitted := make(map[string]struct{})
	basic := candidates

	if isAdvanced {
		families := b.grouper.Group(candidates)

		members := make(map[string]struct{})
		for _, f := range families {
			for _, item := range f.Items {
				members[item.Key] = struct{}{}
			}
		}

		basic = make([]resw.Item, 0, len(candidates))
		for _, item := range candidates {
			if _, ok := members[item.Key]; !ok {
				basic = append(basic, item)
			}
		}

		for _, f := range families {
			loc := b.buildFamily(f, items, basic, resourceName)
			if loc == nil {
				continue
			}

			emitted[f.Key] = struct{}{}
			result.Localizations = append(result.Localizations, loc)
		}
	}

	for _, item := range basic {
		if _, dup := emitted[item.Key]; dup {
			b.sink.Report(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticWarning,
				Code:     diagnostic.CodeDuplicateKey,
				Message:  fmt.Sprintf("%q is already generated, entry skipped", item.Key),
				Resource: resourceName,
				Key:      item.Key,
			})

			continue
		}

		loc := &model.RegularLocalization{Base: model.Base{
			Key:             item.Key,
			Summary:         summarize(summaryRegular, item.Value),
			HasPlaceholders: tag.HasDotNetFormatting(item.Value),
		}}

		if isAdvanced {
			b.manageFormattedFunction(loc, item.Comment, basic, []resw.Item{item}, resourceName)
		}

		emitted[item.Key] = struct{}{}
		result.Localizations = append(result.Localizations, loc)
	}

	return result
}

// buildFamily builds the localization of a plural and/or variant family.
// all is the unfiltered item list, used to find the _None form.
func (b *Builder) buildFamily(f resw.Family, all, basic []resw.Item, resourceName string) model.Localization {
	first, ok := common.First(f.Items)
	if !ok {
		return nil
	}

	var loc model.Localization

	switch {
	case f.SupportPlural:
		plural := model.Plural{SupportNoneState: hasKey(all, f.Key+resw.NoneSuffix)}
		base := model.Base{Key: f.Key, Summary: summarize(summaryPlural, first.Value)}

		if f.SupportVariants {
			loc = &model.PluralVariantLocalization{Base: base, Plural: plural}
		} else {
			loc = &model.PluralLocalization{Base: base, Plural: plural}
		}
	case f.SupportVariants:
		loc = &model.VariantLocalization{Base: model.Base{
			Key:     f.Key,
			Summary: summarize(summaryVariant, first.Value),
		}}
	default:
		return nil
	}

	// The first member carrying a format tag speaks for the whole family.
	var comment string
	for _, item := range f.Items {
		if comment == "" && tag.HasFormat(item.Comment) {
			comment = item.Comment
		}

		if tag.HasDotNetFormatting(item.Value) {
			loc.Common().HasPlaceholders = true
		}
	}

	b.manageFormattedFunction(loc, comment, basic, f.Items, resourceName)

	return loc
}

func (b *Builder) lookupProject(resourcePath, resourceName string) LibraryInfo {
	info, err := b.project.Lookup(resourcePath)
	if err != nil {
		b.sink.Report(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticInfo,
			Code:     diagnostic.CodeProjectLookup,
			Message:  fmt.Sprintf("project metadata unavailable: %v", err),
			Resource: resourceName,
		})

		return LibraryInfo{Status: LibraryUnknown}
	}

	return info
}

func hasKey(items []resw.Item, key string) bool {
	for _, item := range items {
		if item.Key == key {
			return true
		}
	}

	return false
}
