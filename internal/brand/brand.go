// Package brand detects brand impersonation through homoglyph folding and edit distance.
package brand

import (
	"fmt"
	"phishsniper/internal/homoglyph"
	"phishsniper/pkg/domain"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Options configures the Detector.
type Options struct {
	Corpus []Brand
	// MinBrandLength skips brands whose names are too short to compare meaningfully.
	MinBrandLength int
	// MinSubstringLength is the shortest brand matched anywhere inside a label.
	// Shorter brands must start the label or one of its hyphen tokens, so apple
	// does not match pineapple.
	MinSubstringLength int
	// MaxWeight is assigned to exact (folded) substring matches.
	MaxWeight float64
	// DistancePenalty is subtracted from MaxWeight per edit.
	DistancePenalty float64
	MinWeight       float64
	// SubdomainWeight is assigned when the brand only appears in the subdomain.
	SubdomainWeight float64
	// AllowTLDVariants treats the brand's own name under another suffix (paypal.de) as legitimate.
	AllowTLDVariants bool
}

// DefaultOptions returns the built-in corpus, weights and thresholds.
func DefaultOptions() Options {
	return Options{
		Corpus:           DefaultCorpus(),
		MinBrandLength:     4,
		MinSubstringLength: 6,
		MaxWeight:          40,
		DistancePenalty:    10,
		MinWeight:          15,
		SubdomainWeight:    30,
		AllowTLDVariants:   true,
	}
}

type entry struct {
	name    string
	folded  string
	domains map[string]struct{}
}

// Detector compares domains against a brand corpus. It is safe for concurrent use.
type Detector struct {
	opts   Options
	brands []entry
}

// New creates a Detector from opts.
func New(opts Options) *Detector {
	d := &Detector{opts: opts, brands: make([]entry, 0, len(opts.Corpus))}
	for _, b := range opts.Corpus {
		name := strings.ToLower(strings.TrimSpace(b.Name))
		if utf8.RuneCountInString(name) < opts.MinBrandLength {
			continue
		}

		e := entry{name: name, folded: homoglyph.Fold(name), domains: make(map[string]struct{})}
		if len(b.Domains) == 0 {
			e.domains[name+".com"] = struct{}{}
		}
		for _, dom := range b.Domains {
			e.domains[strings.ToLower(strings.TrimSpace(dom))] = struct{}{}
		}
		d.brands = append(d.brands, e)
	}

	return d
}

// Detect returns the best match per brand and one factor per match, both in corpus order.
func (d *Detector) Detect(u *domain.NormalizedURL) ([]domain.BrandMatch, []domain.RiskFactor) {
	if u.IsIP {
		return nil, nil
	}

	core := strings.ToLower(u.CoreLabel())
	label := homoglyph.Fold(core)
	candidates := []string{label}
	if strings.Contains(core, "-") {
		for _, tok := range strings.Split(core, "-") {
			if tok != "" {
				candidates = append(candidates, homoglyph.Fold(tok))
			}
		}
	}

	var subLabels []string
	if u.Subdomain != "" {
		sub := u.UnicodeHost
		if u.UnicodeRegisteredDomain != "" {
			sub = strings.TrimSuffix(sub, "."+u.UnicodeRegisteredDomain)
		}
		subLabels = strings.FieldsFunc(homoglyph.Fold(sub), func(r rune) bool { return r == '.' || r == '-' })
	}

	var (
		matches []domain.BrandMatch
		factors []domain.RiskFactor
	)
	for _, b := range d.brands {
		if d.legitimate(b, u, core) {
			continue
		}

		if dist, ok := d.labelDistance(b, label, candidates); ok {
			weight := max(d.opts.MaxWeight-float64(dist)*d.opts.DistancePenalty, d.opts.MinWeight)
			var code, desc string
			switch {
			case dist > 0:
				code, desc = "typosquatting", fmt.Sprintf("Domain resembles brand %q (edit distance %d)", b.name, dist)
			case d.contains(core, b.name):
				code, desc = "brand_in_domain", fmt.Sprintf("Domain contains brand name %q", b.name)
			default:
				// only the folded label contains the brand
				code, desc = "homoglyph", fmt.Sprintf("Domain imitates brand %q using look-alike characters", b.name)
			}
			matches = append(matches, domain.BrandMatch{Brand: b.name, Distance: dist, Description: desc})
			factors = append(factors, domain.RiskFactor{Code: code, Description: desc, Weight: weight, Category: domain.CategoryBrand})

			continue
		}

		if d.containsAny(subLabels, b.folded) {
			desc := fmt.Sprintf("Brand name %q appears in subdomain of unrelated domain %s", b.name, u.RegisteredDomain)
			matches = append(matches, domain.BrandMatch{Brand: b.name, Distance: 0, Description: desc})
			factors = append(factors, domain.RiskFactor{
				Code: "brand_in_subdomain", Description: desc, Weight: d.opts.SubdomainWeight, Category: domain.CategoryBrand,
			})
		}
	}

	return matches, factors
}

func (d *Detector) legitimate(b entry, u *domain.NormalizedURL, core string) bool {
	if _, ok := b.domains[u.RegisteredDomain]; ok {
		return true
	}
	if _, ok := b.domains[u.UnicodeRegisteredDomain]; ok {
		return true
	}

	return d.opts.AllowTLDVariants && core == b.name
}

// labelDistance returns the lowest distance between the brand and the label or one of its hyphen tokens.
// A folded substring match has distance zero.
func (d *Detector) labelDistance(b entry, label string, candidates []string) (int, bool) {
	if d.contains(label, b.folded) {
		return 0, true
	}

	threshold := max(1, utf8.RuneCountInString(b.name)/4)
	best := -1
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(c, b.folded)
		if dist <= threshold && (best < 0 || dist < best) {
			best = dist
		}
	}

	return best, best >= 0
}

// contains reports whether brand occurs in label, honoring MinSubstringLength.
func (d *Detector) contains(label, brand string) bool {
	if utf8.RuneCountInString(brand) >= d.opts.MinSubstringLength {
		return strings.Contains(label, brand)
	}
	for _, tok := range strings.Split(label, "-") {
		if strings.HasPrefix(tok, brand) {
			return true
		}
	}

	return false
}

func (d *Detector) containsAny(labels []string, brand string) bool {
	for _, l := range labels {
		if d.contains(l, brand) {
			return true
		}
	}

	return false
}
