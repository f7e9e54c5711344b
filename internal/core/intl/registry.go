// Package intl renders calendar field sets for one instant or a range of two,
// in the manner of CLDR skeletons and interval formats. Month names come from
// go-playground/locales; layouts come from the embedded locales.yaml
package intl

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/sv"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	perr "github.com/simonljus/tidy-date/internal/platform/errors"
)

//go:embed locales.yaml
var localeData []byte

type localeFile struct {
	Default string       `yaml:"default"`
	Locales []localeSpec `yaml:"locales"`
}

type localeSpec struct {
	Tag              string                       `yaml:"tag"`
	Translator       string                       `yaml:"translator"`
	HourCycle        string                       `yaml:"hour_cycle"`
	Periods          []string                     `yaml:"periods"`
	UpperPeriods     bool                         `yaml:"upper_periods"`
	Fallback         string                       `yaml:"fallback"`
	DateTime         string                       `yaml:"date_time"`
	IntervalDateTime string                       `yaml:"interval_date_time"`
	Skeletons        map[string]string            `yaml:"skeletons"`
	Intervals        map[string]map[string]string `yaml:"intervals"`
}

// translators lists every go-playground locale the data may reference
var translators = map[string]func() locales.Translator{
	"en":    en.New,
	"en_GB": en_GB.New,
	"pt_BR": pt_BR.New,
	"de":    de.New,
	"sv":    sv.New,
}

// Registry resolves locale identifiers to renderers. It is immutable after Load
type Registry struct {
	uni     *ut.UniversalTranslator
	matcher language.Matcher
	locales []*Locale // [0] is the default
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry built from the embedded data
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Load(localeData)
		if err != nil {
			panic("intl: embedded locale data: " + err.Error())
		}
		defaultReg = r
	})
	return defaultReg
}

// Load builds a registry from YAML locale data
func Load(data []byte) (*Registry, error) {
	var file localeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeLocale, "decode locale data")
	}
	if len(file.Locales) == 0 {
		return nil, perr.Localef("locale data lists no locales")
	}

	specs := make([]localeSpec, 0, len(file.Locales))
	for _, s := range file.Locales {
		// the matcher falls back to its first tag, so the default leads
		if s.Tag == file.Default {
			specs = append([]localeSpec{s}, specs...)
			continue
		}
		specs = append(specs, s)
	}
	if specs[0].Tag != file.Default {
		return nil, perr.Localef("default locale %q is not defined", file.Default)
	}

	var trans []locales.Translator
	for _, s := range specs {
		mk, ok := translators[s.Translator]
		if !ok {
			return nil, perr.Localef("locale %s: unknown translator %q", s.Tag, s.Translator)
		}
		trans = append(trans, mk())
	}
	r := &Registry{uni: ut.New(trans[0], trans...)}

	tags := make([]language.Tag, 0, len(specs))
	for _, s := range specs {
		l, err := r.build(s)
		if err != nil {
			return nil, err
		}
		r.locales = append(r.locales, l)
		tags = append(tags, l.tag)
	}
	r.matcher = language.NewMatcher(tags)
	return r, nil
}

func (r *Registry) build(s localeSpec) (*Locale, error) {
	tag, err := language.Parse(s.Tag)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeLocale, "locale tag %q", s.Tag)
	}
	tr, found := r.uni.GetTranslator(s.Translator)
	if !found {
		return nil, perr.Localef("locale %s: translator %q not registered", s.Tag, s.Translator)
	}
	if len(s.Periods) != 2 {
		return nil, perr.Localef("locale %s: want 2 day periods, got %d", s.Tag, len(s.Periods))
	}
	sep, err := separatorOf(s.Fallback)
	if err != nil {
		return nil, perr.WithOp(err, s.Tag)
	}

	l := &Locale{
		tag:              tag,
		trans:            tr,
		h12:              s.HourCycle == "h12",
		fallback:         s.Fallback,
		separator:        sep,
		dateTime:         s.DateTime,
		intervalDateTime: s.IntervalDateTime,
		skeletons:        make(map[string]pattern, len(s.Skeletons)),
		intervals:        make(map[string]map[byte]interval, len(s.Intervals)),
	}
	upper := cases.Upper(tag)
	for i, p := range s.Periods {
		if s.UpperPeriods {
			p = upper.String(p)
		}
		l.periods[i] = p
	}
	for key, raw := range s.Skeletons {
		l.skeletons[key] = parsePattern(raw)
	}
	for key, byField := range s.Intervals {
		m := make(map[byte]interval, len(byField))
		for field, raw := range byField {
			if len(field) != 1 {
				return nil, perr.Localef("locale %s: interval %s keyed by %q", s.Tag, key, field)
			}
			iv, ok := splitInterval(parsePattern(raw))
			if !ok {
				return nil, perr.Localef("locale %s: interval %s/%s repeats no field: %q", s.Tag, key, field, raw)
			}
			m[field[0]] = iv
		}
		l.intervals[key] = m
	}
	return l, nil
}

func separatorOf(fallback string) (string, error) {
	i, j := strings.Index(fallback, "{0}"), strings.Index(fallback, "{1}")
	if i < 0 || j < i+3 {
		return "", perr.Localef("fallback pattern %q must place {0} before {1}", fallback)
	}
	return fallback[i+3 : j], nil
}

// Resolve maps a BCP 47 identifier (underscores accepted, region UK read as GB)
// to the closest supported locale. Unknown or empty identifiers get the default
func (r *Registry) Resolve(id string) *Locale {
	tag, err := language.Parse(canonicalID(id))
	if err != nil {
		return r.locales[0]
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(r.locales) {
		return r.locales[0]
	}
	return r.locales[idx]
}

// Supported lists the tags the registry renders, default first
func (r *Registry) Supported() []string {
	out := make([]string, len(r.locales))
	for i, l := range r.locales {
		out[i] = l.Tag()
	}
	return out
}

func canonicalID(id string) string {
	parts := strings.Split(strings.ReplaceAll(strings.TrimSpace(id), "_", "-"), "-")
	for i := 1; i < len(parts); i++ {
		if strings.EqualFold(parts[i], "UK") {
			parts[i] = "GB"
		}
	}
	return strings.Join(parts, "-")
}
