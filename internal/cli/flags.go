package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/clientbuddy/internal/domain"
)

// langValue is a --lang flag restricted to the supported languages.
type langValue struct {
	lang *domain.Language
}

var _ pflag.Value = langValue{}

func newLangValue(p *domain.Language, def domain.Language) langValue {
	*p = def
	return langValue{lang: p}
}

func (v langValue) String() string {
	if v.lang == nil {
		return ""
	}
	return string(*v.lang)
}

func (v langValue) Set(s string) error {
	l, err := domain.ParseLanguage(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	*v.lang = l
	return nil
}

func (langValue) Type() string { return "en|id" }

// categoryValue is a --category flag accepting any detailed design
// category key.
type categoryValue struct {
	cat *domain.DesignCategory
}

var _ pflag.Value = categoryValue{}

func newCategoryValue(p *domain.DesignCategory, def domain.DesignCategory) categoryValue {
	*p = def
	return categoryValue{cat: p}
}

func (v categoryValue) String() string {
	if v.cat == nil {
		return ""
	}
	return string(*v.cat)
}

func (v categoryValue) Set(s string) error {
	c, err := domain.ParseDesignCategory(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*v.cat = c
	return nil
}

func (categoryValue) Type() string { return "category" }

// addLangFlag registers --lang on fs.
func addLangFlag(fs *pflag.FlagSet, p *domain.Language, usage string) {
	fs.Var(newLangValue(p, domain.LangEN), "lang", usage)
}
