package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"chartcursor/internal/tickfmt"
)

// convention captures how a locale orders and separates numeric date parts.
type convention struct {
	dayFirst  bool
	yearFirst bool
	dateSep   string
	mdSuffix  string
	yearSep   string
	joiner    string
}

var (
	supported = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
		language.Italian,
		language.Dutch,
		language.Russian,
		language.Polish,
		language.Japanese,
		language.Chinese,
		language.Swedish,
	}

	conventions = []convention{
		{dateSep: "/", yearSep: "/", joiner: ", "},
		{dayFirst: true, dateSep: "/", yearSep: "/", joiner: ", "},
		{dayFirst: true, dateSep: ".", mdSuffix: ".", yearSep: ".", joiner: ", "},
		{dayFirst: true, dateSep: "/", yearSep: "/", joiner: " "},
		{dayFirst: true, dateSep: "/", yearSep: "/", joiner: ", "},
		{dayFirst: true, dateSep: "/", yearSep: "/", joiner: ", "},
		{dayFirst: true, dateSep: "-", yearSep: "-", joiner: " "},
		{dayFirst: true, dateSep: ".", yearSep: ".", joiner: ", "},
		{dayFirst: true, dateSep: ".", yearSep: ".", joiner: ", "},
		{yearFirst: true, dateSep: "/", yearSep: "/", joiner: " "},
		{yearFirst: true, dateSep: "/", yearSep: "/", joiner: " "},
		{dayFirst: true, yearFirst: true, dateSep: "/", yearSep: "-", joiner: " "},
	}

	matcher = language.NewMatcher(supported)
)

// Formatter produces locale ordered date parts for tick patterns.
type Formatter struct {
	tag  language.Tag
	conv convention
}

// New resolves a BCP 47 tag to the closest supported convention. An empty
// tag or "default" selects American English, as does any tag without a
// reasonable match.
func New(tag string) (*Formatter, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" || strings.EqualFold(tag, "default") {
		return &Formatter{tag: supported[0], conv: conventions[0]}, nil
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", tag, err)
	}

	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		idx = 0
	}
	return &Formatter{tag: supported[idx], conv: conventions[idx]}, nil
}

// Tag reports the supported locale the formatter resolved to.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// FormatToParts lays out the requested fields. Values are placeholders;
// callers consume the part types.
func (f *Formatter) FormatToParts(fields tickfmt.FieldSet) []tickfmt.Part {
	date := f.dateParts(fields)
	clock := timeParts(fields)

	switch {
	case len(date) == 0:
		return clock
	case len(clock) == 0:
		return date
	}

	parts := append(date, literal(f.conv.joiner))
	return append(parts, clock...)
}

func (f *Formatter) dateParts(fields tickfmt.FieldSet) []tickfmt.Part {
	c := f.conv
	year := tickfmt.Part{Type: "year", Value: "2006"}
	month := tickfmt.Part{Type: "month", Value: "01"}
	day := tickfmt.Part{Type: "day", Value: "02"}

	switch {
	case fields.Year && fields.Month && fields.Day:
		if c.yearFirst {
			return []tickfmt.Part{year, literal(c.yearSep), month, literal(c.yearSep), day}
		}
		if c.dayFirst {
			return []tickfmt.Part{day, literal(c.dateSep), month, literal(c.dateSep), year}
		}
		return []tickfmt.Part{month, literal(c.dateSep), day, literal(c.dateSep), year}
	case fields.Year && fields.Month:
		if c.yearFirst {
			return []tickfmt.Part{year, literal(c.yearSep), month}
		}
		return []tickfmt.Part{month, literal(c.yearSep), year}
	case fields.Month && fields.Day:
		var parts []tickfmt.Part
		if c.dayFirst {
			parts = []tickfmt.Part{day, literal(c.dateSep), month}
		} else {
			parts = []tickfmt.Part{month, literal(c.dateSep), day}
		}
		if c.mdSuffix != "" {
			parts = append(parts, literal(c.mdSuffix))
		}
		return parts
	case fields.Year:
		return []tickfmt.Part{year}
	case fields.Month:
		return []tickfmt.Part{month}
	case fields.Day:
		return []tickfmt.Part{day}
	}
	return nil
}

func timeParts(fields tickfmt.FieldSet) []tickfmt.Part {
	var parts []tickfmt.Part
	add := func(p tickfmt.Part) {
		if len(parts) > 0 {
			parts = append(parts, literal(":"))
		}
		parts = append(parts, p)
	}
	if fields.Hour {
		add(tickfmt.Part{Type: "hour", Value: "15"})
	}
	if fields.Minute {
		add(tickfmt.Part{Type: "minute", Value: "04"})
	}
	if fields.Second {
		add(tickfmt.Part{Type: "second", Value: "05"})
	}
	return parts
}

func literal(v string) tickfmt.Part {
	return tickfmt.Part{Type: "literal", Value: v}
}

var _ tickfmt.PartsFormatter = (*Formatter)(nil)
