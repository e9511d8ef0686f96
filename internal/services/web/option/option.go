// Package option maps backend reference entities to select options.
package option

import (
	"strconv"
	"strings"
)

// Option is one label/value pair offered by a select.
type Option struct {
	Value string
	Label string
}

// Named is a reference entity that can be offered as an option.
type Named interface {
	// OptionValue returns the option value, typically the entity id.
	OptionValue() string
	// DefaultName returns the name used when no localized name applies.
	DefaultName() string
	// LocalizedName returns the name for lang, or "" when none exists.
	LocalizedName(lang string) string
}

// Map converts entities into options with a placeholder first. Labels use
// the entity's localized name for lang when lang is set and that name is
// non-blank; otherwise the default name. Input order is kept.
func Map[T Named](entities []T, placeholder string, lang string) []Option {
	options := make([]Option, 0, len(entities)+1)
	options = append(options, Option{Value: "", Label: placeholder})
	lang = strings.TrimSpace(lang)
	for _, entity := range entities {
		options = append(options, Option{
			Value: entity.OptionValue(),
			Label: label(entity, lang),
		})
	}
	return options
}

// Selected returns the option whose value equals value.
func Selected(value string, options []Option) (Option, bool) {
	for _, opt := range options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// SelectedValue returns value when it matches an option, otherwise "".
func SelectedValue(value string, options []Option) string {
	opt, ok := Selected(value, options)
	if !ok {
		return ""
	}
	return opt.Value
}

// IDValue formats a numeric entity id as an option value.
func IDValue(id int) string {
	return strconv.Itoa(id)
}

func label(entity Named, lang string) string {
	if lang != "" {
		if localized := entity.LocalizedName(lang); strings.TrimSpace(localized) != "" {
			return localized
		}
	}
	return entity.DefaultName()
}
