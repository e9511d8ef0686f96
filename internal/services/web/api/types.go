package api

import (
	"fmt"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/option"
)

// ApplicationPeriod is an application round offered by the reservation
// backend. Period bounds are passed through as the backend formats them.
type ApplicationPeriod struct {
	ID                     int    `json:"id"`
	Name                   string `json:"name"`
	NameFI                 string `json:"name_fi"`
	NameSV                 string `json:"name_sv"`
	NameEN                 string `json:"name_en"`
	ApplicationPeriodBegin string `json:"application_period_begin"`
	ApplicationPeriodEnd   string `json:"application_period_end"`
	ReservationPeriodBegin string `json:"reservation_period_begin"`
	ReservationPeriodEnd   string `json:"reservation_period_end"`
	Purposes               []int  `json:"purposes"`
	ReservationUnits       []int  `json:"reservation_units"`
}

// OptionValue returns the period id as an option value.
func (p ApplicationPeriod) OptionValue() string { return option.IDValue(p.ID) }

// DefaultName returns the untranslated name.
func (p ApplicationPeriod) DefaultName() string { return p.Name }

// LocalizedName returns the name for lang, or "".
func (p ApplicationPeriod) LocalizedName(lang string) string {
	return localizedName(lang, p.NameFI, p.NameSV, p.NameEN)
}

// DisplayName returns the localized name when present, else the default.
func (p ApplicationPeriod) DisplayName(lang string) string {
	if name := p.LocalizedName(lang); name != "" {
		return name
	}
	return p.Name
}

// ParameterKind names a reference parameter collection.
type ParameterKind string

const (
	ParameterPurpose  ParameterKind = "purpose"
	ParameterDistrict ParameterKind = "district"
)

// Valid reports whether the backend serves this kind.
func (k ParameterKind) Valid() bool {
	switch k {
	case ParameterPurpose, ParameterDistrict:
		return true
	default:
		return false
	}
}

// Parameter is one reference value, such as a purpose or a district.
type Parameter struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameFI string `json:"name_fi"`
	NameSV string `json:"name_sv"`
	NameEN string `json:"name_en"`
}

// OptionValue returns the parameter id as an option value.
func (p Parameter) OptionValue() string { return option.IDValue(p.ID) }

// DefaultName returns the untranslated name.
func (p Parameter) DefaultName() string { return p.Name }

// LocalizedName returns the name for lang, or "".
func (p Parameter) LocalizedName(lang string) string {
	return localizedName(lang, p.NameFI, p.NameSV, p.NameEN)
}

func (p Parameter) String() string {
	return fmt.Sprintf("%d:%s", p.ID, p.Name)
}

func localizedName(lang string, fi string, sv string, en string) string {
	switch lang {
	case "fi":
		return fi
	case "sv":
		return sv
	case "en":
		return en
	default:
		return ""
	}
}
