package style

import (
	"reflect"

	"github.com/mcncl/echartsopt/internal/models"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Each block keeps the members it does not declare in Extra and writes
// them back after its declared fields.

type plainTextStyle TextStyle

var textStyleFields = models.FieldsOf(reflect.TypeOf(plainTextStyle{}))

// MarshalJSON implements json.Marshaler.
func (t TextStyle) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainTextStyle(t), t.Extra, textStyleFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TextStyle) UnmarshalJSON(data []byte) error {
	var p plainTextStyle
	extra, err := variant.UnmarshalMembers(data, &p, textStyleFields)
	if err != nil {
		return err
	}
	*t = TextStyle(p)
	t.Extra = extra
	return nil
}

type plainItemStyle ItemStyle

var itemStyleFields = models.FieldsOf(reflect.TypeOf(plainItemStyle{}))

// MarshalJSON implements json.Marshaler.
func (s ItemStyle) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainItemStyle(s), s.Extra, itemStyleFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ItemStyle) UnmarshalJSON(data []byte) error {
	var p plainItemStyle
	extra, err := variant.UnmarshalMembers(data, &p, itemStyleFields)
	if err != nil {
		return err
	}
	*s = ItemStyle(p)
	s.Extra = extra
	return nil
}

type plainLineStyle LineStyle

var lineStyleFields = models.FieldsOf(reflect.TypeOf(plainLineStyle{}))

// MarshalJSON implements json.Marshaler.
func (s LineStyle) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainLineStyle(s), s.Extra, lineStyleFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *LineStyle) UnmarshalJSON(data []byte) error {
	var p plainLineStyle
	extra, err := variant.UnmarshalMembers(data, &p, lineStyleFields)
	if err != nil {
		return err
	}
	*s = LineStyle(p)
	s.Extra = extra
	return nil
}

type plainAreaStyle AreaStyle

var areaStyleFields = models.FieldsOf(reflect.TypeOf(plainAreaStyle{}))

// MarshalJSON implements json.Marshaler.
func (s AreaStyle) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainAreaStyle(s), s.Extra, areaStyleFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *AreaStyle) UnmarshalJSON(data []byte) error {
	var p plainAreaStyle
	extra, err := variant.UnmarshalMembers(data, &p, areaStyleFields)
	if err != nil {
		return err
	}
	*s = AreaStyle(p)
	s.Extra = extra
	return nil
}

type plainLabel Label

var labelFields = models.FieldsOf(reflect.TypeOf(plainLabel{}))

// MarshalJSON implements json.Marshaler.
func (l Label) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainLabel(l), l.Extra, labelFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Label) UnmarshalJSON(data []byte) error {
	var p plainLabel
	extra, err := variant.UnmarshalMembers(data, &p, labelFields)
	if err != nil {
		return err
	}
	*l = Label(p)
	l.Extra = extra
	return nil
}

type plainLabelLine LabelLine

var labelLineFields = models.FieldsOf(reflect.TypeOf(plainLabelLine{}))

// MarshalJSON implements json.Marshaler.
func (l LabelLine) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainLabelLine(l), l.Extra, labelLineFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LabelLine) UnmarshalJSON(data []byte) error {
	var p plainLabelLine
	extra, err := variant.UnmarshalMembers(data, &p, labelLineFields)
	if err != nil {
		return err
	}
	*l = LabelLine(p)
	l.Extra = extra
	return nil
}

type plainEmphasis Emphasis

var emphasisFields = models.FieldsOf(reflect.TypeOf(plainEmphasis{}))

// MarshalJSON implements json.Marshaler.
func (e Emphasis) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainEmphasis(e), e.Extra, emphasisFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Emphasis) UnmarshalJSON(data []byte) error {
	var p plainEmphasis
	extra, err := variant.UnmarshalMembers(data, &p, emphasisFields)
	if err != nil {
		return err
	}
	*e = Emphasis(p)
	e.Extra = extra
	return nil
}

type plainAxisPointer AxisPointer

var axisPointerFields = models.FieldsOf(reflect.TypeOf(plainAxisPointer{}))

// MarshalJSON implements json.Marshaler.
func (a AxisPointer) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainAxisPointer(a), a.Extra, axisPointerFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AxisPointer) UnmarshalJSON(data []byte) error {
	var p plainAxisPointer
	extra, err := variant.UnmarshalMembers(data, &p, axisPointerFields)
	if err != nil {
		return err
	}
	*a = AxisPointer(p)
	a.Extra = extra
	return nil
}

type plainTooltip Tooltip

var tooltipFields = models.FieldsOf(reflect.TypeOf(plainTooltip{}))

// MarshalJSON implements json.Marshaler.
func (t Tooltip) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainTooltip(t), t.Extra, tooltipFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tooltip) UnmarshalJSON(data []byte) error {
	var p plainTooltip
	extra, err := variant.UnmarshalMembers(data, &p, tooltipFields)
	if err != nil {
		return err
	}
	*t = Tooltip(p)
	t.Extra = extra
	return nil
}
