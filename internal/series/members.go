package series

import (
	"reflect"

	"github.com/mcncl/echartsopt/internal/models"
	"github.com/mcncl/echartsopt/internal/variant"
)

type plainLineEffect LineEffect

var lineEffectFields = models.FieldsOf(reflect.TypeOf(plainLineEffect{}))

// MarshalJSON implements json.Marshaler.
func (e LineEffect) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainLineEffect(e), e.Extra, lineEffectFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *LineEffect) UnmarshalJSON(data []byte) error {
	var p plainLineEffect
	extra, err := variant.UnmarshalMembers(data, &p, lineEffectFields)
	if err != nil {
		return err
	}
	*e = LineEffect(p)
	e.Extra = extra
	return nil
}

type plainLevel Level

var levelFields = models.FieldsOf(reflect.TypeOf(plainLevel{}))

// MarshalJSON implements json.Marshaler.
func (l Level) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainLevel(l), l.Extra, levelFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Level) UnmarshalJSON(data []byte) error {
	var p plainLevel
	extra, err := variant.UnmarshalMembers(data, &p, levelFields)
	if err != nil {
		return err
	}
	*l = Level(p)
	l.Extra = extra
	return nil
}

type plainCategory Category

var categoryFields = models.FieldsOf(reflect.TypeOf(plainCategory{}))

// MarshalJSON implements json.Marshaler.
func (c Category) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainCategory(c), c.Extra, categoryFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Category) UnmarshalJSON(data []byte) error {
	var p plainCategory
	extra, err := variant.UnmarshalMembers(data, &p, categoryFields)
	if err != nil {
		return err
	}
	*c = Category(p)
	c.Extra = extra
	return nil
}

type plainForce Force

var forceFields = models.FieldsOf(reflect.TypeOf(plainForce{}))

// MarshalJSON implements json.Marshaler.
func (f Force) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainForce(f), f.Extra, forceFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Force) UnmarshalJSON(data []byte) error {
	var p plainForce
	extra, err := variant.UnmarshalMembers(data, &p, forceFields)
	if err != nil {
		return err
	}
	*f = Force(p)
	f.Extra = extra
	return nil
}

type plainRippleEffect RippleEffect

var rippleEffectFields = models.FieldsOf(reflect.TypeOf(plainRippleEffect{}))

// MarshalJSON implements json.Marshaler.
func (r RippleEffect) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainRippleEffect(r), r.Extra, rippleEffectFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RippleEffect) UnmarshalJSON(data []byte) error {
	var p plainRippleEffect
	extra, err := variant.UnmarshalMembers(data, &p, rippleEffectFields)
	if err != nil {
		return err
	}
	*r = RippleEffect(p)
	r.Extra = extra
	return nil
}

type plainWireframe Wireframe

var wireframeFields = models.FieldsOf(reflect.TypeOf(plainWireframe{}))

// MarshalJSON implements json.Marshaler.
func (w Wireframe) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainWireframe(w), w.Extra, wireframeFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *Wireframe) UnmarshalJSON(data []byte) error {
	var p plainWireframe
	extra, err := variant.UnmarshalMembers(data, &p, wireframeFields)
	if err != nil {
		return err
	}
	*w = Wireframe(p)
	w.Extra = extra
	return nil
}

type plainForceAtlas2 ForceAtlas2

var forceAtlas2Fields = models.FieldsOf(reflect.TypeOf(plainForceAtlas2{}))

// MarshalJSON implements json.Marshaler.
func (f ForceAtlas2) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainForceAtlas2(f), f.Extra, forceAtlas2Fields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *ForceAtlas2) UnmarshalJSON(data []byte) error {
	var p plainForceAtlas2
	extra, err := variant.UnmarshalMembers(data, &p, forceAtlas2Fields)
	if err != nil {
		return err
	}
	*f = ForceAtlas2(p)
	f.Extra = extra
	return nil
}

type plainLink Link

var linkFields = models.FieldsOf(reflect.TypeOf(plainLink{}))

// MarshalJSON implements json.Marshaler.
func (l Link) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainLink(l), l.Extra, linkFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Link) UnmarshalJSON(data []byte) error {
	var p plainLink
	extra, err := variant.UnmarshalMembers(data, &p, linkFields)
	if err != nil {
		return err
	}
	*l = Link(p)
	l.Extra = extra
	return nil
}
