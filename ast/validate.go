// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

// Validate reports whether value conforms to schema.
//
// A null schema accepts any value whatsoever, regardless of its variant.
// Otherwise the variants must match, and:
//
//   - An empty schema object accepts any object. A non-empty schema object
//     requires value to contain every schema member name, each bound to a
//     value conforming to the corresponding schema member. Extra members in
//     value are allowed.
//
//   - An empty schema array accepts any array. Otherwise the first element
//     of the schema array is the element schema, and every element of value
//     must conform to it; the rest of the schema array is ignored.
//
//   - For strings, numbers, and Booleans, matching variants suffice; the
//     content is not compared.
//
// A nil schema or a nil value conforms to nothing, including each other.
func Validate(schema, value *Value) bool {
	if schema == nil || value == nil {
		return false
	}
	if schema.Kind() != value.Kind() && schema.Kind() != KindNull {
		return false
	}
	switch schema.Kind() {
	case KindArray:
		sa, va := schema.Array(), value.Array()
		if sa.Len() == 0 {
			return true // an empty array allows all element types
		}
		eltSchema := sa.At(0)
		for _, elt := range va.items {
			if !Validate(eltSchema, elt) {
				return false
			}
		}
		return true
	case KindObject:
		so, vo := schema.Object(), value.Object()
		if so.Len() == 0 {
			return true // an empty object allows all objects
		}
		if vo.Len() < so.Len() {
			return false // value must not have fewer members than schema
		}
		for i, name := range so.names {
			got := vo.Get(name)
			if got == nil || !Validate(so.values[i], got) {
				return false
			}
		}
		return true
	case KindString, KindNumber, KindBool, KindNull:
		return true // variant agreement was checked above
	default:
		return false
	}
}
