// Package serializer converts between request payloads, stored models and
// response representations.
//
// Inputs use pointer fields so a payload can tell "absent" from "zero".
// Apply merges an input onto a model according to a Mode. Create and Replace
// require every required field; only Create fills defaulted fields that are
// absent, so a Replace keeps their stored values. Patch changes only the
// supplied fields. Server-managed fields (ids, timestamps, order totals) have
// no input field.
package serializer

import (
	"restaurant-pos/internal/util"
)

// Mode selects how Apply treats absent payload fields.
type Mode int

const (
	Create  Mode = iota // POST
	Replace             // PUT
	Patch               // PATCH
)

// set copies *src into *dst, or records a required error when src is absent
// outside a patch.
func set[T any](errs util.FieldErrors, field string, src, dst *T, mode Mode) {
	if src == nil {
		if mode != Patch {
			errs.Add(field, util.MsgRequired)
		}
		return
	}
	*dst = *src
}

// setDefault copies *src into *dst, falling back to def on create.
func setDefault[T any](src, dst *T, def T, mode Mode) {
	switch {
	case src != nil:
		*dst = *src
	case mode == Create:
		*dst = def
	}
}

// finish runs the model rules and folds them into the payload errors.
func finish(errs util.FieldErrors, model interface{}) util.FieldErrors {
	if verrs := util.ValidateStruct(model); verrs != nil {
		errs.Merge(verrs)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
