package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/fredshone/factory/internal/ctxlog"
	"github.com/fredshone/factory/internal/demand"
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

var optionListType = cty.List(cty.String)

// optionsFromExpr evaluates a demand attribute into an option set. A single
// string or number stands for a one-element list. Null and the empty list both
// mean unconstrained.
func optionsFromExpr(ctx context.Context, expr hcl.Expression) (demand.Options, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid value: %w", diags)
	}
	if val.IsNull() {
		logger.Debug("Demand value is null, treating as unconstrained.", "hcl_range", expr.Range().String())
		return demand.Any(), nil
	}
	if val.Type().IsPrimitiveType() {
		val = cty.TupleVal([]cty.Value{val})
	}

	list, err := convert.Convert(val, optionListType)
	if err != nil {
		return nil, fmt.Errorf("expected a string or a list of strings, got %s: %w", val.Type().FriendlyName(), err)
	}
	if !list.IsWhollyKnown() {
		return nil, fmt.Errorf("value must be known at load time")
	}

	var opts []string
	for it := list.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.IsNull() {
			return nil, fmt.Errorf("options must not be null")
		}
		opts = append(opts, v.AsString())
	}
	return demand.Of(opts...), nil
}
