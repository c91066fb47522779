package codescript

func isNumeric(v Value) bool {
	return v.Kind() == KindInt || v.Kind() == KindFloat
}

// addValues implements both + and &.
func addValues(left, right Value) (Value, error) {
	switch {
	case left.Kind() == KindInt && right.Kind() == KindInt:
		return NewInt(left.Int() + right.Int()), nil
	case isNumeric(left) && isNumeric(right):
		return NewFloat(left.Float() + right.Float()), nil
	case left.Kind() == KindString || right.Kind() == KindString:
		return NewString(left.String() + right.String()), nil
	default:
		return NewNull(), newTypeError("cannot add values of types %s and %s", left.Kind(), right.Kind())
	}
}

// subtractValues follows addValues: a string on either side concatenates.
func subtractValues(left, right Value) (Value, error) {
	switch {
	case left.Kind() == KindInt && right.Kind() == KindInt:
		return NewInt(left.Int() - right.Int()), nil
	case isNumeric(left) && isNumeric(right):
		return NewFloat(left.Float() - right.Float()), nil
	case left.Kind() == KindString || right.Kind() == KindString:
		return NewString(left.String() + right.String()), nil
	default:
		return NewNull(), newTypeError("cannot subtract values of types %s and %s", left.Kind(), right.Kind())
	}
}

func lessThan(left, right Value) (Value, error) {
	switch {
	case left.Kind() == KindInt && right.Kind() == KindInt:
		return NewBool(left.Int() < right.Int()), nil
	case isNumeric(left) && isNumeric(right):
		return NewBool(left.Float() < right.Float()), nil
	default:
		return NewNull(), newTypeError("cannot compare values of types %s and %s", left.Kind(), right.Kind())
	}
}

func isTrue(v Value) (bool, error) {
	if v.Kind() != KindBool {
		return false, newTypeError("value is not a boolean")
	}
	return v.Bool(), nil
}

func isFalse(v Value) (bool, error) {
	ok, err := isTrue(v)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
