package codescript

func (exec *Execution) evalAdditiveExpr(expr *AdditiveExpr) (Value, error) {
	left, err := exec.evalExpression(expr.Left)
	if err != nil {
		return NewNull(), err
	}
	right, err := exec.evalExpression(expr.Right)
	if err != nil {
		return NewNull(), err
	}

	var result Value
	switch expr.Operator {
	case tokenPlus, tokenAmp:
		result, err = addValues(left, right)
	case tokenMinus:
		result, err = subtractValues(left, right)
	default:
		return NewNull(), exec.errorAt(expr.Pos(), runtimeErrorTypeUnsupported, "unsupported additive operator %s", expr.Operator)
	}
	if err != nil {
		return NewNull(), exec.wrapError(err, expr.Pos())
	}
	return result, nil
}

func (exec *Execution) evalComparisonExpr(expr *ComparisonExpr) (Value, error) {
	left, err := exec.evalExpression(expr.Left)
	if err != nil {
		return NewNull(), err
	}
	right, err := exec.evalExpression(expr.Right)
	if err != nil {
		return NewNull(), err
	}

	switch expr.Operator {
	case tokenLT:
		result, err := lessThan(left, right)
		if err != nil {
			return NewNull(), exec.wrapError(err, expr.Pos())
		}
		return result, nil
	default:
		return NewNull(), exec.errorAt(expr.Pos(), runtimeErrorTypeUnsupported, "unsupported comparison operator %s", expr.Operator)
	}
}
