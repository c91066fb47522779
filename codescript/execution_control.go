package codescript

// loopPredicate picks the condition test for a loop keyword: "while" runs
// while the condition is true, any other spelling ("until") while it is false.
func loopPredicate(keyword string) func(Value) (bool, error) {
	if keyword == "while" {
		return isTrue
	}
	return isFalse
}

// evalWhileStatement checks the condition before every iteration. When the
// very first check fails the else branch runs once instead of the body.
func (exec *Execution) evalWhileStatement(stmt *WhileStmt) error {
	holds := loopPredicate(stmt.Keyword)

	check := func() (bool, error) {
		condition, err := exec.evalExpression(stmt.Condition)
		if err != nil {
			return false, err
		}
		ok, err := holds(condition)
		if err != nil {
			return false, exec.wrapError(err, stmt.Condition.Pos())
		}
		return ok, nil
	}

	ok, err := check()
	if err != nil {
		return err
	}
	if !ok {
		if stmt.Else == nil {
			return nil
		}
		return exec.evalStatement(stmt.Else)
	}

	for ok {
		if err := exec.evalStatement(stmt.Body); err != nil {
			return err
		}
		if ok, err = check(); err != nil {
			return err
		}
	}
	return nil
}
