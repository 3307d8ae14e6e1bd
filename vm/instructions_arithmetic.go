package vm

// Arithmetic and comparison handlers. Operand order follows spec.md §4.2:
// binary ops pop a then b, and push(a op b) — grounded on the arithmetic
// block of other_examples' core-coin-go-core instructions.go (opAdd,
// opSub, opSdiv, ...), adapted to holiman/uint256's in-place API.

func opAdd(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	y.Add(&x, y)
	return nil, nil
}

func opSub(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	y.Sub(&x, y)
	return nil, nil
}

func opMul(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	y.Mul(&x, y)
	return nil, nil
}

func opDiv(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	y.Div(&x, y)
	return nil, nil
}

func opSdiv(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	y.SDiv(&x, y)
	return nil, nil
}

func opMod(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	y.Mod(&x, y)
	return nil, nil
}

func opSmod(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	y.SMod(&x, y)
	return nil, nil
}

func opAddmod(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	z, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	if z.IsZero() {
		z.Clear()
		return nil, nil
	}
	z.AddMod(&x, &y, z)
	return nil, nil
}

func opMulmod(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	z, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	if z.IsZero() {
		z.Clear()
		return nil, nil
	}
	z.MulMod(&x, &y, z)
	return nil, nil
}

func opExp(pc *uint64, f *Frame) ([]byte, error) {
	base, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	exponent, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	exponent.Exp(&base, exponent)
	return nil, nil
}

func opSignExtend(pc *uint64, f *Frame) ([]byte, error) {
	back, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	num, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	num.ExtendSign(num, &back)
	return nil, nil
}

func opLt(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opGt(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSlt(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSgt(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opEq(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	y, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opIszero(pc *uint64, f *Frame) ([]byte, error) {
	x, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return nil, nil
}
