package bigdecimal

// Add returns a + b.
// It fails with ErrCapacityOverflow when the sum needs more than Capacity digits.
func Add(a, b Decimal) (Decimal, error) {
	var c Decimal
	var carry uint8
	for i := 0; i < Capacity; i++ {
		sum := a.digits[i] + b.digits[i] + carry
		c.digits[i] = sum % 10
		carry = sum / 10
	}
	if carry != 0 {
		return Decimal{}, ErrCapacityOverflow
	}
	return c, nil
}

// Sub returns a - b. The borrow is carried in a local variable; neither
// operand is modified. It fails with ErrNegativeResult when b > a.
func Sub(a, b Decimal) (Decimal, error) {
	if Cmp(a, b) < 0 {
		return Decimal{}, ErrNegativeResult
	}
	var c Decimal
	var borrow int8
	for i := 0; i < Capacity; i++ {
		diff := int8(a.digits[i]) - int8(b.digits[i]) - borrow
		borrow = 0
		if diff < 0 {
			diff += 10
			borrow = 1
		}
		c.digits[i] = uint8(diff)
	}
	return c, nil
}

// Mul returns a * b using schoolbook multiplication. Each row of partial
// products is accumulated into a cleared output with its own carry.
// It fails with ErrCapacityOverflow when any non-zero digit of the product
// would land at position Capacity or above.
func Mul(a, b Decimal) (Decimal, error) {
	var c Decimal
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return c, nil
	}
	// The product has la+lb-1 or la+lb digits.
	if la+lb-1 > Capacity {
		return Decimal{}, ErrCapacityOverflow
	}
	for i := 0; i < la; i++ {
		ai := uint16(a.digits[i])
		if ai == 0 {
			continue
		}
		var carry uint16
		for j := 0; j < lb; j++ {
			v := ai*uint16(b.digits[j]) + uint16(c.digits[i+j]) + carry
			c.digits[i+j] = uint8(v % 10)
			carry = v / 10
		}
		for pos := i + lb; carry != 0; pos++ {
			if pos >= Capacity {
				return Decimal{}, ErrCapacityOverflow
			}
			v := uint16(c.digits[pos]) + carry
			c.digits[pos] = uint8(v % 10)
			carry = v / 10
		}
	}
	return c, nil
}
