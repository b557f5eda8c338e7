package orchestration

import "github.com/agbru/fibdrv/internal/fibonacci"

// GetCalculatorsToRun resolves an algorithm selection. "all" returns every
// registered calculator in sorted name order; any other name returns that
// calculator alone, or nil when it is unknown.
//
// Parameters:
//   - algo: The algorithm name, or "all".
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []fibonacci.Calculator: The calculators to execute.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if algo == "all" {
		keys := factory.List()
		calculators := make([]fibonacci.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}
