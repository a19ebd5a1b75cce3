package exceptions

// Detection order is fixed: the per-project issue sort is stable, so this
// order is the tiebreak between issues of equal severity.
var registry = []Detector{
	&OverdueInvoiceDetector{},
	&OverdueDeliverableDetector{},
	&StaleContactDetector{},
	&UnpaidBalanceDetector{},
	&OverdueActionDetector{},
}

// Detectors returns the registered detectors in evaluation order.
func Detectors() []Detector {
	return registry
}
