package testsCommon

import (
	"context"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
)

// MetricStoreStub -
type MetricStoreStub struct {
	HasHandler         func(key common.MetricKey) bool
	IsChartableHandler func(key common.MetricKey) bool
	ActivateHandler    func(key common.MetricKey) error
	LastValueHandler   func(key common.MetricKey) string
	TextHandler        func(key common.MetricKey) string
	HistoryHandler     func(key common.MetricKey) []float64
	RefreshAllHandler  func(ctx context.Context) int
}

// Has -
func (stub *MetricStoreStub) Has(key common.MetricKey) bool {
	if stub.HasHandler != nil {
		return stub.HasHandler(key)
	}

	return true
}

// IsChartable -
func (stub *MetricStoreStub) IsChartable(key common.MetricKey) bool {
	if stub.IsChartableHandler != nil {
		return stub.IsChartableHandler(key)
	}

	return true
}

// Activate -
func (stub *MetricStoreStub) Activate(key common.MetricKey) error {
	if stub.ActivateHandler != nil {
		return stub.ActivateHandler(key)
	}

	return nil
}

// LastValue -
func (stub *MetricStoreStub) LastValue(key common.MetricKey) string {
	if stub.LastValueHandler != nil {
		return stub.LastValueHandler(key)
	}

	return ""
}

// Text -
func (stub *MetricStoreStub) Text(key common.MetricKey) string {
	if stub.TextHandler != nil {
		return stub.TextHandler(key)
	}

	return ""
}

// History -
func (stub *MetricStoreStub) History(key common.MetricKey) []float64 {
	if stub.HistoryHandler != nil {
		return stub.HistoryHandler(key)
	}

	return nil
}

// RefreshAll -
func (stub *MetricStoreStub) RefreshAll(ctx context.Context) int {
	if stub.RefreshAllHandler != nil {
		return stub.RefreshAllHandler(ctx)
	}

	return 0
}

// IsInterfaceNil -
func (stub *MetricStoreStub) IsInterfaceNil() bool {
	return stub == nil
}
